package tensor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is the root of every shape violation.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError describes a matrix whose shape differs from the expected one.
type ShapeError struct {
	Op   string // Operation or value being checked (e.g. "forward layer 2")
	Want Shape
	Got  Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: want %v, got %v", e.Op, ErrShapeMismatch, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// Expect returns a *ShapeError if m does not have shape want.
func Expect(op string, m mat.Matrix, want Shape) error {
	got := Of(m)
	if !got.Equal(want) {
		return &ShapeError{Op: op, Want: want, Got: got}
	}
	return nil
}

// MustExpect panics with a *ShapeError if m does not have shape want.
//
// Used for internal invariants that callers have already validated.
func MustExpect(op string, m mat.Matrix, want Shape) {
	if err := Expect(op, m, want); err != nil {
		panic(err)
	}
}

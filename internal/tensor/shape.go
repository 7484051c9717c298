// Package tensor holds the matrix helpers shared by the training core.
//
// Storage and linear algebra are delegated to gonum's mat package. This
// package adds the pieces the core needs on top of it: explicit shape
// assertions, column broadcasting of bias vectors, dropout mask scaling and
// element-wise maps that may be split across goroutines.
//
// Matrices are column-major in the machine learning sense: one column per
// example, one row per feature or unit.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a matrix.
type Shape struct {
	Rows int
	Cols int
}

// Of returns the shape of m. A nil matrix has the zero shape.
func Of(m mat.Matrix) Shape {
	if m == nil {
		return Shape{}
	}
	r, c := m.Dims()
	return Shape{Rows: r, Cols: c}
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are positive.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("invalid shape %v (dimensions must be > 0)", s)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// String formats the shape as (rows, cols).
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// ErrShapeMismatch is wrapped by every shape assertion failure.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// Shape represents the dimensions of a matrix.
type Shape = tensor.Shape

// ShapeError describes a failed shape assertion.
type ShapeError = tensor.ShapeError

// Of returns the shape of m.
func Of(m mat.Matrix) Shape {
	return tensor.Of(m)
}

// Expect returns a *ShapeError when m does not have shape want.
//
// Example:
//
//	err := tensor.Expect("labels", y, tensor.Shape{Rows: 1, Cols: m})
func Expect(op string, m mat.Matrix, want Shape) error {
	return tensor.Expect(op, m, want)
}

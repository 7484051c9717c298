// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the shape helpers used across the network API.
//
// # Overview
//
// Matrices are gonum *mat.Dense values. This package provides:
//   - Shape: (rows, cols) with equality and validation
//   - ShapeError: a shape assertion failure wrapping ErrShapeMismatch
//   - Expect: check a matrix against a wanted shape
//
// # Basic Usage
//
//	if err := tensor.Expect("features", x, tensor.Shape{Rows: 784, Cols: m}); err != nil {
//	    return err
//	}
//
// Errors returned by the network API can be tested with
// errors.Is(err, tensor.ErrShapeMismatch).
package tensor

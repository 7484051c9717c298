// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/tensor"
)

// TestExpectAPI verifies the facade reports shape errors through the alias types.
func TestExpectAPI(t *testing.T) {
	m := mat.NewDense(2, 3, nil)
	assert.Equal(t, tensor.Shape{Rows: 2, Cols: 3}, tensor.Of(m))
	assert.NoError(t, tensor.Expect("m", m, tensor.Shape{Rows: 2, Cols: 3}))

	err := tensor.Expect("m", m, tensor.Shape{Rows: 3, Cols: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	var shapeErr *tensor.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, tensor.Shape{Rows: 2, Cols: 3}, shapeErr.Got)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train_test

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/nn"
	"github.com/born-ml/ffnet/train"
)

// TestTrainerAPI runs a short fit through the public packages.
func TestTrainerAPI(t *testing.T) {
	x := mat.NewDense(2, 4, []float64{0, 0, 1, 1, 0, 1, 0, 1})
	y := mat.NewDense(1, 4, []float64{0, 0, 0, 1})

	cfg := train.DefaultConfig(nn.LayerDims{2, 3, 1})
	cfg.Epochs = 10
	cfg.Seed = 1
	cfg.Logger = log.New(io.Discard, "", 0)

	trainer, err := train.New(cfg)
	require.NoError(t, err)

	_, _, err = trainer.Predict(x)
	assert.True(t, errors.Is(err, train.ErrNotFitted))

	params, err := trainer.Fit(x, y, 2)
	require.NoError(t, err)
	assert.Equal(t, nn.LayerDims{2, 3, 1}, params.Dims)

	labels, probs, err := trainer.Predict(x)
	require.NoError(t, err)
	r, c := labels.Dims()
	assert.Equal(t, []int{1, 4}, []int{r, c})
	r, c = probs.Dims()
	assert.Equal(t, []int{1, 4}, []int{r, c})
	assert.Len(t, trainer.History(), 10)
}

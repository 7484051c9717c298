// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/nn"
	"github.com/born-ml/ffnet/optim"
)

// TestTrainingStepAPI runs one forward, backward and update step through
// the public packages.
func TestTrainingStepAPI(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dims := nn.LayerDims{3, 4, 1}
	params, err := nn.InitParameters(dims, 0.5, rng)
	require.NoError(t, err)

	x := mat.NewDense(3, 5, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
	}
	y := mat.NewDense(1, 5, []float64{1, 0, 1, 1, 0})

	masks, err := nn.GenerateMasks(dims, nn.FullKeepProb(dims), 5, rng)
	require.NoError(t, err)
	al, caches, err := nn.Forward(x, params, masks, nn.Train)
	require.NoError(t, err)
	before, err := nn.Cost(y, al, params, 0)
	require.NoError(t, err)

	grads, err := nn.Backward(al, y, caches, masks, 0)
	require.NoError(t, err)
	opt := optim.NewMomentum(params, optim.MomentumConfig{LR: 0.05})
	require.NoError(t, opt.Step(params, grads))

	al, _, err = nn.Forward(x, params, nil, nn.Inference)
	require.NoError(t, err)
	after, err := nn.Cost(y, al, params, 0)
	require.NoError(t, err)
	assert.Less(t, after, before)

	labels, probs, err := nn.Predict(x, params)
	require.NoError(t, err)
	assert.True(t, mat.Equal(labels, mat.NewDense(1, 5, []float64{
		b2f(probs.At(0, 0) > nn.Threshold),
		b2f(probs.At(0, 1) > nn.Threshold),
		b2f(probs.At(0, 2) > nn.Threshold),
		b2f(probs.At(0, 3) > nn.Threshold),
		b2f(probs.At(0, 4) > nn.Threshold),
	})))
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPredict_Thresholds(t *testing.T) {
	// Single sigmoid unit: p = σ(x0 - x1).
	params := &Parameters{
		Dims: LayerDims{2, 1},
		Layers: []Layer{
			{W: mat.NewDense(1, 2, []float64{1, -1}), B: mat.NewVecDense(1, nil)},
		},
	}
	x := mat.NewDense(2, 3, []float64{
		2, 0, 1,
		0, 2, 1,
	})

	labels, probs, err := Predict(x, params)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 0}, labels.RawRowView(0), "p == 0.5 maps to 0")
	assert.InDelta(t, 0.5, probs.At(0, 2), 1e-12)
	assert.Greater(t, probs.At(0, 0), 0.5)
}

func TestPredict_Idempotent(t *testing.T) {
	dims := LayerDims{4, 6, 1}
	params, err := InitParameters(dims, 1, newRNG(1))
	require.NoError(t, err)
	before := params.Clone()
	x := randomBatch(4, 10, 2)

	l1, p1, err := Predict(x, params)
	require.NoError(t, err)
	l2, p2, err := Predict(x, params)
	require.NoError(t, err)

	assert.True(t, mat.Equal(l1, l2))
	assert.True(t, mat.Equal(p1, p2))
	for l := 1; l <= dims.NumLayers(); l++ {
		assert.True(t, mat.Equal(before.Layer(l).W, params.Layer(l).W), "predict must not mutate parameters")
	}
}

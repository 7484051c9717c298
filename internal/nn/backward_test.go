package nn

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// flattenParams lists every W then b entry, layer by layer.
func flattenParams(p *Parameters) []float64 {
	var out []float64
	for _, layer := range p.Layers {
		r, c := layer.W.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out = append(out, layer.W.At(i, j))
			}
		}
		out = append(out, layer.B.RawVector().Data...)
	}
	return out
}

// loadParams writes values produced by flattenParams back into p.
func loadParams(p *Parameters, values []float64) {
	k := 0
	for _, layer := range p.Layers {
		r, c := layer.W.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				layer.W.Set(i, j, values[k])
				k++
			}
		}
		for i := 0; i < layer.B.Len(); i++ {
			layer.B.SetVec(i, values[k])
			k++
		}
	}
}

func flattenGrads(g Gradients) []float64 {
	var out []float64
	for _, lg := range g {
		r, c := lg.DW.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out = append(out, lg.DW.At(i, j))
			}
		}
		out = append(out, lg.DB.RawVector().Data...)
	}
	return out
}

func checkGradients(t *testing.T, dims LayerDims, keepProb []float64, lambda float64) {
	t.Helper()

	const m = 6
	params, err := InitParameters(dims, 0.7, newRNG(11))
	require.NoError(t, err)
	x := randomBatch(dims[0], m, 12)
	y := mat.NewDense(1, m, []float64{1, 0, 0, 1, 1, 0})

	var masks *Masks
	mode := Inference
	if keepProb != nil {
		masks, err = GenerateMasks(dims, keepProb, m, newRNG(13))
		require.NoError(t, err)
		mode = Train
	}

	al, caches, err := Forward(x, params, masks, mode)
	require.NoError(t, err)
	grads, err := Backward(al, y, caches, masks, lambda)
	require.NoError(t, err)
	analytic := flattenGrads(grads)

	shifted := params.Clone()
	cost := func(values []float64) float64 {
		loadParams(shifted, values)
		out, _, err := Forward(x, shifted, masks, mode)
		require.NoError(t, err)
		c, err := Cost(y, out, shifted, lambda)
		require.NoError(t, err)
		return c
	}
	numeric := fd.Gradient(nil, cost, flattenParams(params), &fd.Settings{
		Formula: fd.Central,
		Step:    1e-6,
	})

	require.Len(t, numeric, len(analytic))
	for i := range analytic {
		tol := 1e-6 * math.Max(1, math.Abs(numeric[i]))
		assert.InDelta(t, numeric[i], analytic[i], tol, "parameter %d", i)
	}
}

func TestBackward_GradientCheck(t *testing.T) {
	checkGradients(t, LayerDims{3, 4, 1}, nil, 0)
}

func TestBackward_GradientCheckDeep(t *testing.T) {
	checkGradients(t, LayerDims{4, 5, 3, 1}, nil, 0)
}

func TestBackward_GradientCheckL2(t *testing.T) {
	checkGradients(t, LayerDims{3, 4, 2, 1}, nil, 0.7)
}

func TestBackward_GradientCheckDropout(t *testing.T) {
	checkGradients(t, LayerDims{3, 6, 5, 1}, []float64{1, 0.6, 0.8, 1}, 0.1)
}

func TestBackward_GradientCheckOutputDropout(t *testing.T) {
	checkGradients(t, LayerDims{3, 4, 1}, []float64{1, 1, 0.5}, 0)
}

// TestBackward_ClampedOutputHasZeroGradient covers outputs pushed outside
// (0, 1) by output dropout: the clamped cost is flat there.
func TestBackward_ClampedOutputHasZeroGradient(t *testing.T) {
	assert.Equal(t, 0.0, outputGradient(0, 1.6))
	assert.Equal(t, 0.0, outputGradient(1, 1.6))
	assert.Equal(t, 0.0, outputGradient(1, 0))
	assert.InDelta(t, -2.0, outputGradient(1, 0.5), 1e-12)
	assert.InDelta(t, 2.0, outputGradient(0, 0.5), 1e-12)
}

func TestBackward_Shapes(t *testing.T) {
	dims := LayerDims{5, 7, 3, 1}
	params, err := InitParameters(dims, 0, newRNG(1))
	require.NoError(t, err)
	x := randomBatch(5, 8, 2)
	y := mat.NewDense(1, 8, []float64{1, 0, 1, 0, 1, 0, 1, 0})

	masks, err := GenerateMasks(dims, []float64{1, 0.9, 0.9, 1}, 8, newRNG(3))
	require.NoError(t, err)
	al, caches, err := Forward(x, params, masks, Train)
	require.NoError(t, err)
	grads, err := Backward(al, y, caches, masks, 0.1)
	require.NoError(t, err)

	require.Len(t, grads, dims.NumLayers())
	for l := 1; l <= dims.NumLayers(); l++ {
		g := grads[l-1]
		assert.Equal(t, dims.WeightShape(l), tensor.Of(g.DW))
		assert.Equal(t, dims.BiasShape(l), tensor.Of(g.DB))
		assert.Equal(t, tensor.Shape{Rows: dims[l-1], Cols: 8}, tensor.Of(g.DAPrev))
	}
}

func TestBackward_HiddenMaskZeroesGradient(t *testing.T) {
	dims := LayerDims{2, 4, 1}
	params, err := InitParameters(dims, 0.5, newRNG(1))
	require.NoError(t, err)
	x := randomBatch(2, 3, 2)
	y := mat.NewDense(1, 3, []float64{1, 0, 1})

	masks, err := GenerateMasks(dims, []float64{1, 0.5, 1}, 3, newRNG(4))
	require.NoError(t, err)
	// Drop hidden unit 0 for every example.
	for j := 0; j < 3; j++ {
		masks.D[1].Set(0, j, 0)
	}

	al, caches, err := Forward(x, params, masks, Train)
	require.NoError(t, err)
	grads, err := Backward(al, y, caches, masks, 0)
	require.NoError(t, err)

	// A dropped unit receives no gradient, so its incoming weights do not move.
	assert.Equal(t, []float64{0, 0}, grads[0].DW.RawRowView(0))
	assert.Equal(t, 0.0, grads[0].DB.AtVec(0))
}

func TestBackward_Errors(t *testing.T) {
	_, err := Backward(mat.NewDense(1, 2, nil), mat.NewDense(1, 2, nil), nil, nil, 0)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	dims := LayerDims{2, 1}
	params, err := InitParameters(dims, 0, newRNG(1))
	require.NoError(t, err)
	al, caches, err := Forward(randomBatch(2, 2, 1), params, nil, Inference)
	require.NoError(t, err)

	_, err = Backward(al, mat.NewDense(1, 3, nil), caches, nil, 0)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

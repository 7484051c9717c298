package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// DefaultInitScale multiplies the N(0, 1) weight samples.
//
// The small value keeps initial pre-activations close to zero so the
// sigmoid output starts far from saturation.
const DefaultInitScale = 0.001

// InitParameters creates the parameter store for dims.
//
// Weights are drawn independently from N(0, 1) and multiplied by scale;
// biases start at zero. A non-positive scale selects DefaultInitScale.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	params, err := nn.InitParameters(nn.LayerDims{2, 4, 1}, 0, rng)
func InitParameters(dims LayerDims, scale float64, rng *rand.Rand) (*Parameters, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = DefaultInitScale
	}

	params := &Parameters{
		Dims:   dims.Clone(),
		Layers: make([]Layer, dims.NumLayers()),
	}
	for l := 1; l <= dims.NumLayers(); l++ {
		params.Layers[l-1] = Layer{
			W: tensor.RandN(dims[l], dims[l-1], scale, rng),
			B: mat.NewVecDense(dims[l], nil),
		}
	}
	return params, nil
}

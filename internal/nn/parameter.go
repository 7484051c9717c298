package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Layer holds the trainable parameters of one fully connected layer.
//
// For layer l, W has shape (dims[l], dims[l-1]) and B has shape (dims[l], 1).
type Layer struct {
	W *mat.Dense
	B *mat.VecDense
}

// Parameters is the parameter store of a network.
//
// Layers[i] holds layer i+1; there is no entry for the input layer.
// The optimizer updates the matrices in place, so a Parameters value
// handed to a running trainer must be treated as mutable until training
// returns.
type Parameters struct {
	Dims   LayerDims
	Layers []Layer
}

// NumLayers returns L, the number of weight layers.
func (p *Parameters) NumLayers() int {
	return len(p.Layers)
}

// Layer returns layer l (1-based). Panics if l is out of range.
func (p *Parameters) Layer(l int) *Layer {
	if l < 1 || l > len(p.Layers) {
		panic(fmt.Sprintf("nn: layer %d out of range [1, %d]", l, len(p.Layers)))
	}
	return &p.Layers[l-1]
}

// Validate checks every weight and bias shape against Dims.
func (p *Parameters) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil parameters", ErrInvalidConfig)
	}
	if err := p.Dims.Validate(); err != nil {
		return err
	}
	if len(p.Layers) != p.Dims.NumLayers() {
		return fmt.Errorf("%w: %d layers stored for dims %v", ErrInvalidConfig, len(p.Layers), []int(p.Dims))
	}
	for l := 1; l <= len(p.Layers); l++ {
		layer := p.Layers[l-1]
		if layer.W == nil || layer.B == nil {
			return fmt.Errorf("%w: layer %d is not initialized", ErrInvalidConfig, l)
		}
		if err := tensor.Expect(fmt.Sprintf("W%d", l), layer.W, p.Dims.WeightShape(l)); err != nil {
			return err
		}
		if err := tensor.Expect(fmt.Sprintf("b%d", l), layer.B, p.Dims.BiasShape(l)); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy. Used to hand out an immutable trained snapshot.
func (p *Parameters) Clone() *Parameters {
	out := &Parameters{
		Dims:   p.Dims.Clone(),
		Layers: make([]Layer, len(p.Layers)),
	}
	for i, layer := range p.Layers {
		out.Layers[i] = Layer{
			W: mat.DenseCopyOf(layer.W),
			B: mat.VecDenseCopyOf(layer.B),
		}
	}
	return out
}

// NumParams returns the total number of trainable scalars.
func (p *Parameters) NumParams() int {
	n := 0
	for _, layer := range p.Layers {
		r, c := layer.W.Dims()
		n += r*c + layer.B.Len()
	}
	return n
}

package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Mode selects between training and inference forward passes.
type Mode int

const (
	// Inference runs without dropout.
	Inference Mode = iota
	// Train applies the dropout masks to every layer's activations.
	Train
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Inference:
		return "inference"
	case Train:
		return "train"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Cache keeps what the backward pass needs from one layer's forward step.
//
// W and B reference the live parameters; the cache is only valid until the
// next parameter update.
type Cache struct {
	APrev *mat.Dense    // Activations fed into the layer (post-dropout)
	W     *mat.Dense    // Layer weights
	B     *mat.VecDense // Layer biases
	Z     *mat.Dense    // Pre-activation W·APrev + B
}

// layerActivation returns the activation of layer l in an L-layer network:
// LeakyReLU for hidden layers, Sigmoid for the output.
func layerActivation(l, numLayers int) Activation {
	if l == numLayers {
		return Sigmoid
	}
	return LeakyReLU
}

// Forward propagates x through the network.
//
// x has shape (dims[0], m). The returned prediction AL has shape (1, m) and
// caches holds one entry per layer, caches[l-1] for layer l.
//
// In Train mode masks must be non-nil and match (dims[l], m) for every layer;
// the activations of layers 1..L are multiplied by D[l] and divided by
// KeepProb[l]. Inputs are never dropped. In Inference mode masks is ignored.
//
// Example:
//
//	al, caches, err := nn.Forward(x, params, masks, nn.Train)
func Forward(x *mat.Dense, params *Parameters, masks *Masks, mode Mode) (*mat.Dense, []Cache, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	dims := params.Dims
	if x == nil {
		return nil, nil, fmt.Errorf("%w: nil input", ErrInvalidConfig)
	}
	_, m := x.Dims()
	if err := tensor.Expect("forward input", x, tensor.Shape{Rows: dims[0], Cols: m}); err != nil {
		return nil, nil, err
	}
	if mode == Train {
		if masks == nil {
			return nil, nil, fmt.Errorf("%w: train mode requires dropout masks", ErrInvalidConfig)
		}
		if err := masks.Check(dims, m); err != nil {
			return nil, nil, err
		}
	}

	numLayers := params.NumLayers()
	caches := make([]Cache, 0, numLayers)
	a := x
	for l := 1; l <= numLayers; l++ {
		layer := params.Layers[l-1]

		z := linearForward(a, layer)
		next := layerActivation(l, numLayers).Forward(z)
		if err := tensor.Expect(fmt.Sprintf("forward layer %d", l), next, tensor.Shape{Rows: dims[l], Cols: m}); err != nil {
			return nil, nil, err
		}
		if mode == Train {
			masks.apply(l, next)
		}

		caches = append(caches, Cache{APrev: a, W: layer.W, B: layer.B, Z: z})
		a = next
	}

	if err := tensor.Expect("forward output", a, tensor.Shape{Rows: 1, Cols: m}); err != nil {
		return nil, nil, err
	}
	return a, caches, nil
}

package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// LayerGradients holds the gradients produced for one layer.
//
// DAPrev is the gradient w.r.t. the activations that fed the layer. For
// layers above the first it already carries the previous layer's dropout
// mask and keep-probability scaling.
type LayerGradients struct {
	DW     *mat.Dense
	DB     *mat.VecDense
	DAPrev *mat.Dense
}

// Gradients holds one LayerGradients per layer; Gradients[l-1] is layer l.
type Gradients []LayerGradients

// Backward computes the gradients of the regularized cost for every layer.
//
// al and caches come from a Train (or Inference) forward pass over the
// batch whose labels are y. masks must be the ones used by that forward
// pass, or nil when no dropout was applied. Every mask and keep
// probability is applied exactly where the forward pass applied it:
//
//	dA_L     = -(Y/A_L - (1-Y)/(1-A_L)) ⊙ D_L / keep_L   (0 where A_L is clamped)
//	dZ_l     = dA_l ⊙ g_l'(Z_l)
//	dA_{l-1} = (W_lᵀ·dZ_l) ⊙ D_{l-1} / keep_{l-1}   for l > 1
func Backward(al, y *mat.Dense, caches []Cache, masks *Masks, lambda float64) (Gradients, error) {
	numLayers := len(caches)
	if numLayers == 0 {
		return nil, fmt.Errorf("%w: no forward caches", ErrInvalidConfig)
	}
	_, m := al.Dims()
	if err := tensor.Expect("backward prediction", al, tensor.Shape{Rows: 1, Cols: m}); err != nil {
		return nil, err
	}
	if err := tensor.Expect("backward labels", y, tensor.Shape{Rows: 1, Cols: m}); err != nil {
		return nil, err
	}
	if masks != nil {
		if err := masks.Check(dimsFromCaches(caches), m); err != nil {
			return nil, err
		}
	}

	dA := tensor.Zip(y, al, outputGradient)
	if masks != nil {
		masks.apply(numLayers, dA)
	}

	grads := make(Gradients, numLayers)
	for l := numLayers; l >= 1; l-- {
		c := caches[l-1]

		dZ := layerActivation(l, numLayers).Backward(dA, c.Z)
		g := linearBackward(dZ, c, lambda)
		if err := checkLayerGradients(l, g, c); err != nil {
			return nil, err
		}
		if l > 1 && masks != nil {
			masks.apply(l-1, g.DAPrev)
		}

		grads[l-1] = g
		dA = g.DAPrev
	}
	return grads, nil
}

// outputGradient returns dJ/dA_L for one prediction p with label yv.
//
// The cost reads p through clampProb, so where p lies outside
// [Epsilon, 1-Epsilon] the cost is flat in p and the derivative is zero.
// Output dropout can scale a sigmoid output above 1, which lands here.
func outputGradient(yv, p float64) float64 {
	if p < Epsilon || p > 1-Epsilon {
		return 0
	}
	return -(yv/p - (1-yv)/(1-p))
}

// dimsFromCaches recovers the layer widths from the cached weights.
func dimsFromCaches(caches []Cache) LayerDims {
	dims := make(LayerDims, len(caches)+1)
	_, dims[0] = caches[0].W.Dims()
	for i, c := range caches {
		dims[i+1], _ = c.W.Dims()
	}
	return dims
}

func checkLayerGradients(l int, g LayerGradients, c Cache) error {
	if err := tensor.Expect(fmt.Sprintf("dW%d", l), g.DW, tensor.Of(c.W)); err != nil {
		return err
	}
	if err := tensor.Expect(fmt.Sprintf("db%d", l), g.DB, tensor.Of(c.B)); err != nil {
		return err
	}
	return tensor.Expect(fmt.Sprintf("dA%d", l-1), g.DAPrev, tensor.Of(c.APrev))
}

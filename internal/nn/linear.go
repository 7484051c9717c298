package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// linearForward computes Z = W·A_prev + b.
//
// A_prev has one column per example; b is broadcast across columns.
func linearForward(aPrev *mat.Dense, layer Layer) *mat.Dense {
	units, _ := layer.W.Dims()
	_, m := aPrev.Dims()

	z := mat.NewDense(units, m, nil)
	z.Mul(layer.W, aPrev)
	tensor.AddBias(z, layer.B)
	return z
}

// linearBackward computes the gradients of the linear part of a layer.
//
//	dW      = dZ·A_prevᵀ/m + lambda·W/m
//	db      = Σ_examples dZ / m
//	dA_prev = Wᵀ·dZ
func linearBackward(dZ *mat.Dense, c Cache, lambda float64) LayerGradients {
	units, inputs := c.W.Dims()
	_, m := dZ.Dims()
	scale := 1 / float64(m)

	dW := mat.NewDense(units, inputs, nil)
	dW.Mul(dZ, c.APrev.T())
	dW.Scale(scale, dW)
	if lambda != 0 {
		var reg mat.Dense
		reg.Scale(lambda*scale, c.W)
		dW.Add(dW, &reg)
	}

	dB := tensor.RowSums(dZ)
	dB.ScaleVec(scale, dB)

	dAPrev := mat.NewDense(inputs, m, nil)
	dAPrev.Mul(c.W.T(), dZ)

	return LayerGradients{DW: dW, DB: dB, DAPrev: dAPrev}
}

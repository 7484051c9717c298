package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Epsilon bounds predicted probabilities away from 0 and 1 before any
// logarithm or division by (1 - p).
const Epsilon = 1e-12

// clampProb limits p to [Epsilon, 1-Epsilon].
func clampProb(p float64) float64 {
	return math.Min(math.Max(p, Epsilon), 1-Epsilon)
}

// Cost computes the regularized binary cross-entropy:
//
//	J = -(1/m)·Σ[Y·log(AL) + (1-Y)·log(1-AL)] + (lambda/(2m))·Σ_l ‖W_l‖²_F
//
// y and al must both have shape (1, m).
//
// Example:
//
//	al, _, _ := nn.Forward(x, params, nil, nn.Inference)
//	cost, err := nn.Cost(y, al, params, 0.1)
func Cost(y, al *mat.Dense, params *Parameters, lambda float64) (float64, error) {
	_, m := al.Dims()
	if err := tensor.Expect("cost prediction", al, tensor.Shape{Rows: 1, Cols: m}); err != nil {
		return 0, err
	}
	if err := tensor.Expect("cost labels", y, tensor.Shape{Rows: 1, Cols: m}); err != nil {
		return 0, err
	}
	return CrossEntropy(y, al) + L2Penalty(params, lambda, m), nil
}

// CrossEntropy returns the mean binary cross-entropy between labels y and
// predictions al. Predictions are clamped with Epsilon, so the result is
// always finite.
func CrossEntropy(y, al *mat.Dense) float64 {
	tensor.MustExpect("cross entropy", al, tensor.Of(y))
	_, m := y.Dims()

	terms := tensor.Zip(y, al, func(yv, p float64) float64 {
		p = clampProb(p)
		return yv*math.Log(p) + (1-yv)*math.Log(1-p)
	})
	return -mat.Sum(terms) / float64(m)
}

// L2Penalty returns (lambda/(2m))·Σ_l ‖W_l‖²_F for a batch of m examples.
func L2Penalty(params *Parameters, lambda float64, m int) float64 {
	if lambda == 0 {
		return 0
	}
	var norm float64
	for _, layer := range params.Layers {
		norm += tensor.FrobeniusSq(layer.W)
	}
	return lambda / (2 * float64(m)) * norm
}

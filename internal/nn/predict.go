package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Threshold is the probability above which an example is labeled 1.
const Threshold = 0.5

// Predict runs an inference forward pass and thresholds the output.
//
// It returns labels (1, m) with values in {0, 1} and the raw probabilities
// (1, m). params is not modified.
func Predict(x *mat.Dense, params *Parameters) (labels, probs *mat.Dense, err error) {
	probs, _, err = Forward(x, params, nil, Inference)
	if err != nil {
		return nil, nil, err
	}
	labels = tensor.Map(probs, func(p float64) float64 {
		if p > Threshold {
			return 1
		}
		return 0
	})
	return labels, probs, nil
}

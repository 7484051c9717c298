package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Masks holds the inverted-dropout keep masks for one mini-batch.
//
// D[l] is a 0/1 matrix of shape (dims[l], batchSize) for every layer
// l in 0..L, input layer included. KeepProb[l] is the probability each
// entry of D[l] was drawn with.
type Masks struct {
	D        []*mat.Dense
	KeepProb []float64
}

// FullKeepProb returns keep probabilities of 1 for every layer, which
// disables dropout.
func FullKeepProb(dims LayerDims) []float64 {
	kp := make([]float64, len(dims))
	for i := range kp {
		kp[i] = 1
	}
	return kp
}

// ValidateKeepProb checks that keepProb has one entry per layer (input
// included) and that every entry lies in (0, 1].
func ValidateKeepProb(dims LayerDims, keepProb []float64) error {
	if len(keepProb) != len(dims) {
		return fmt.Errorf("%w: keep_prob has %d entries, want %d (one per layer including input)",
			ErrInvalidConfig, len(keepProb), len(dims))
	}
	for l, p := range keepProb {
		if !(p > 0 && p <= 1) {
			return fmt.Errorf("%w: keep_prob[%d] = %v (must be in (0, 1])", ErrInvalidConfig, l, p)
		}
	}
	return nil
}

// GenerateMasks draws fresh dropout masks for a batch of batchSize examples.
//
// Each entry of D[l] is 1 iff a uniform sample in [0, 1) is below
// keepProb[l]; a keep probability of 1 therefore yields an all-ones mask.
func GenerateMasks(dims LayerDims, keepProb []float64, batchSize int, rng *rand.Rand) (*Masks, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateKeepProb(dims, keepProb); err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size %d (must be > 0)", ErrInvalidConfig, batchSize)
	}

	masks := &Masks{
		D:        make([]*mat.Dense, len(dims)),
		KeepProb: append([]float64(nil), keepProb...),
	}
	for l, width := range dims {
		masks.D[l] = tensor.Bernoulli(width, batchSize, keepProb[l], rng)
	}
	return masks, nil
}

// Check verifies that the masks cover dims for a batch of batchSize examples.
func (m *Masks) Check(dims LayerDims, batchSize int) error {
	if len(m.D) != len(dims) {
		return fmt.Errorf("%w: %d dropout masks for %d layers", ErrInvalidConfig, len(m.D), len(dims))
	}
	if err := ValidateKeepProb(dims, m.KeepProb); err != nil {
		return err
	}
	for l, d := range m.D {
		if d == nil {
			return fmt.Errorf("%w: dropout mask %d is nil", ErrInvalidConfig, l)
		}
		want := tensor.Shape{Rows: dims[l], Cols: batchSize}
		if err := tensor.Expect(fmt.Sprintf("dropout mask %d", l), d, want); err != nil {
			return err
		}
	}
	return nil
}

// apply performs inverted dropout on the activations of layer l in place.
func (m *Masks) apply(l int, a *mat.Dense) {
	tensor.MaskScale(a, m.D[l], m.KeepProb[l])
}

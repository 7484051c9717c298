package dataset

import (
	"fmt"
	"math/rand"
)

// XOR returns the four-example exclusive-or truth table.
func XOR() *Dataset {
	d, _ := fromRows(
		[][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		[]float64{0, 1, 1, 0},
	)
	return d
}

// Blobs draws n two-feature examples from a two-class Gaussian mixture.
//
// Each example picks a class uniformly; its features are standard normal
// noise shifted by +separation for class 1 and -separation for class 0.
func Blobs(n int, separation float64, rng *rand.Rand) (*Dataset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: blobs need n > 0 (got %d)", ErrEmpty, n)
	}

	rows := make([][]float64, n)
	labels := make([]float64, n)
	for i := range rows {
		class := rng.Intn(2)
		sign := float64(2*class - 1)
		rows[i] = []float64{
			rng.NormFloat64() + separation*sign,
			rng.NormFloat64() + separation*sign,
		}
		labels[i] = float64(class)
	}
	return fromRows(rows, labels)
}

// Package batch shuffles a training set and slices it into mini-batches.
package batch

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// ErrInvalidBatch is returned for unusable inputs to Partition.
var ErrInvalidBatch = errors.New("invalid mini-batch input")

// MiniBatch is one slice of the shuffled training set.
//
// X has shape (features, n) and Y has shape (1, n); column j of X is the
// example labeled by column j of Y.
type MiniBatch struct {
	X *mat.Dense
	Y *mat.Dense
}

// Size returns the number of examples in the batch.
func (b MiniBatch) Size() int {
	_, n := b.X.Dims()
	return n
}

// Permutation returns a random ordering of [0, m).
func Permutation(m int, rng *rand.Rand) []int {
	return rng.Perm(m)
}

// Partition shuffles the columns of x and y with one shared permutation
// and slices them into batches of batchSize examples.
//
// The result has ⌊m/batchSize⌋ full batches followed by one smaller batch
// holding the m mod batchSize leftover examples, when there are any. Every
// example appears in exactly one batch. Each call draws a new permutation.
//
// Example:
//
//	batches, err := batch.Partition(x, y, 64, rng)
//	if err != nil {
//	    return err
//	}
//	for _, mb := range batches {
//	    ...
//	}
func Partition(x, y *mat.Dense, batchSize int, rng *rand.Rand) ([]MiniBatch, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size %d (must be > 0)", ErrInvalidBatch, batchSize)
	}
	if x == nil || y == nil {
		return nil, fmt.Errorf("%w: nil features or labels", ErrInvalidBatch)
	}
	features, m := x.Dims()
	if features == 0 || m == 0 {
		return nil, fmt.Errorf("%w: empty training set", ErrInvalidBatch)
	}
	if err := tensor.Expect("labels", y, tensor.Shape{Rows: 1, Cols: m}); err != nil {
		return nil, err
	}

	perm := Permutation(m, rng)
	shuffledX := tensor.SelectCols(x, perm)
	shuffledY := tensor.SelectCols(y, perm)

	numFull := m / batchSize
	batches := make([]MiniBatch, 0, numFull+1)
	for start := 0; start < m; start += batchSize {
		end := min(start+batchSize, m)
		batches = append(batches, MiniBatch{
			X: mat.DenseCopyOf(shuffledX.Slice(0, features, start, end)),
			Y: mat.DenseCopyOf(shuffledY.Slice(0, 1, start, end)),
		})
	}
	return batches, nil
}

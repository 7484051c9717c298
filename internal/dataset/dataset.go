// Package dataset loads binary classification data in column-major form.
//
// Every loader returns a Dataset whose X has one column per example and one
// row per feature, and whose Y is a (1, m) row of 0/1 labels.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// ErrEmpty is returned when a source yields no examples.
var ErrEmpty = errors.New("dataset is empty")

// Dataset is a labeled set of examples.
type Dataset struct {
	X *mat.Dense // (features, m)
	Y *mat.Dense // (1, m)
}

// NumExamples returns m.
func (d *Dataset) NumExamples() int {
	_, m := d.X.Dims()
	return m
}

// NumFeatures returns the number of rows of X.
func (d *Dataset) NumFeatures() int {
	n, _ := d.X.Dims()
	return n
}

// fromRows builds a Dataset from row-major examples and their labels.
func fromRows(rows [][]float64, labels []float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	features := len(rows[0])
	if features == 0 {
		return nil, fmt.Errorf("%w: examples have no features", ErrEmpty)
	}

	x := mat.NewDense(features, len(rows), nil)
	for j, row := range rows {
		if len(row) != features {
			return nil, fmt.Errorf("example %d has %d features, want %d", j, len(row), features)
		}
		x.SetCol(j, row)
	}
	return &Dataset{X: x, Y: mat.NewDense(1, len(labels), labels)}, nil
}

// Split shuffles d and holds out testFraction of its examples.
//
// The held-out count is rounded down; when it is zero, test is nil. At
// least one example always stays in train.
func Split(d *Dataset, testFraction float64, rng *rand.Rand) (train, test *Dataset, err error) {
	if testFraction < 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction %v must be in [0, 1)", testFraction)
	}
	m := d.NumExamples()
	numTest := int(testFraction * float64(m))
	if numTest == 0 {
		return d, nil, nil
	}

	perm := rng.Perm(m)
	x := tensor.SelectCols(d.X, perm)
	y := tensor.SelectCols(d.Y, perm)
	features := d.NumFeatures()
	cut := m - numTest

	train = &Dataset{
		X: mat.DenseCopyOf(x.Slice(0, features, 0, cut)),
		Y: mat.DenseCopyOf(y.Slice(0, 1, 0, cut)),
	}
	test = &Dataset{
		X: mat.DenseCopyOf(x.Slice(0, features, cut, m)),
		Y: mat.DenseCopyOf(y.Slice(0, 1, cut, m)),
	}
	return train, test, nil
}

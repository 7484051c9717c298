package dataset

import (
	"fmt"

	"github.com/petar/GoMNIST"
)

// LoadMNISTBinary turns MNIST into a binary task: images of posDigit are
// labeled 1, images of negDigit are labeled 0 and all other digits are
// dropped. Pixels are scaled to [0, 1].
//
// dir must hold the gzipped IDX files read by GoMNIST.Load
// (train-images-idx3-ubyte.gz and friends). limit caps the number of
// examples kept from each split; 0 keeps all.
func LoadMNISTBinary(dir string, posDigit, negDigit, limit int) (train, test *Dataset, err error) {
	trainSet, testSet, err := GoMNIST.Load(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load MNIST from %s: %w", dir, err)
	}

	train, err = binarySubset(trainSet, posDigit, negDigit, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("train split: %w", err)
	}
	test, err = binarySubset(testSet, posDigit, negDigit, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("test split: %w", err)
	}
	return train, test, nil
}

func binarySubset(set *GoMNIST.Set, posDigit, negDigit, limit int) (*Dataset, error) {
	var (
		rows   [][]float64
		labels []float64
	)
	for i := 0; i < set.Count(); i++ {
		if limit > 0 && len(rows) == limit {
			break
		}
		img, label := set.Get(i)

		var y float64
		switch int(label) {
		case posDigit:
			y = 1
		case negDigit:
			y = 0
		default:
			continue
		}

		row := make([]float64, len(img))
		for j, px := range img {
			row[j] = float64(px) / 255.0
		}
		rows = append(rows, row)
		labels = append(labels, y)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no images of digits %d or %d", ErrEmpty, posDigit, negDigit)
	}
	return fromRows(rows, labels)
}

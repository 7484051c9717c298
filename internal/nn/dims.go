package nn

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/tensor"
)

// LayerDims lists the width of every layer, input first.
//
// Index 0 is the number of input features; indices 1..L are the widths of
// the hidden layers and the output layer. A binary classifier ends in 1.
//
// Example:
//
//	dims := nn.LayerDims{2, 4, 1} // 2 features, 4 hidden units, 1 output
type LayerDims []int

// Validate checks that dims describes at least one layer and that every
// width is positive.
func (d LayerDims) Validate() error {
	if len(d) < 2 {
		return fmt.Errorf("%w: layer dims need at least 2 entries, got %d", ErrInvalidConfig, len(d))
	}
	for i, w := range d {
		if w <= 0 {
			return fmt.Errorf("%w: layer %d has width %d (must be > 0)", ErrInvalidConfig, i, w)
		}
	}
	return nil
}

// NumLayers returns L, the number of weight layers.
func (d LayerDims) NumLayers() int {
	return len(d) - 1
}

// WeightShape returns the shape of W for layer l (1-based).
func (d LayerDims) WeightShape(l int) tensor.Shape {
	return tensor.Shape{Rows: d[l], Cols: d[l-1]}
}

// BiasShape returns the shape of b for layer l (1-based).
func (d LayerDims) BiasShape(l int) tensor.Shape {
	return tensor.Shape{Rows: d[l], Cols: 1}
}

// Clone returns a copy of the dims.
func (d LayerDims) Clone() LayerDims {
	out := make(LayerDims, len(d))
	copy(out, d)
	return out
}

package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestActivation_Apply(t *testing.T) {
	tests := []struct {
		act  Activation
		in   float64
		want float64
	}{
		{ReLU, -2, 0},
		{ReLU, 3, 3},
		{LeakyReLU, -2, -0.02},
		{LeakyReLU, 0, 0},
		{LeakyReLU, 3, 3},
		{Sigmoid, 0, 0.5},
		{Sigmoid, 2, 0.8807970779778823},
		{Sigmoid, -2, 0.11920292202211755},
	}

	for _, tt := range tests {
		got := tt.act.Activator().Apply(tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, "%v(%v)", tt.act, tt.in)
	}
}

func TestActivation_Derivative(t *testing.T) {
	tests := []struct {
		act  Activation
		in   float64
		want float64
	}{
		{ReLU, -1, 0},
		{ReLU, 0, 0},
		{ReLU, 1, 1},
		{LeakyReLU, -1, LeakySlope},
		{LeakyReLU, 0, 1},
		{LeakyReLU, 1, 1},
		{Sigmoid, 0, 0.25},
	}

	for _, tt := range tests {
		got := tt.act.Activator().Derivative(tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, "%v'(%v)", tt.act, tt.in)
	}
}

func TestActivation_DerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, act := range []Activation{ReLU, LeakyReLU, Sigmoid} {
		f := act.Activator()
		for _, z := range []float64{-3, -0.5, 0.7, 4} {
			numeric := (f.Apply(z+h) - f.Apply(z-h)) / (2 * h)
			assert.InDelta(t, numeric, f.Derivative(z), 1e-6, "%v at %v", act, z)
		}
	}
}

func TestSigmoid_Saturation(t *testing.T) {
	f := Sigmoid.Activator()

	assert.False(t, math.IsNaN(f.Apply(-1000)))
	assert.InDelta(t, 0, f.Apply(-1000), 1e-300)
	assert.Equal(t, 1.0, f.Apply(1000))
}

func TestActivation_ForwardBackwardMatrix(t *testing.T) {
	z := mat.NewDense(2, 2, []float64{-1, 2, 0, -4})
	dA := mat.NewDense(2, 2, []float64{1, 1, 2, 2})

	a := LeakyReLU.Forward(z)
	assert.Equal(t, []float64{-0.01, 2}, a.RawRowView(0))
	assert.Equal(t, []float64{0, -0.04}, a.RawRowView(1))

	dZ := LeakyReLU.Backward(dA, z)
	assert.Equal(t, []float64{0.01, 1}, dZ.RawRowView(0))
	assert.Equal(t, []float64{2, 0.02}, dZ.RawRowView(1))
}

func TestActivation_String(t *testing.T) {
	assert.Equal(t, "LeakyReLU", LeakyReLU.String())
	assert.Equal(t, "Activation(9)", Activation(9).String())
	assert.Panics(t, func() { Activation(9).Activator() })
}

package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/tensor"
)

// LeakySlope is the negative-side slope of LeakyReLU.
const LeakySlope = 0.01

// Activation identifies an element-wise activation function.
//
// The set is closed: every value dispatches to an Activator through
// Activation.Activator, which panics on values outside the enumeration.
type Activation int

// Supported activations.
const (
	ReLU Activation = iota
	LeakyReLU
	Sigmoid
)

// Activator evaluates an activation and its derivative at a pre-activation value.
type Activator interface {
	Apply(z float64) float64
	Derivative(z float64) float64
}

// String implements fmt.Stringer.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "ReLU"
	case LeakyReLU:
		return "LeakyReLU"
	case Sigmoid:
		return "Sigmoid"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Activator returns the implementation of a.
func (a Activation) Activator() Activator {
	switch a {
	case ReLU:
		return reluFunc{}
	case LeakyReLU:
		return leakyReLUFunc{slope: LeakySlope}
	case Sigmoid:
		return sigmoidFunc{}
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// Forward applies a element-wise to the pre-activation matrix z.
func (a Activation) Forward(z *mat.Dense) *mat.Dense {
	return tensor.Map(z, a.Activator().Apply)
}

// Backward converts the gradient w.r.t. the activation output into the
// gradient w.r.t. the pre-activation: dZ = dA ⊙ g'(Z).
func (a Activation) Backward(dA, z *mat.Dense) *mat.Dense {
	f := a.Activator()
	return tensor.Zip(dA, z, func(d, zv float64) float64 {
		return d * f.Derivative(zv)
	})
}

// reluFunc: f(z) = max(0, z).
type reluFunc struct{}

func (reluFunc) Apply(z float64) float64 {
	return math.Max(0, z)
}

func (reluFunc) Derivative(z float64) float64 {
	if z > 0 {
		return 1
	}
	return 0
}

// leakyReLUFunc: f(z) = z for z >= 0, slope*z otherwise.
type leakyReLUFunc struct {
	slope float64
}

func (f leakyReLUFunc) Apply(z float64) float64 {
	if z >= 0 {
		return z
	}
	return z * f.slope
}

func (f leakyReLUFunc) Derivative(z float64) float64 {
	if z >= 0 {
		return 1
	}
	return f.slope
}

// sigmoidFunc: σ(z) = 1 / (1 + exp(-z)).
type sigmoidFunc struct{}

func (sigmoidFunc) Apply(z float64) float64 {
	return sigmoid(z)
}

func (sigmoidFunc) Derivative(z float64) float64 {
	s := sigmoid(z)
	return s * (1 - s)
}

// sigmoid avoids overflowing exp for large negative inputs.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

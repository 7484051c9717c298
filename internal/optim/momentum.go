package optim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/tensor"
)

// DefaultLR is the learning rate used when MomentumConfig.LR is zero.
const DefaultLR = 0.0075

// Momentum implements gradient descent with momentum.
//
// Update rule, for weights and biases independently:
//
//	v     = beta * v + (1 - beta) * gradient
//	param = param - lr * v
//
// The velocities form the momentum store: they have the shapes of the
// parameters, start at zero and are carried across every Step of a
// training run. With Beta = 0 the rule is plain gradient descent.
//
// Example:
//
//	opt := optim.NewMomentum(params, optim.MomentumConfig{LR: 0.01, Beta: 0.9})
//	err := opt.Step(params, grads)
type Momentum struct {
	lr         float64
	beta       float64
	velocities []Velocity
}

// Velocity holds the running gradient averages of one layer.
type Velocity struct {
	W *mat.Dense
	B *mat.VecDense
}

// MomentumConfig holds configuration for the Momentum optimizer.
type MomentumConfig struct {
	LR   float64 // Learning rate (default: 0.0075)
	Beta float64 // Momentum decay in [0, 1); 0 disables momentum
}

// NewMomentum creates a Momentum optimizer with zeroed velocities shaped
// like params.
func NewMomentum(params *nn.Parameters, config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = DefaultLR
	}

	velocities := make([]Velocity, params.NumLayers())
	for i, layer := range params.Layers {
		r, c := layer.W.Dims()
		velocities[i] = Velocity{
			W: mat.NewDense(r, c, nil),
			B: mat.NewVecDense(layer.B.Len(), nil),
		}
	}

	return &Momentum{
		lr:         config.LR,
		beta:       config.Beta,
		velocities: velocities,
	}
}

// Step performs a single update of params from grads.
func (m *Momentum) Step(params *nn.Parameters, grads nn.Gradients) error {
	if len(grads) != len(m.velocities) || params.NumLayers() != len(m.velocities) {
		return fmt.Errorf("momentum step: %d gradients and %d layers for %d velocities: %w",
			len(grads), params.NumLayers(), len(m.velocities), tensor.ErrShapeMismatch)
	}

	for i, g := range grads {
		v := &m.velocities[i]
		layer := &params.Layers[i]
		if err := checkStep(i+1, v, layer, g); err != nil {
			return err
		}

		// v = beta*v + (1-beta)*g
		var scaled mat.Dense
		scaled.Scale(1-m.beta, g.DW)
		v.W.Scale(m.beta, v.W)
		v.W.Add(v.W, &scaled)

		v.B.ScaleVec(m.beta, v.B)
		v.B.AddScaledVec(v.B, 1-m.beta, g.DB)

		// param -= lr*v
		var update mat.Dense
		update.Scale(m.lr, v.W)
		layer.W.Sub(layer.W, &update)

		layer.B.AddScaledVec(layer.B, -m.lr, v.B)
	}
	return nil
}

func checkStep(l int, v *Velocity, layer *nn.Layer, g nn.LayerGradients) error {
	want := tensor.Of(v.W)
	if err := tensor.Expect(fmt.Sprintf("W%d", l), layer.W, want); err != nil {
		return err
	}
	if err := tensor.Expect(fmt.Sprintf("dW%d", l), g.DW, want); err != nil {
		return err
	}
	return tensor.Expect(fmt.Sprintf("db%d", l), g.DB, tensor.Of(v.B))
}

// Velocity returns the velocity of layer l (1-based).
func (m *Momentum) Velocity(l int) Velocity {
	return m.velocities[l-1]
}

// LR returns the learning rate.
func (m *Momentum) LR() float64 {
	return m.lr
}

// Beta returns the momentum decay.
func (m *Momentum) Beta() float64 {
	return m.beta
}

var _ Optimizer = (*Momentum)(nil)

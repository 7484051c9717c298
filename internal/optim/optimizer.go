// Package optim implements the parameter update rules used by the trainer.
//
// This package provides:
//   - Optimizer interface: Base interface for update rules
//   - Momentum: gradient descent with an exponentially weighted average of
//     past gradients
//
// Example usage:
//
//	opt := optim.NewMomentum(params, optim.MomentumConfig{
//	    LR:   0.0075,
//	    Beta: 0.9,
//	})
//
//	for _, mb := range batches {
//	    al, caches, _ := nn.Forward(mb.X, params, masks, nn.Train)
//	    grads, _ := nn.Backward(al, mb.Y, caches, masks, lambda)
//	    if err := opt.Step(params, grads); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/born-ml/ffnet/internal/nn"
)

// Optimizer is the base interface for update rules.
//
// Implementations:
//   - Step: apply one update to params in place
//   - LR: current learning rate (for reporting)
type Optimizer interface {
	// Step applies the gradients of one mini-batch to params in place.
	//
	// grads must have one entry per layer of params with matching shapes.
	// The previous parameter values are stale once Step returns.
	Step(params *nn.Parameters, grads nn.Gradients) error

	// LR returns the learning rate.
	LR() float64
}

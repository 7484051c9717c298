// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update rule for training.
//
// # Overview
//
// This package contains:
//   - Momentum: gradient descent with an exponentially weighted average of
//     past gradients
//   - Optimizer interface for custom update rules
//
// # Basic Usage
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
//
// With Beta = 0 the update is plain gradient descent.
package optim

import (
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/optim"
)

// DefaultLR is the learning rate used when none is given.
const DefaultLR = optim.DefaultLR

// Optimizer updates parameters in place from their gradients.
type Optimizer = optim.Optimizer

// Momentum implements gradient descent with momentum.
type Momentum = optim.Momentum

// MomentumConfig configures Momentum.
type MomentumConfig = optim.MomentumConfig

// Velocity holds the running gradient averages of one layer.
type Velocity = optim.Velocity

// NewMomentum creates a Momentum optimizer with zeroed velocities.
func NewMomentum(params *nn.Parameters, config MomentumConfig) *Momentum {
	return optim.NewMomentum(params, config)
}

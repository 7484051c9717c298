// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/train"
)

// ErrNotFitted is returned when predicting before a successful Fit.
var ErrNotFitted = train.ErrNotFitted

// Config holds the hyperparameters of a training run.
type Config = train.Config

// Trainer fits a binary classifier and keeps the trained parameters.
type Trainer = train.Trainer

// DefaultConfig returns a Config with every hyperparameter at its default.
func DefaultConfig(dims nn.LayerDims) Config {
	return train.DefaultConfig(dims)
}

// New validates cfg and creates a Trainer.
//
// Example:
//
//	trainer, err := train.New(train.DefaultConfig(nn.LayerDims{2, 8, 1}))
func New(cfg Config) (*Trainer, error) {
	return train.New(cfg)
}

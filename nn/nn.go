// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
)

// Errors.
var (
	// ErrInvalidConfig is returned for invalid dims, keep probabilities or
	// hyperparameters.
	ErrInvalidConfig = nn.ErrInvalidConfig

	// ErrShapeMismatch is returned when a matrix has an unexpected shape.
	ErrShapeMismatch = nn.ErrShapeMismatch
)

// Constants.
const (
	DefaultInitScale = nn.DefaultInitScale
	Epsilon          = nn.Epsilon
	Threshold        = nn.Threshold
	LeakySlope       = nn.LeakySlope
)

// LayerDims lists layer widths, input features first.
type LayerDims = nn.LayerDims

// Layer holds the weights and biases of one layer.
type Layer = nn.Layer

// Parameters holds every layer of a network.
type Parameters = nn.Parameters

// InitParameters creates parameters with N(0, 1)·scale weights and zero
// biases.
//
// Example:
//
//	params, err := nn.InitParameters(nn.LayerDims{784, 20, 1}, 0.01, rng)
func InitParameters(dims LayerDims, scale float64, rng *rand.Rand) (*Parameters, error) {
	return nn.InitParameters(dims, scale, rng)
}

// Activations

// Activation identifies an element-wise nonlinearity.
type Activation = nn.Activation

// Activator evaluates an activation and its derivative.
type Activator = nn.Activator

// Supported activations.
const (
	ReLU      = nn.ReLU
	LeakyReLU = nn.LeakyReLU
	Sigmoid   = nn.Sigmoid
)

// Dropout

// Masks holds the dropout masks of one mini-batch.
type Masks = nn.Masks

// FullKeepProb returns keep probabilities that disable dropout.
func FullKeepProb(dims LayerDims) []float64 {
	return nn.FullKeepProb(dims)
}

// GenerateMasks draws dropout masks for a batch of batchSize examples.
func GenerateMasks(dims LayerDims, keepProb []float64, batchSize int, rng *rand.Rand) (*Masks, error) {
	return nn.GenerateMasks(dims, keepProb, batchSize, rng)
}

// Propagation

// Mode selects training or inference behavior of Forward.
type Mode = nn.Mode

// Forward modes.
const (
	Inference = nn.Inference
	Train     = nn.Train
)

// Cache records what Backward needs from one layer's forward step.
type Cache = nn.Cache

// LayerGradients holds the gradients of one layer.
type LayerGradients = nn.LayerGradients

// Gradients holds the gradients of every layer.
type Gradients = nn.Gradients

// Forward propagates x through params. Train mode requires masks.
func Forward(x *mat.Dense, params *Parameters, masks *Masks, mode Mode) (*mat.Dense, []Cache, error) {
	return nn.Forward(x, params, masks, mode)
}

// Backward computes gradients of the regularized cost for every layer.
func Backward(al, y *mat.Dense, caches []Cache, masks *Masks, lambda float64) (Gradients, error) {
	return nn.Backward(al, y, caches, masks, lambda)
}

// Cost returns cross-entropy plus the L2 penalty.
func Cost(y, al *mat.Dense, params *Parameters, lambda float64) (float64, error) {
	return nn.Cost(y, al, params, lambda)
}

// Predict labels the columns of x and returns the probabilities.
func Predict(x *mat.Dense, params *Parameters) (labels, probs *mat.Dense, err error) {
	return nn.Predict(x, params)
}

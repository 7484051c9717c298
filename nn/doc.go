// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the building blocks of a fully-connected binary
// classifier.
//
// # Overview
//
// This package contains:
//   - LayerDims and Parameters: network shape and trainable weights
//   - Activations: ReLU, LeakyReLU, Sigmoid
//   - Forward and Backward: manual propagation with inverted dropout
//   - Cost: binary cross-entropy with L2 regularization
//   - Predict: thresholded inference
//
// Matrices are gonum *mat.Dense values laid out column-major by example:
// X has shape (features, m) and labels have shape (1, m).
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/ffnet/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    dims := nn.LayerDims{2, 8, 1}
//	    params, _ := nn.InitParameters(dims, nn.DefaultInitScale, rng)
//
//	    masks, _ := nn.GenerateMasks(dims, []float64{1, 0.8, 1}, m, rng)
//	    al, caches, _ := nn.Forward(x, params, masks, nn.Train)
//	    cost, _ := nn.Cost(y, al, params, 0.1)
//	    grads, _ := nn.Backward(al, y, caches, masks, 0.1)
//	}
//
// # Activations
//
// Hidden layers use LeakyReLU (slope 0.01 for negative inputs) and the
// output layer uses Sigmoid. The activation of a layer is fixed by its
// position and is not configurable.
//
// # Dropout
//
// Dropout is inverted: kept activations are divided by the keep probability
// during training, so inference needs no rescaling. A keep probability of 1
// for every layer disables dropout.
package nn

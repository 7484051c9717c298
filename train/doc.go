// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train fits binary classifiers end to end.
//
// # Overview
//
// A Trainer owns the whole training loop: parameter initialization,
// per-epoch shuffling into mini-batches, dropout, forward and backward
// propagation and momentum updates. After Fit it keeps a copy of the
// trained parameters for Predict and Evaluate.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/nn"
//	    "github.com/born-ml/ffnet/train"
//	)
//
//	func main() {
//	    cfg := train.DefaultConfig(nn.LayerDims{784, 20, 7, 5, 1})
//	    cfg.KeepProb = []float64{1, 0.86, 0.86, 0.86, 1}
//	    cfg.PrintCost = true
//
//	    trainer, err := train.New(cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if _, err := trainer.Fit(x, y, 64); err != nil {
//	        log.Fatal(err)
//	    }
//	    acc, _ := trainer.Evaluate(xTest, yTest)
//	    fmt.Printf("test accuracy: %.2f%%\n", acc*100)
//	}
//
// # Defaults
//
// DefaultConfig sets learning rate 0.0075, 200 epochs, lambda 0.1,
// beta 0.9, no dropout and weight init scale 0.001. In a Config built by
// hand, zero Lambda and Beta are kept as given.
package train

// Package metrics aggregates training measurements for reporting.
package metrics

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// Window accumulates per-batch cost and timing across one epoch.
type Window struct {
	examples int
	batches  int
	costSum  float64 // example-weighted
	lastCost float64
	elapsed  time.Duration
}

// Record adds the cost of one mini-batch of size examples.
func (w *Window) Record(size int, cost float64, elapsed time.Duration) {
	w.examples += size
	w.batches++
	w.costSum += cost * float64(size)
	w.lastCost = cost
	w.elapsed += elapsed
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		Batches:  w.batches,
		Examples: w.examples,
		LastCost: w.lastCost,
	}
	if w.examples > 0 {
		snap.MeanCost = w.costSum / float64(w.examples)
	}
	if w.elapsed > 0 {
		snap.ExamplesPerSec = float64(w.examples) / w.elapsed.Seconds()
	}

	*w = Window{}
	return snap
}

// Snapshot represents loggable metrics for one epoch.
type Snapshot struct {
	Batches        int
	Examples       int
	MeanCost       float64 // Cost averaged over examples of every batch
	LastCost       float64 // Cost of the final batch
	ExamplesPerSec float64
}

// Accuracy returns the fraction of columns where predicted equals labels.
// Both must have the same shape; an empty input yields 0.
func Accuracy(predicted, labels mat.Matrix) float64 {
	r, c := labels.Dims()
	if r*c == 0 {
		return 0
	}
	correct := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if predicted.At(i, j) == labels.At(i, j) {
				correct++
			}
		}
	}
	return float64(correct) / float64(r*c)
}

package train

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/batch"
	"github.com/born-ml/ffnet/internal/metrics"
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/optim"
	"github.com/born-ml/ffnet/internal/tensor"
)

// ErrNotFitted is returned by Predict and Evaluate before a successful Fit.
var ErrNotFitted = errors.New("model has not been fitted")

// Trainer fits a binary classifier and keeps the trained parameters.
//
// All randomness (weight init, shuffling, dropout) comes from a single
// generator seeded from Config.Seed, so two trainers with the same nonzero
// seed and inputs produce identical parameters. A Trainer is not safe for
// concurrent use.
//
// Example:
//
//	cfg := train.DefaultConfig(nn.LayerDims{2, 8, 1})
//	cfg.PrintCost = true
//	tr, err := train.New(cfg)
//	if err != nil {
//	    return err
//	}
//	params, err := tr.Fit(x, y, 64)
//	labels, probs, err := tr.Predict(xTest)
type Trainer struct {
	cfg     Config
	rng     *rand.Rand
	history []float64
	params  *nn.Parameters // trained snapshot, nil until Fit succeeds
}

// New validates cfg and creates a Trainer.
func New(cfg Config) (*Trainer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Trainer{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (t *Trainer) Config() Config {
	return t.cfg
}

// Fit trains a freshly initialized network on x (features, m) and y (1, m).
// See FitContext.
func (t *Trainer) Fit(x, y *mat.Dense, batchSize int) (*nn.Parameters, error) {
	return t.FitContext(context.Background(), x, y, batchSize)
}

// FitContext trains a freshly initialized network and returns a copy of the
// trained parameters.
//
// Each epoch reshuffles the data into mini-batches of batchSize examples.
// For every mini-batch it draws dropout masks, runs the forward pass,
// computes the cost, backpropagates and takes one momentum step. The epoch
// cost appended to History is the example-weighted mean of the batch costs.
//
// All inputs are validated before any computation. ctx is checked between
// mini-batches; on cancellation the previous trained snapshot, if any, is
// kept.
func (t *Trainer) FitContext(ctx context.Context, x, y *mat.Dense, batchSize int) (*nn.Parameters, error) {
	if err := t.checkData(x, y, batchSize); err != nil {
		return nil, err
	}
	cfg := t.cfg
	_, m := x.Dims()

	params, err := nn.InitParameters(cfg.LayerDims, cfg.InitScale, t.rng)
	if err != nil {
		return nil, err
	}
	opt := optim.NewMomentum(params, optim.MomentumConfig{LR: cfg.LearningRate, Beta: cfg.Beta})

	if cfg.PrintCost {
		cfg.Logger.Printf("fit layers=%v examples=%d batch_size=%d epochs=%d lr=%g lambda=%g beta=%g",
			[]int(cfg.LayerDims), m, batchSize, cfg.Epochs, cfg.LearningRate, cfg.Lambda, cfg.Beta)
	}

	history := make([]float64, 0, cfg.Epochs)
	var window metrics.Window
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		batches, err := batch.Partition(x, y, batchSize, t.rng)
		if err != nil {
			return nil, err
		}

		for _, mb := range batches {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("fit interrupted at epoch %d: %w", epoch, err)
			}
			start := time.Now()
			cost, err := t.step(params, opt, mb)
			if err != nil {
				return nil, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			window.Record(mb.Size(), cost, time.Since(start))
		}

		snap := window.Snapshot()
		history = append(history, snap.MeanCost)
		if cfg.PrintCost && (epoch%cfg.ReportEvery == 0 || epoch == cfg.Epochs-1) {
			cfg.Logger.Printf("epoch=%d cost=%.6f examples_per_sec=%.1f",
				epoch, snap.MeanCost, snap.ExamplesPerSec)
		}
	}

	t.history = history
	t.params = params.Clone()
	return params, nil
}

// step runs one forward/backward pass over mb and updates params.
func (t *Trainer) step(params *nn.Parameters, opt optim.Optimizer, mb batch.MiniBatch) (float64, error) {
	masks, err := nn.GenerateMasks(t.cfg.LayerDims, t.cfg.KeepProb, mb.Size(), t.rng)
	if err != nil {
		return 0, err
	}
	al, caches, err := nn.Forward(mb.X, params, masks, nn.Train)
	if err != nil {
		return 0, err
	}
	cost, err := nn.Cost(mb.Y, al, params, t.cfg.Lambda)
	if err != nil {
		return 0, err
	}
	grads, err := nn.Backward(al, mb.Y, caches, masks, t.cfg.Lambda)
	if err != nil {
		return 0, err
	}
	if err := opt.Step(params, grads); err != nil {
		return 0, err
	}
	return cost, nil
}

// checkData validates the training set against the configured dims.
func (t *Trainer) checkData(x, y *mat.Dense, batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("%w: batch size %d (must be > 0)", nn.ErrInvalidConfig, batchSize)
	}
	if x == nil || y == nil {
		return fmt.Errorf("%w: nil features or labels", nn.ErrInvalidConfig)
	}
	_, m := x.Dims()
	if err := tensor.Expect("features", x, tensor.Shape{Rows: t.cfg.LayerDims[0], Cols: m}); err != nil {
		return err
	}
	if err := tensor.Expect("labels", y, tensor.Shape{Rows: 1, Cols: m}); err != nil {
		return err
	}
	for j, v := range y.RawRowView(0) {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: label %d is %v (must be 0 or 1)", nn.ErrInvalidConfig, j, v)
		}
	}
	return nil
}

// Predict labels the columns of x with the trained parameters and returns
// the labels (1, m) together with the output probabilities (1, m).
func (t *Trainer) Predict(x *mat.Dense) (labels, probs *mat.Dense, err error) {
	if t.params == nil {
		return nil, nil, ErrNotFitted
	}
	return nn.Predict(x, t.params)
}

// Evaluate returns the fraction of examples in x whose predicted label
// matches y.
func (t *Trainer) Evaluate(x, y *mat.Dense) (float64, error) {
	labels, _, err := t.Predict(x)
	if err != nil {
		return 0, err
	}
	if err := tensor.Expect("labels", y, tensor.Of(labels)); err != nil {
		return 0, err
	}
	return metrics.Accuracy(labels, y), nil
}

// History returns the cost of every epoch of the last Fit.
func (t *Trainer) History() []float64 {
	return append([]float64(nil), t.history...)
}

// Parameters returns a copy of the trained parameters, or nil before Fit.
func (t *Trainer) Parameters() *nn.Parameters {
	if t.params == nil {
		return nil
	}
	return t.params.Clone()
}

// Package train fits a feed-forward binary classifier with mini-batch
// gradient descent with momentum.
package train

import (
	"fmt"
	"log"

	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/optim"
)

// Default hyperparameters.
const (
	DefaultEpochs      = 200
	DefaultLambda      = 0.1
	DefaultBeta        = 0.9
	DefaultReportEvery = 10
)

// Config holds the hyperparameters of a training run.
//
// Zero values of LearningRate, Epochs, InitScale, ReportEvery, KeepProb and
// Logger are replaced by their defaults. Lambda and Beta are used as given
// since zero is meaningful for both; use DefaultConfig to start from the
// usual values.
type Config struct {
	LayerDims    nn.LayerDims
	LearningRate float64   // Step size, > 0; zero selects 0.0075
	Epochs       int       // Passes over the training set, > 0; zero selects 200
	Lambda       float64   // L2 regularization strength, >= 0
	Beta         float64   // Momentum decay in [0, 1)
	KeepProb     []float64 // Per-layer keep probability, len(LayerDims) entries (default: all 1)
	InitScale    float64   // Weight init scale (default: 0.001)
	PrintCost    bool      // Log the epoch cost
	ReportEvery  int       // Epochs between cost lines (default: 10)
	Seed         int64     // RNG seed; 0 seeds from the clock
	Logger       *log.Logger
}

// DefaultConfig returns a Config with every hyperparameter set to its
// default for the given layer dims.
func DefaultConfig(dims nn.LayerDims) Config {
	return Config{
		LayerDims:    dims.Clone(),
		LearningRate: optim.DefaultLR,
		Epochs:       DefaultEpochs,
		Lambda:       DefaultLambda,
		Beta:         DefaultBeta,
		KeepProb:     nn.FullKeepProb(dims),
		InitScale:    nn.DefaultInitScale,
		ReportEvery:  DefaultReportEvery,
	}
}

// withDefaults fills zero fields that have no meaningful zero value.
func (c Config) withDefaults() Config {
	c.LayerDims = c.LayerDims.Clone()
	if c.LearningRate == 0 {
		c.LearningRate = optim.DefaultLR
	}
	if c.Epochs == 0 {
		c.Epochs = DefaultEpochs
	}
	if c.InitScale == 0 {
		c.InitScale = nn.DefaultInitScale
	}
	if c.ReportEvery == 0 {
		c.ReportEvery = DefaultReportEvery
	}
	if c.KeepProb == nil {
		c.KeepProb = nn.FullKeepProb(c.LayerDims)
	} else {
		c.KeepProb = append([]float64(nil), c.KeepProb...)
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

// Validate reports the first invalid hyperparameter, wrapping
// nn.ErrInvalidConfig. It checks c as given; New fills zero defaults first,
// so a zero LearningRate or Epochs passes New but fails Validate.
func (c Config) Validate() error {
	if err := c.LayerDims.Validate(); err != nil {
		return err
	}
	if out := c.LayerDims[len(c.LayerDims)-1]; out != 1 {
		return fmt.Errorf("%w: output layer width %d (binary classifier needs 1)", nn.ErrInvalidConfig, out)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate %g (must be > 0)", nn.ErrInvalidConfig, c.LearningRate)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs %d (must be > 0)", nn.ErrInvalidConfig, c.Epochs)
	}
	if c.Lambda < 0 {
		return fmt.Errorf("%w: lambda %g (must be >= 0)", nn.ErrInvalidConfig, c.Lambda)
	}
	if c.Beta < 0 || c.Beta >= 1 {
		return fmt.Errorf("%w: beta %g (must be in [0, 1))", nn.ErrInvalidConfig, c.Beta)
	}
	if c.InitScale < 0 {
		return fmt.Errorf("%w: init scale %g (must be >= 0)", nn.ErrInvalidConfig, c.InitScale)
	}
	if c.ReportEvery < 0 {
		return fmt.Errorf("%w: report interval %d (must be >= 0)", nn.ErrInvalidConfig, c.ReportEvery)
	}
	if c.KeepProb != nil {
		if err := nn.ValidateKeepProb(c.LayerDims, c.KeepProb); err != nil {
			return err
		}
	}
	return nil
}

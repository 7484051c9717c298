// Package config loads the YAML description of a training run.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/train"
)

// Dataset kinds.
const (
	KindCSV   = "csv"
	KindMNIST = "mnist"
	KindXOR   = "xor"
	KindBlobs = "blobs"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	LayerDims    []int     `yaml:"layer_dims"`
	LearningRate float64   `yaml:"learning_rate"`
	Epochs       int       `yaml:"epochs"`
	Lambda       float64   `yaml:"lambda"`
	Beta         float64   `yaml:"beta"`
	KeepProb     []float64 `yaml:"keep_prob"`
	InitScale    float64   `yaml:"init_scale"`
	BatchSize    int       `yaml:"batch_size"`
	Seed         int64     `yaml:"seed"`
	PrintCost    bool      `yaml:"print_cost"`
	ReportEvery  int       `yaml:"report_every"`
	Dataset      Dataset   `yaml:"dataset"`
}

// Dataset selects and parameterizes the training data source.
type Dataset struct {
	Kind         string  `yaml:"kind"`
	Path         string  `yaml:"path"`
	LabelColumn  int     `yaml:"label_column"`
	Header       bool    `yaml:"header"`
	Digits       [2]int  `yaml:"digits"` // MNIST: positive digit, negative digit
	Limit        int     `yaml:"limit"`  // MNIST: max examples per split, 0 = all
	Samples      int     `yaml:"samples"`
	Separation   float64 `yaml:"separation"`
	TestFraction float64 `yaml:"test_fraction"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	LearningRate float64
	Epochs       int
	BatchSize    int
	Seed         int64
	DataPath     string
	PrintCost    bool
}

// Default returns the configuration of a small XOR run.
func Default() *Config {
	return &Config{
		LayerDims:    []int{2, 8, 1},
		LearningRate: 0.1,
		Epochs:       2000,
		Lambda:       0,
		Beta:         0.9,
		InitScale:    1.0,
		BatchSize:    4,
		ReportEvery:  200,
		Dataset:      Dataset{Kind: KindXOR},
	}
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a Config from YAML. Unknown keys are errors.
// Keys missing from the document keep the values of Default.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.DataPath != "" {
		c.Dataset.Path = o.DataPath
	}
	if o.PrintCost {
		c.PrintCost = true
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if err := c.TrainConfig(nil).Validate(); err != nil {
		return err
	}

	d := c.Dataset
	switch d.Kind {
	case KindCSV:
		if d.Path == "" {
			return errors.New("dataset.path is required for csv data")
		}
		if d.LabelColumn < 0 {
			return fmt.Errorf("dataset.label_column must be >= 0 (got %d)", d.LabelColumn)
		}
	case KindMNIST:
		if d.Path == "" {
			return errors.New("dataset.path is required for mnist data")
		}
		if d.Digits[0] == d.Digits[1] {
			return fmt.Errorf("dataset.digits must name two different digits (got %v)", d.Digits)
		}
		for _, digit := range d.Digits {
			if digit < 0 || digit > 9 {
				return fmt.Errorf("dataset.digits out of range: %v", d.Digits)
			}
		}
	case KindXOR:
	case KindBlobs:
		if d.Samples <= 0 {
			return fmt.Errorf("dataset.samples must be > 0 (got %d)", d.Samples)
		}
		if d.Separation <= 0 {
			return fmt.Errorf("dataset.separation must be > 0 (got %v)", d.Separation)
		}
	default:
		return fmt.Errorf("unknown dataset.kind %q", d.Kind)
	}
	if d.TestFraction < 0 || d.TestFraction >= 1 {
		return fmt.Errorf("dataset.test_fraction must be in [0, 1) (got %v)", d.TestFraction)
	}
	return nil
}

// TrainConfig converts c into trainer hyperparameters logging to logger.
func (c *Config) TrainConfig(logger *log.Logger) train.Config {
	var keep []float64
	if len(c.KeepProb) > 0 {
		keep = append(keep, c.KeepProb...)
	}
	return train.Config{
		LayerDims:    nn.LayerDims(c.LayerDims).Clone(),
		LearningRate: c.LearningRate,
		Epochs:       c.Epochs,
		Lambda:       c.Lambda,
		Beta:         c.Beta,
		KeepProb:     keep,
		InitScale:    c.InitScale,
		PrintCost:    c.PrintCost,
		ReportEvery:  c.ReportEvery,
		Seed:         c.Seed,
		Logger:       logger,
	}
}

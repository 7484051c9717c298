// Package main provides the ffnet training CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/born-ml/ffnet/internal/config"
	"github.com/born-ml/ffnet/internal/dataset"
	"github.com/born-ml/ffnet/internal/parallel"
	"github.com/born-ml/ffnet/internal/tensor"
	"github.com/born-ml/ffnet/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("ffnet %s\n", version)
		return
	}

	cfgPath := flag.String("config", "", "Path to YAML config (default: built-in XOR run)")
	lr := flag.Float64("lr", 0, "Override learning rate")
	epochs := flag.Int("epochs", 0, "Override number of epochs")
	batchSize := flag.Int("batch-size", 0, "Override mini-batch size")
	seed := flag.Int64("seed", 0, "Override PRNG seed")
	data := flag.String("data", "", "Override dataset path")
	printCost := flag.Bool("print-cost", false, "Log the cost during training")
	workers := flag.Int("workers", 0, "Goroutines for element-wise ops (0 = NumCPU, 1 = sequential)")

	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		LearningRate: *lr,
		Epochs:       *epochs,
		BatchSize:    *batchSize,
		Seed:         *seed,
		DataPath:     *data,
		PrintCost:    *printCost,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	pcfg := parallel.DefaultConfig()
	if *workers > 0 {
		pcfg.NumWorkers = *workers
		pcfg.Enabled = *workers > 1
	}
	tensor.SetParallel(pcfg)

	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	trainSet, testSet, err := loadData(cfg.Dataset, rng)
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}
	log.Printf("dataset=%s features=%d train=%d test=%d",
		cfg.Dataset.Kind, trainSet.NumFeatures(), trainSet.NumExamples(), numExamples(testSet))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trainer, err := train.New(cfg.TrainConfig(log.Default()))
	if err != nil {
		log.Fatalf("invalid training config: %v", err)
	}

	start := time.Now()
	if _, err := trainer.FitContext(ctx, trainSet.X, trainSet.Y, cfg.BatchSize); err != nil {
		log.Fatalf("training failed: %v", err)
	}
	history := trainer.History()
	log.Printf("done epochs=%d final_cost=%.6f elapsed=%s",
		len(history), history[len(history)-1], time.Since(start).Round(time.Millisecond))

	report(trainer, "train", trainSet)
	if testSet != nil {
		report(trainer, "test", testSet)
	}
}

// loadData builds the train and optional test split for d.
func loadData(d config.Dataset, rng *rand.Rand) (trainSet, testSet *dataset.Dataset, err error) {
	var all *dataset.Dataset
	switch d.Kind {
	case config.KindMNIST:
		// MNIST ships its own test split.
		return dataset.LoadMNISTBinary(d.Path, d.Digits[0], d.Digits[1], d.Limit)
	case config.KindCSV:
		all, err = dataset.LoadCSVFile(d.Path, d.LabelColumn, d.Header)
	case config.KindBlobs:
		all, err = dataset.Blobs(d.Samples, d.Separation, rng)
	case config.KindXOR:
		all = dataset.XOR()
	default:
		err = fmt.Errorf("unknown dataset kind %q", d.Kind)
	}
	if err != nil {
		return nil, nil, err
	}
	return dataset.Split(all, d.TestFraction, rng)
}

func report(trainer *train.Trainer, name string, d *dataset.Dataset) {
	acc, err := trainer.Evaluate(d.X, d.Y)
	if err != nil {
		log.Fatalf("evaluate %s: %v", name, err)
	}
	log.Printf("split=%s examples=%d accuracy=%.4f", name, d.NumExamples(), acc)
}

func numExamples(d *dataset.Dataset) int {
	if d == nil {
		return 0
	}
	return d.NumExamples()
}

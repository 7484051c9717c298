package nn

import (
	"errors"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Common errors.
var (
	// ErrInvalidConfig is returned for invalid layer dims, keep probabilities,
	// batch sizes or hyperparameters. It is reported before any computation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrShapeMismatch is re-exported from the tensor package so callers of
	// nn do not need to import it for errors.Is checks.
	ErrShapeMismatch = tensor.ErrShapeMismatch
)

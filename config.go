package manifold

import (
	"github.com/sepkit/manifold/model"
	"github.com/sepkit/manifold/quantize"
)

// Default analysis parameters, applied by DefaultConfig and the CLI.
const (
	DefaultWindowBytes = 64
	DefaultStepBytes   = 48
	DefaultPrecision   = 3
)

// Config is re-exported from the model package for convenience.
type Config = model.Config

// DefaultConfig returns the default analysis parameters.
func DefaultConfig() Config {
	cfg, _ := NewConfig(DefaultWindowBytes, DefaultStepBytes, DefaultPrecision)
	return cfg
}

// NewConfig builds a validated Config from caller-facing byte units.
// stepBytes below 1 is clamped to 1 (a zero stride would never advance);
// windowBytes < 1 and precision < 0 are ConfigErrors.
func NewConfig(windowBytes, stepBytes, precision int) (Config, error) {
	if windowBytes < 1 {
		return Config{}, configError("window_bytes", windowBytes, ErrZeroWindow)
	}
	if precision < 0 {
		return Config{}, configError("signature_precision", precision, ErrNegativePrecision)
	}
	if stepBytes < 1 {
		stepBytes = 1
	}
	if precision > quantize.MaxPrecision {
		precision = quantize.MaxPrecision
	}
	return Config{
		WindowBits:         windowBytes * 8,
		StepBits:           stepBytes * 8,
		SignaturePrecision: precision,
	}, nil
}

// normalizeConfig validates a bit-unit Config and returns the normalized
// form that is echoed in the output. Validation happens exactly once, at
// call entry.
func normalizeConfig(cfg Config) (Config, error) {
	if cfg.WindowBits < 1 {
		return Config{}, configError("window_bits", cfg.WindowBits, ErrZeroWindow)
	}
	if cfg.SignaturePrecision < 0 {
		return Config{}, configError("signature_precision", cfg.SignaturePrecision, ErrNegativePrecision)
	}
	norm := cfg
	if norm.WindowBits < 8 {
		norm.WindowBits = 8
	}
	if norm.StepBits < 8 {
		norm.StepBits = 8
	}
	if norm.SignaturePrecision > quantize.MaxPrecision {
		norm.SignaturePrecision = quantize.MaxPrecision
	}
	return norm, nil
}

package manifold

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroWindow is returned when the configured window length is zero
	// or negative.
	ErrZeroWindow = errors.New("window length must be positive")

	// ErrNegativePrecision is returned when the signature precision is
	// negative.
	ErrNegativePrecision = errors.New("signature precision must be non-negative")
)

// ConfigError indicates an invalid analysis parameter. It is raised at call
// entry, before any window is produced; a call that returns a ConfigError
// never yields a partial manifold.
//
// The underlying sentinel (ErrZeroWindow, ErrNegativePrecision) can be
// matched with errors.Is.
type ConfigError struct {
	Field string
	Value int
	cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s=%d: %v", e.Field, e.Value, e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }

func configError(field string, value int, cause error) error {
	return &ConfigError{Field: field, Value: value, cause: cause}
}

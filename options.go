package manifold

import (
	"log/slog"
	"runtime"

	"github.com/sepkit/manifold/aggregate"
	"github.com/sepkit/manifold/codec"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	hazardPercentile float64
	concurrency      int
}

// Option configures Analyzer behavior.
//
// Options exist to avoid exploding the API surface (e.g. codec-specific
// constructor variants).
type Option func(*options)

// WithCodec configures the codec used for document export.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithHazardPercentile configures the percentile used for the hazard gate
// threshold. Values outside [0, 1] are clamped. The default is 0.8.
func WithHazardPercentile(p float64) Option {
	return func(o *options) {
		o.hazardPercentile = p
	}
}

// WithConcurrency caps the number of buffers analyzed in parallel by
// AnalyzeBatch. Values below 1 fall back to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &manifold.BasicMetricsCollector{}
//	a := manifold.New(manifold.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Analyses: %d, Avg latency: %dns\n", stats.AnalyzeCount, stats.AnalyzeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := manifold.NewJSONLogger(slog.LevelInfo)
//	a := manifold.New(manifold.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            nil,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		hazardPercentile: aggregate.DefaultHazardPercentile,
		concurrency:      runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}

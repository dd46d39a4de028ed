package manifold

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    analyzeCounter   prometheus.Counter
//	    analyzeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordAnalyze(bufLen, windows int, duration time.Duration, err error) {
//	    p.analyzeCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordAnalyze is called after each analysis pass.
	// bufLen is the input size in bytes, windows the number of windows
	// produced, duration the total time taken, err nil on success.
	RecordAnalyze(bufLen, windows int, duration time.Duration, err error)

	// RecordExport is called after each document export.
	// size is the serialized size in bytes.
	RecordExport(size int, duration time.Duration, err error)

	// RecordBatch is called after each batch analysis pass.
	// total is the number of buffers attempted, failed the number that
	// returned an error.
	RecordBatch(total, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAnalyze(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AnalyzeCount      atomic.Int64
	AnalyzeErrors     atomic.Int64
	AnalyzeBytes      atomic.Int64
	AnalyzeWindows    atomic.Int64
	AnalyzeTotalNanos atomic.Int64
	ExportCount       atomic.Int64
	ExportErrors      atomic.Int64
	ExportBytes       atomic.Int64
	BatchCount        atomic.Int64
	BatchItems        atomic.Int64
	BatchFailed       atomic.Int64
}

// RecordAnalyze implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAnalyze(bufLen, windows int, duration time.Duration, err error) {
	b.AnalyzeCount.Add(1)
	b.AnalyzeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AnalyzeErrors.Add(1)
		return
	}
	b.AnalyzeBytes.Add(int64(bufLen))
	b.AnalyzeWindows.Add(int64(windows))
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(size int, duration time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
		return
	}
	b.ExportBytes.Add(int64(size))
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(total, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(total))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AnalyzeCount:    b.AnalyzeCount.Load(),
		AnalyzeErrors:   b.AnalyzeErrors.Load(),
		AnalyzeBytes:    b.AnalyzeBytes.Load(),
		AnalyzeWindows:  b.AnalyzeWindows.Load(),
		AnalyzeAvgNanos: b.getAvgAnalyzeNanos(),
		ExportCount:     b.ExportCount.Load(),
		ExportErrors:    b.ExportErrors.Load(),
		ExportBytes:     b.ExportBytes.Load(),
		BatchCount:      b.BatchCount.Load(),
		BatchItems:      b.BatchItems.Load(),
		BatchFailed:     b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAnalyzeNanos() int64 {
	count := b.AnalyzeCount.Load()
	if count == 0 {
		return 0
	}
	return b.AnalyzeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AnalyzeCount    int64
	AnalyzeErrors   int64
	AnalyzeBytes    int64
	AnalyzeWindows  int64
	AnalyzeAvgNanos int64
	ExportCount     int64
	ExportErrors    int64
	ExportBytes     int64
	BatchCount      int64
	BatchItems      int64
	BatchFailed     int64
}

package manifold

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sepkit/manifold/aggregate"
	"github.com/sepkit/manifold/document"
	"github.com/sepkit/manifold/model"
	"github.com/sepkit/manifold/quantize"
	"github.com/sepkit/manifold/signature"
	"github.com/sepkit/manifold/window"
)

// Manifold is re-exported from the model package for convenience.
type Manifold = model.Manifold

// WindowRecord is re-exported from the model package for convenience.
type WindowRecord = model.WindowRecord

// Analyzer runs analysis passes over byte buffers. It is stateless between
// calls and safe for concurrent use; construct once and share.
type Analyzer struct {
	opts     options
	exporter *document.Exporter
}

// New creates an Analyzer.
func New(optFns ...Option) *Analyzer {
	o := applyOptions(optFns)
	return &Analyzer{
		opts:     o,
		exporter: document.NewExporter(o.codec),
	}
}

// Analyze slices data into overlapping windows, extracts and quantizes one
// signature per window, and folds the records into buffer-wide aggregates.
//
// Analysis is a pure function of (data, cfg): the same input always yields
// the same manifold. data is borrowed read-only for the duration of the call
// and the returned manifold holds no reference to it. An empty buffer yields
// a manifold with zero windows and zeroed totals, not an error.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, cfg Config) (*Manifold, error) {
	start := time.Now()
	m, err := a.analyze(data, cfg)
	windows := 0
	if m != nil {
		windows = len(m.Windows)
	}
	a.opts.metricsCollector.RecordAnalyze(len(data), windows, time.Since(start), err)
	a.opts.logger.LogAnalyze(ctx, len(data), windows, err)
	return m, err
}

func (a *Analyzer) analyze(data []byte, cfg Config) (*Manifold, error) {
	norm, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	slicer := window.New(norm.WindowBytes(), norm.StepBytes())
	quantizer := quantize.New(norm.SignaturePrecision)
	roller := signature.NewRoller(data)

	records := make([]model.WindowRecord, 0, slicer.Count(len(data)))
	for w := range slicer.Windows(len(data)) {
		sig := roller.Move(w.Offset, w.Length)
		minByte, maxByte := roller.MinMax()

		quantized := quantizer.Vector(sig.Vector())
		records = append(records, model.WindowRecord{
			Index:     len(records),
			Offset:    w.Offset,
			Length:    w.Length,
			Key:       quantizer.Key(quantized),
			Signature: quantizer.Compact(quantized),
			Quantized: quantized,
			Stats: model.LocalStats{
				MinByte:   minByte,
				MaxByte:   maxByte,
				Entropy:   sig.Entropy,
				Coherence: sig.Coherence,
				Stability: sig.Stability,
				Mean:      sig.Mean,
				Spread:    sig.Spread,
				Hazard:    sig.Hazard(),
			},
		})
	}

	return &Manifold{
		Config:       norm,
		BufferLength: len(data),
		Windows:      records,
		Aggregate:    aggregate.Compute(records, len(data), a.opts.hazardPercentile),
	}, nil
}

// AnalyzeDocument analyzes data and renders the result in document form,
// ready for export.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, data []byte, cfg Config) (document.Document, error) {
	m, err := a.Analyze(ctx, data, cfg)
	if err != nil {
		return document.Document{}, err
	}
	return document.Build(m), nil
}

// Export serializes a document through the configured codec.
func (a *Analyzer) Export(ctx context.Context, doc document.Document) ([]byte, error) {
	start := time.Now()
	data, err := a.exporter.Marshal(doc)
	a.opts.metricsCollector.RecordExport(len(data), time.Since(start), err)
	a.opts.logger.LogExport(ctx, a.exporter.Codec().Name(), len(data), err)
	return data, err
}

// AnalyzeBatch analyzes several named buffers concurrently, bounded by the
// configured concurrency. It fails fast: the first error cancels the
// remaining work and is returned, matching single-buffer validation
// semantics (one bad config fails the batch before any result is kept).
func (a *Analyzer) AnalyzeBatch(ctx context.Context, buffers map[string][]byte, cfg Config) (map[string]*Manifold, error) {
	start := time.Now()

	// Config problems fail every buffer identically, so check once up front.
	norm, err := normalizeConfig(cfg)
	if err != nil {
		a.opts.metricsCollector.RecordBatch(len(buffers), len(buffers), time.Since(start))
		return nil, err
	}

	var mu sync.Mutex
	results := make(map[string]*Manifold, len(buffers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.concurrency)

	for name, data := range buffers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := a.analyze(data, norm)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = m
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.opts.metricsCollector.RecordBatch(len(buffers), len(buffers)-len(results), time.Since(start))
		a.opts.logger.LogBatch(ctx, len(buffers), len(buffers)-len(results))
		return nil, err
	}

	a.opts.metricsCollector.RecordBatch(len(buffers), 0, time.Since(start))
	a.opts.logger.LogBatch(ctx, len(buffers), 0)
	return results, nil
}

// Analyze is a convenience wrapper around a default Analyzer.
func Analyze(data []byte, cfg Config) (*Manifold, error) {
	return New().Analyze(context.Background(), data, cfg)
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/observability"
)

// Extractor reads the full dataset from its source.
type Extractor interface {
	Extract(ctx context.Context) (domain.Dataset, error)
}

// Transformer renders one kind of report from a dataset.
type Transformer interface {
	Transform(ctx context.Context, ds domain.Dataset, kind domain.ReportKind) (domain.Report, error)
}

// Loader hands rendered reports to a destination.
type Loader interface {
	Load(ctx context.Context, reports []domain.Report) error
}

// Pipeline runs the load-render-publish pass. A pass is synchronous and
// either completes fully or returns the first error; nothing is retried.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loaders     []Loader
	kinds       []domain.ReportKind
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline that renders kinds, in order, and hands them to every loader.
func New(e Extractor, t Transformer, kinds []domain.ReportKind, logger *slog.Logger, metrics *observability.Metrics, loaders ...Loader) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loaders:     loaders,
		kinds:       kinds,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once a run has completed successfully.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no report has been generated yet")
	}
	return nil
}

// Ready reports whether a run has completed successfully.
func (p *Pipeline) Ready() bool { return p.ready.Load() }

// Run loads the dataset, renders the configured reports, and passes them to
// each loader in turn. The rendered reports are returned on success.
func (p *Pipeline) Run(ctx context.Context) ([]domain.Report, error) {
	start := time.Now()

	reports, err := p.run(ctx)
	if err != nil {
		p.metrics.LastRunSuccess.Set(0)
		return nil, err
	}

	p.metrics.LastRunSuccess.Set(1)
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("reports generated", "count", len(reports), "duration", time.Since(start))
	return reports, nil
}

func (p *Pipeline) run(ctx context.Context) ([]domain.Report, error) {
	ds, err := p.extract(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.Report, 0, len(p.kinds))
	for _, kind := range p.kinds {
		r, err := p.transform(ctx, ds, kind)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	for _, l := range p.loaders {
		if err := l.Load(ctx, reports); err != nil {
			p.metrics.PublishErrors.Inc()
			p.logger.Error("publish reports failed", "error", err, "count", len(reports))
			return nil, fmt.Errorf("publish reports: %w", err)
		}
	}
	return reports, nil
}

// Generate loads the dataset and renders a single report without publishing it.
func (p *Pipeline) Generate(ctx context.Context, kind domain.ReportKind) (domain.Report, error) {
	ds, err := p.extract(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	return p.transform(ctx, ds, kind)
}

func (p *Pipeline) extract(ctx context.Context) (domain.Dataset, error) {
	ds, err := p.extractor.Extract(ctx)
	if err != nil {
		p.metrics.LoadErrors.Inc()
		p.logger.Error("load weather data failed", "error", err)
		return nil, err
	}
	p.metrics.RecordsLoaded.Add(float64(len(ds)))
	return ds, nil
}

func (p *Pipeline) transform(ctx context.Context, ds domain.Dataset, kind domain.ReportKind) (domain.Report, error) {
	r, err := p.transformer.Transform(ctx, ds, kind)
	if err != nil {
		p.metrics.ReportErrors.WithLabelValues(string(kind)).Inc()
		p.logger.Error("render report failed", "error", err, "kind", kind, "records", len(ds))
		return domain.Report{}, err
	}
	p.metrics.ReportsGenerated.WithLabelValues(string(kind)).Inc()
	return r, nil
}

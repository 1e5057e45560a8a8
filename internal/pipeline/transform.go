package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// ReportTransformer implements Transformer using the domain report builders.
type ReportTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a ReportTransformer.
func NewTransformer(logger *slog.Logger) *ReportTransformer {
	return &ReportTransformer{logger: logger}
}

func (t *ReportTransformer) Transform(ctx context.Context, ds domain.Dataset, kind domain.ReportKind) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}
	report, err := domain.BuildReport(ds, kind)
	if err != nil {
		return domain.Report{}, err
	}
	t.logger.Debug("report rendered", "kind", kind, "id", report.ID, "days", report.Days)
	return report, nil
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReportKind names one of the rendered reports.
type ReportKind string

const (
	KindSummary ReportKind = "summary"
	KindDaily   ReportKind = "daily"
)

// AllKinds lists every report kind in output order.
var AllKinds = []ReportKind{KindSummary, KindDaily}

// reportNamespace seeds deterministic report IDs.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("weather-report"))

// ParseReportKind accepts "summary" or "daily".
func ParseReportKind(s string) (ReportKind, error) {
	switch k := ReportKind(s); k {
	case KindSummary, KindDaily:
		return k, nil
	default:
		return "", fmt.Errorf("unknown report kind %q", s)
	}
}

// Report is a rendered report plus the metadata sinks need to publish it.
type Report struct {
	ID          string     `json:"id"`
	Kind        ReportKind `json:"kind"`
	Days        int        `json:"days"`
	Body        string     `json:"body"`
	Summary     *Summary   `json:"summary,omitempty"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// BuildReport renders the requested kind of report for ds.
func BuildReport(ds Dataset, kind ReportKind) (Report, error) {
	switch kind {
	case KindSummary:
		s, err := Summarize(ds)
		if err != nil {
			return Report{}, fmt.Errorf("build summary report: %w", err)
		}
		r := newReport(kind, len(ds), s.Render())
		r.Summary = &s
		return r, nil
	case KindDaily:
		body, err := GenerateDailySummary(ds)
		if err != nil {
			return Report{}, fmt.Errorf("build daily report: %w", err)
		}
		return newReport(kind, len(ds), body), nil
	default:
		return Report{}, fmt.Errorf("unknown report kind %q", kind)
	}
}

// newReport stamps a report. The ID depends only on kind and body, so the
// same dataset always yields the same ID.
func newReport(kind ReportKind, days int, body string) Report {
	return Report{
		ID:          reportID(kind, body),
		Kind:        kind,
		Days:        days,
		Body:        body,
		GeneratedAt: clock.Now().UTC(),
	}
}

func reportID(kind ReportKind, body string) string {
	return uuid.NewSHA1(reportNamespace, []byte(string(kind)+"|"+body)).String()
}

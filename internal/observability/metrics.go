package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for report generation.
type Metrics struct {
	RecordsLoaded    prometheus.Counter
	LoadErrors       prometheus.Counter
	ReportsGenerated *prometheus.CounterVec // labels: kind={summary,daily}
	ReportErrors     *prometheus.CounterVec // labels: kind={summary,daily}
	PublishErrors    prometheus.Counter
	LastRunSuccess   prometheus.Gauge

	RunDuration prometheus.Histogram
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "records_loaded_total",
			Help:      help("Total weather records read from the input file."),
		}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "load_errors_total",
			Help:      help("Total failed attempts to load the input file."),
		}),
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "reports_generated_total",
			Help:      help("Reports rendered, by kind."),
		}, []string{"kind"}),
		ReportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "report_errors_total",
			Help:      help("Report rendering failures, by kind."),
		}, []string{"kind"}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "publish_errors_total",
			Help:      help("Total failures handing reports to a sink."),
		}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_report",
			Name:      "last_run_success",
			Help:      help("1 when the most recent run completed, 0 when it failed."),
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "run_duration_seconds",
			Help:      help("Duration of a complete load-render-publish run."),
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(
		m.RecordsLoaded,
		m.LoadErrors,
		m.ReportsGenerated,
		m.ReportErrors,
		m.PublishErrors,
		m.LastRunSuccess,
		m.RunDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

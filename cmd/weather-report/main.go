// Command weather-report reads daily weather readings from a CSV file and
// prints an overview and a per-day breakdown in Celsius.
//
// Usage:
//
//	go run ./cmd/weather-report -csv data/forecast_5days_a.csv
//	go run ./cmd/weather-report -report daily
//	go run ./cmd/weather-report -publish       # also send reports to Kafka
//	go run ./cmd/weather-report -serve         # serve /reports/{kind} instead of printing
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	httpadapter "github.com/couchcryptid/weather-report/internal/adapter/http"
	"github.com/couchcryptid/weather-report/internal/adapter/csvfile"
	kafkaadapter "github.com/couchcryptid/weather-report/internal/adapter/kafka"
	"github.com/couchcryptid/weather-report/internal/config"
	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/pipeline"
)

func main() {
	csvPath := flag.String("csv", "", "path to the weather CSV file (overrides WEATHER_CSV_PATH)")
	report := flag.String("report", "all", "report to print: summary, daily, or all")
	publish := flag.Bool("publish", false, "publish reports to the configured Kafka topic")
	serve := flag.Bool("serve", false, "serve health, metrics, and report endpoints until interrupted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *csvPath != "" {
		cfg.CSVPath = *csvPath
	}

	kinds, err := parseKinds(*report)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	// Reports go to stdout unless serving, so only then may logs share it.
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if *serve {
		logger = sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	}
	if err := run(cfg, kinds, *publish, *serve, logger, observability.NewMetrics(), os.Stdout); err != nil {
		logger.Error("weather report failed", "error", err, "path", cfg.CSVPath)
		os.Exit(1)
	}
}

// run generates the reports once, printing them to stdout and optionally
// publishing them. With serve set nothing is printed; the reports stay
// available over HTTP until ctx is cancelled by a signal.
func run(cfg *config.Config, kinds []domain.ReportKind, publish, serve bool, logger *slog.Logger, metrics *observability.Metrics, stdout io.Writer) error {
	var loaders []pipeline.Loader
	if !serve {
		loaders = append(loaders, pipeline.NewWriterLoader(stdout))
	}

	if publish {
		if !cfg.KafkaEnabled {
			return errors.New("-publish requires KAFKA_BROKERS")
		}
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		loaders = append(loaders, writer)
	}

	loader := csvfile.NewLoader(cfg.CSVPath, logger)
	p := pipeline.New(loader, pipeline.NewTransformer(logger), kinds, logger, metrics, loaders...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, runErr := p.Run(ctx)
	if !serve {
		return runErr
	}
	if runErr != nil {
		// Keep serving; /readyz reports not ready until a run succeeds.
		logger.Warn("initial report run failed", "error", runErr)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// parseKinds expands the -report flag; "all" means summary then daily.
func parseKinds(s string) ([]domain.ReportKind, error) {
	if s == "all" {
		return domain.AllKinds, nil
	}
	k, err := domain.ParseReportKind(s)
	if err != nil {
		return nil, err
	}
	return []domain.ReportKind{k}, nil
}

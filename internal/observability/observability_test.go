package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("report generated", "kind", "summary")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report generated", entry["msg"])
	assert.Equal(t, "summary", entry["kind"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "debug", "text")

	logger.Debug("loaded", "records", 5)
	assert.Contains(t, buf.String(), "msg=loaded")
	assert.Contains(t, buf.String(), "records=5")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel("Warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()
	m.RecordsLoaded.Add(5)
	m.ReportsGenerated.WithLabelValues("summary").Inc()

	assert.InDelta(t, 5.0, testutil.ToFloat64(m.RecordsLoaded), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.ReportsGenerated.WithLabelValues("summary")), 0)

	// A second set must not collide with the first.
	assert.NotPanics(t, func() { NewMetricsForTesting() })
}

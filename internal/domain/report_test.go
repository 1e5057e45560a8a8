package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	now := time.Date(2021, time.July, 1, 6, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { SetClock(nil) })

	t.Run("summary carries structured figures", func(t *testing.T) {
		r, err := BuildReport(twoDayDataset(), KindSummary)
		require.NoError(t, err)

		assert.Equal(t, KindSummary, r.Kind)
		assert.Equal(t, 2, r.Days)
		assert.Equal(t, now, r.GeneratedAt)
		assert.Contains(t, r.Body, "2 Day Overview")
		require.NotNil(t, r.Summary)
		assert.Equal(t, 11.7, r.Summary.AverageLow)
		assert.NotEmpty(t, r.ID)
	})

	t.Run("daily has no summary", func(t *testing.T) {
		r, err := BuildReport(twoDayDataset(), KindDaily)
		require.NoError(t, err)

		assert.Equal(t, KindDaily, r.Kind)
		assert.Nil(t, r.Summary)
		assert.Contains(t, r.Body, "---- Friday 02 July 2021 ----")
	})

	t.Run("deterministic ID", func(t *testing.T) {
		a, err := BuildReport(twoDayDataset(), KindSummary)
		require.NoError(t, err)
		b, err := BuildReport(twoDayDataset(), KindSummary)
		require.NoError(t, err)
		c, err := BuildReport(twoDayDataset(), KindDaily)
		require.NoError(t, err)

		assert.Equal(t, a.ID, b.ID)
		assert.NotEqual(t, a.ID, c.ID)
	})

	t.Run("empty dataset", func(t *testing.T) {
		_, err := BuildReport(nil, KindDaily)
		require.ErrorIs(t, err, ErrEmptyInput)
		assert.Contains(t, err.Error(), "build daily report")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := BuildReport(twoDayDataset(), ReportKind("weekly"))
		require.Error(t, err)
	})
}

func TestParseReportKind(t *testing.T) {
	k, err := ParseReportKind("summary")
	require.NoError(t, err)
	assert.Equal(t, KindSummary, k)

	k, err = ParseReportKind("daily")
	require.NoError(t, err)
	assert.Equal(t, KindDaily, k)

	_, err = ParseReportKind("all")
	require.Error(t, err)
}

package analytics

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brisaclima/brisa/internal/model"
	"github.com/brisaclima/brisa/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "brisa.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestBuildReportAggregates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	for i, ms := range []int64{120, 80, 100} {
		_, err := st.InsertLoadSample(ctx, model.LoadSample{
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
			DurationMs: ms,
			Term:       "xterm-256color",
		})
		require.NoError(t, err)
	}

	report, err := BuildReport(ctx, st, model.MetricsConfig{})
	require.NoError(t, err)
	require.Len(t, report.Samples, 3)
	require.Equal(t, int64(80), report.MinMs)
	require.Equal(t, int64(120), report.MaxMs)
	require.InDelta(t, 100.0, report.AvgMs, 0.001)
}

func TestBuildReportEmpty(t *testing.T) {
	st := openTestStore(t)

	report, err := BuildReport(context.Background(), st, model.MetricsConfig{})
	require.NoError(t, err)
	require.Empty(t, report.Samples)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, report, 80))
	require.Equal(t, "No load samples recorded yet.\n", buf.String())
}

func TestRenderReportOutput(t *testing.T) {
	report := Report{
		Samples: []model.LoadSample{
			{RecordedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), DurationMs: 120, Term: "tmux"},
			{RecordedAt: time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC), DurationMs: 95, Term: "tmux"},
		},
		AvgMs: 107.5,
		MinMs: 95,
		MaxMs: 120,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, report, 80))
	out := buf.String()
	require.Contains(t, out, "Recorded")
	require.Contains(t, out, "tmux")
	require.Contains(t, out, "loads=2  avg=107.5ms  min=95ms  max=120ms")
	require.Contains(t, out, "trend ")

	trendLine := ""
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.HasPrefix(line, "trend ") {
			trendLine = line
		}
	}
	require.Len(t, strings.TrimPrefix(trendLine, "trend "), 2)
}

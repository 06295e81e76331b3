package analytics

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/brisaclima/brisa/internal/model"
	"github.com/brisaclima/brisa/internal/store"
)

// Report summarizes recorded load samples.
type Report struct {
	Samples []model.LoadSample
	AvgMs   float64
	MinMs   int64
	MaxMs   int64
}

// BuildReport loads and aggregates samples for metrics output.
func BuildReport(ctx context.Context, st *store.Store, cfg model.MetricsConfig) (Report, error) {
	samples, err := st.ListLoadSamples(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	report := Report{Samples: samples}
	if len(samples) == 0 {
		return report, nil
	}
	report.MinMs = samples[0].DurationMs
	report.MaxMs = samples[0].DurationMs
	var sum int64
	for _, s := range samples {
		sum += s.DurationMs
		if s.DurationMs < report.MinMs {
			report.MinMs = s.DurationMs
		}
		if s.DurationMs > report.MaxMs {
			report.MaxMs = s.DurationMs
		}
	}
	report.AvgMs = float64(sum) / float64(len(samples))
	return report, nil
}

// RenderReport writes the metrics report as a table plus a duration trend.
func RenderReport(w io.Writer, report Report, width int) error {
	if len(report.Samples) == 0 {
		_, err := fmt.Fprintln(w, "No load samples recorded yet.")
		return err
	}

	headers := []string{"Recorded", "Duration (ms)", "Term"}
	rows := make([][]string, 0, len(report.Samples))
	for _, s := range report.Samples {
		rows = append(rows, []string{
			s.RecordedAt.Local().Format("2006-01-02 15:04:05"),
			strconv.FormatInt(s.DurationMs, 10),
			s.Term,
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("loads=%d  avg=%.1fms  min=%dms  max=%dms",
		len(report.Samples), report.AvgMs, report.MinMs, report.MaxMs)
	if _, err := fmt.Fprintf(w, "\n%s\n", summary); err != nil {
		return err
	}

	values := make([]float64, len(report.Samples))
	for i, s := range report.Samples {
		values[i] = float64(s.DurationMs)
	}
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	if _, err := fmt.Fprintf(w, "trend %s\n", Sparkline(values)); err != nil {
		return err
	}
	return nil
}

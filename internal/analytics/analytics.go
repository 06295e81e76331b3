// Package analytics reports page load timing.
package analytics

import (
	"context"
	"time"

	"github.com/brisaclima/brisa/internal/model"
	"github.com/brisaclima/brisa/internal/store"
)

// Fixed identity of the load timing event.
const (
	EventName     = "load"
	EventCategory = "performance"
)

// Event is a named timing measurement.
type Event struct {
	Name     string
	Category string
	Duration time.Duration
}

// Reporter receives timing events. A nil Reporter disables reporting.
type Reporter interface {
	ReportTiming(ctx context.Context, ev Event) error
}

// Monitor measures how long the page took to become interactive and reports
// it once.
type Monitor struct {
	start    time.Time
	reporter Reporter
	reported bool
	now      func() time.Time
}

// NewMonitor creates a monitor anchored at the process start time.
func NewMonitor(start time.Time, reporter Reporter) *Monitor {
	return &Monitor{start: start, reporter: reporter, now: time.Now}
}

// PageLoaded records the load duration on the first call and forwards it to
// the reporter. Later calls and a missing reporter are no-ops; reporter
// errors are returned but never retried.
func (m *Monitor) PageLoaded(ctx context.Context) error {
	if m.reported {
		return nil
	}
	m.reported = true
	if m.reporter == nil {
		return nil
	}
	return m.reporter.ReportTiming(ctx, Event{
		Name:     EventName,
		Category: EventCategory,
		Duration: m.now().Sub(m.start),
	})
}

// Reported tells whether the load event has been recorded.
func (m *Monitor) Reported() bool {
	return m.reported
}

// StoreReporter persists timing events as load samples.
type StoreReporter struct {
	store *store.Store
	term  string
	now   func() time.Time
}

// NewStoreReporter creates a reporter backed by the local store. term tags
// the sample with the terminal it was measured in.
func NewStoreReporter(st *store.Store, term string) *StoreReporter {
	return &StoreReporter{store: st, term: term, now: time.Now}
}

// ReportTiming implements Reporter.
func (r *StoreReporter) ReportTiming(ctx context.Context, ev Event) error {
	_, err := r.store.InsertLoadSample(ctx, model.LoadSample{
		RecordedAt: r.now(),
		DurationMs: ev.Duration.Milliseconds(),
		Term:       r.term,
	})
	return err
}

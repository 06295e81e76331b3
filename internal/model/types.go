// Package model defines shared data structures.
package model

import "time"

// Config defines page behavior settings. Distances are terminal rows/columns.
type Config struct {
	ScrolledAfter     int           // header switches to its scrolled style past this offset
	TopButtonAfter    int           // scroll-top control becomes visible past this offset
	HeaderOffset      int           // rows reserved for the fixed header when jumping to an anchor
	CompactBreakpoint int           // widths at or below this use the compact nav menu
	LazyMargin        int           // pre-trigger margin for deferred figures
	StatsThreshold    float64       // visible fraction of the stats section that starts the counters
	CounterDuration   time.Duration // counter animation length
	ScrollDuration    time.Duration // smooth scroll animation length
	FrameInterval     time.Duration // animation frame step
	ScrollThrottle    time.Duration // scroll re-evaluation window
	ResizeDebounce    time.Duration // relayout delay after the last resize
	Analytics         bool          // report load timing to the local store
}

// DefaultConfig returns the page defaults.
func DefaultConfig() Config {
	return Config{
		ScrolledAfter:     0,
		TopButtonAfter:    30,
		HeaderOffset:      8,
		CompactBreakpoint: 80,
		LazyMargin:        5,
		StatsThreshold:    0.5,
		CounterDuration:   2 * time.Second,
		ScrollDuration:    400 * time.Millisecond,
		FrameInterval:     16 * time.Millisecond,
		ScrollThrottle:    100 * time.Millisecond,
		ResizeDebounce:    200 * time.Millisecond,
		Analytics:         true,
	}
}

// LoadSample captures one recorded page load.
type LoadSample struct {
	ID         int64
	RecordedAt time.Time
	DurationMs int64
	Term       string
}

// MetricsConfig defines filters for metrics output.
type MetricsConfig struct {
	Since *time.Time
	Last  int
}

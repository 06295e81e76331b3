package tui

import (
	"testing"
	"time"

	"github.com/brisaclima/brisa/internal/page"
)

func testCounters(targets ...int) *Counters {
	specs := make([]page.Counter, len(targets))
	for i, target := range targets {
		specs[i] = page.Counter{ID: string(rune('a' + i)), Label: "stat", Target: target}
	}
	return NewCounters(specs, 2500*time.Millisecond, 16*time.Millisecond)
}

func TestCountersReachTargetExactly(t *testing.T) {
	c := testCounters(100)
	if !c.Start() {
		t.Fatalf("first Start must succeed")
	}
	prev := 0
	ticks := 0
	for c.Running() {
		c.Tick()
		got := c.Display("a")
		if got < prev {
			t.Fatalf("display went backwards: %d -> %d", prev, got)
		}
		prev = got
		ticks++
		if ticks > 1000 {
			t.Fatalf("animation never finished")
		}
	}
	if got := c.Display("a"); got != 100 {
		t.Fatalf("final display = %d, want exactly 100", got)
	}
	// ~156 frames for 2500ms at 16ms per frame.
	if ticks < 100 || ticks > 200 {
		t.Fatalf("unexpected frame count %d", ticks)
	}
}

func TestCountersStartIsOneShot(t *testing.T) {
	c := testCounters(10)
	if !c.Start() {
		t.Fatalf("first Start must succeed")
	}
	for c.Running() {
		c.Tick()
	}
	if c.Start() {
		t.Fatalf("latch must block a second start")
	}
	c.Tick()
	if got := c.Display("a"); got != 10 {
		t.Fatalf("finished counter moved to %d", got)
	}
}

func TestCountersIdleBeforeStart(t *testing.T) {
	c := testCounters(50)
	c.Tick()
	c.Tick()
	if c.Running() {
		t.Fatalf("counters must not run before Start")
	}
	if got := c.Display("a"); got != 0 {
		t.Fatalf("display before start = %d, want 0", got)
	}
}

func TestCountersRunIndependently(t *testing.T) {
	c := testCounters(5, 5000)
	c.Start()
	c.Tick()
	// Each counter advances by its own per-frame step.
	small, large := c.Display("a"), c.Display("b")
	if small >= large {
		t.Fatalf("expected independent steps, got a=%d b=%d", small, large)
	}
	for c.Running() {
		c.Tick()
	}
	if got := c.Display("a"); got != 5 {
		t.Fatalf("first counter final = %d, want 5", got)
	}
	if got := c.Display("b"); got != 5000 {
		t.Fatalf("second counter final = %d, want 5000", got)
	}
}

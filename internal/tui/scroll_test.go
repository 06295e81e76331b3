package tui

import (
	"testing"
	"time"
)

func TestScrollStateThresholds(t *testing.T) {
	s := ScrollState{ScrolledAfter: 0, TopButtonAfter: 300}
	cases := []struct {
		offset     int
		scrolled   bool
		topVisible bool
	}{
		{0, false, false},
		{1, true, false},
		{299, true, false},
		{300, true, false},
		{301, true, true},
		{0, false, false},
	}
	for _, tc := range cases {
		s.Evaluate(tc.offset)
		if s.Scrolled != tc.scrolled || s.TopVisible != tc.topVisible {
			t.Errorf("offset %d: got scrolled=%v top=%v, want %v/%v",
				tc.offset, s.Scrolled, s.TopVisible, tc.scrolled, tc.topVisible)
		}
		// Re-evaluating the same offset must not flip anything.
		s.Evaluate(tc.offset)
		if s.Scrolled != tc.scrolled || s.TopVisible != tc.topVisible {
			t.Errorf("offset %d: evaluation not idempotent", tc.offset)
		}
	}
}

func TestScrollAnimLandsOnTarget(t *testing.T) {
	var a scrollAnim
	a.start(0, 100, 160*time.Millisecond)
	if !a.active {
		t.Fatalf("animation should be active")
	}
	prev := 0
	steps := 0
	for a.active {
		offset := a.step(16 * time.Millisecond)
		if offset < prev {
			t.Fatalf("offset moved backwards: %d -> %d", prev, offset)
		}
		prev = offset
		steps++
		if steps > 100 {
			t.Fatalf("animation never finished")
		}
	}
	if prev != 100 {
		t.Fatalf("final offset = %d, want exactly 100", prev)
	}
}

func TestScrollAnimNoopWhenAlreadyThere(t *testing.T) {
	var a scrollAnim
	a.start(42, 42, 160*time.Millisecond)
	if a.active {
		t.Fatalf("no-op scroll should not activate")
	}
	if got := a.step(16 * time.Millisecond); got != 42 {
		t.Fatalf("step = %d, want 42", got)
	}
}

func TestEaseInOutQuadEndpoints(t *testing.T) {
	if easeInOutQuad(0) != 0 {
		t.Fatalf("ease(0) != 0")
	}
	if easeInOutQuad(1) != 1 {
		t.Fatalf("ease(1) != 1")
	}
	if easeInOutQuad(0.5) != 0.5 {
		t.Fatalf("ease(0.5) != 0.5")
	}
}

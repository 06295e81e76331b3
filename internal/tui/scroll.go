package tui

import "time"

// ScrollState derives the header and scroll-top control state from the
// current offset. Both flags are recomputed from scratch on every
// evaluation; no history is kept.
type ScrollState struct {
	ScrolledAfter  int
	TopButtonAfter int

	Scrolled   bool
	TopVisible bool
}

// Evaluate recomputes both flags for the given offset. Idempotent.
func (s *ScrollState) Evaluate(offset int) {
	s.Scrolled = offset > s.ScrolledAfter
	s.TopVisible = offset > s.TopButtonAfter
}

// scrollAnim eases the viewport offset toward a target over a fixed
// duration. It has no external cancellation: once started it runs to the
// target.
type scrollAnim struct {
	active   bool
	from     int
	to       int
	elapsed  time.Duration
	duration time.Duration
}

func (a *scrollAnim) start(from, to int, duration time.Duration) {
	a.from = from
	a.to = to
	a.elapsed = 0
	a.duration = duration
	a.active = duration > 0 && from != to
}

// step advances the animation by one frame and returns the new offset. The
// final step lands exactly on the target and deactivates the animation.
func (a *scrollAnim) step(frame time.Duration) int {
	if !a.active {
		return a.to
	}
	a.elapsed += frame
	if a.elapsed >= a.duration {
		a.active = false
		return a.to
	}
	t := float64(a.elapsed) / float64(a.duration)
	eased := easeInOutQuad(t)
	return a.from + int(float64(a.to-a.from)*eased)
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

package tui

import (
	"math"
	"time"

	"github.com/brisaclima/brisa/internal/page"
)

// counterAnim animates one statistic from zero to its target.
type counterAnim struct {
	id      string
	target  int
	step    float64
	value   float64
	display int
	done    bool
}

func (c *counterAnim) tick() {
	if c.done {
		return
	}
	c.value += c.step
	if c.value >= float64(c.target) {
		c.value = float64(c.target)
		c.display = c.target
		c.done = true
		return
	}
	c.display = int(math.Floor(c.value))
}

// Counters drives the stats animation. The started flag is a one-shot
// latch: the animation runs at most once however often the section comes
// back into view.
type Counters struct {
	items   []*counterAnim
	started bool
}

// NewCounters prepares animations for the given counters. The per-frame
// increment is target/(duration/frame), approximating the source's 60fps
// stepping.
func NewCounters(specs []page.Counter, duration, frame time.Duration) *Counters {
	frames := 1.0
	if frame > 0 && duration > frame {
		frames = float64(duration) / float64(frame)
	}
	c := &Counters{}
	for _, spec := range specs {
		c.items = append(c.items, &counterAnim{
			id:     spec.ID,
			target: spec.Target,
			step:   float64(spec.Target) / frames,
		})
	}
	return c
}

// Start begins the animation once. It reports false when the latch was
// already set.
func (c *Counters) Start() bool {
	if c.started {
		return false
	}
	c.started = true
	return true
}

// Started reports whether the one-shot latch is set.
func (c *Counters) Started() bool {
	return c.started
}

// Running reports whether any counter is still animating.
func (c *Counters) Running() bool {
	if !c.started {
		return false
	}
	for _, item := range c.items {
		if !item.done {
			return true
		}
	}
	return false
}

// Tick advances every running counter one frame. Counters animate
// independently; each stops on its own once it reaches its target.
func (c *Counters) Tick() {
	if !c.started {
		return
	}
	for _, item := range c.items {
		item.tick()
	}
}

// Display returns the value currently shown for a counter.
func (c *Counters) Display(id string) int {
	for _, item := range c.items {
		if item.id == id {
			return item.display
		}
	}
	return 0
}

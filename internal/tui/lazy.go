package tui

import (
	"github.com/brisaclima/brisa/internal/observe"
	"github.com/brisaclima/brisa/internal/page"
)

// LazyLoader swaps deferred figure art in when figures scroll into range.
// When the platform loads deferred content natively there is nothing to do.
type LazyLoader struct {
	native bool
	obs    *observe.Observer
	loaded map[string]bool
}

// NewLazyLoader watches every lazy figure with a pre-trigger margin. Each
// figure loads exactly once and is then dropped from observation.
func NewLazyLoader(figures []page.Figure, margin int, native bool) *LazyLoader {
	l := &LazyLoader{native: native, loaded: map[string]bool{}}
	if native {
		return l
	}
	l.obs = observe.New(margin, 0, func(e observe.Entry) {
		l.loaded[e.ID] = true
		l.obs.Unobserve(e.ID)
	})
	for _, f := range figures {
		if f.Lazy {
			l.obs.Observe(f.ID, observe.Rect{})
		}
	}
	return l
}

// SetRect updates a figure's position after a relayout.
func (l *LazyLoader) SetRect(id string, r observe.Rect) {
	if l.obs != nil {
		l.obs.SetRect(id, r)
	}
}

// Update checks watched figures against the viewport.
func (l *LazyLoader) Update(vp observe.Viewport) {
	if l.obs != nil {
		l.obs.Update(vp)
	}
}

// Loaded reports whether a figure's deferred art should be shown.
func (l *LazyLoader) Loaded(id string) bool {
	if l.native {
		return true
	}
	return l.loaded[id]
}

// Watching reports whether a figure is still observed.
func (l *LazyLoader) Watching(id string) bool {
	return l.obs != nil && l.obs.Watching(id)
}

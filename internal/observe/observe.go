// Package observe tracks element visibility inside a scrolling viewport.
package observe

import "sort"

// Viewport is the visible window over the document, in rows.
type Viewport struct {
	Offset int
	Height int
}

// Rect is an element's vertical extent within the document, in rows.
type Rect struct {
	Top    int
	Height int
}

// Ratio returns the fraction of r visible in vp. The margin extends the
// viewport on both ends, so elements trigger before they are strictly on
// screen.
func Ratio(r Rect, vp Viewport, margin int) float64 {
	if r.Height <= 0 || vp.Height <= 0 {
		return 0
	}
	top := vp.Offset - margin
	bottom := vp.Offset + vp.Height + margin
	visTop := r.Top
	if top > visTop {
		visTop = top
	}
	visBottom := r.Top + r.Height
	if bottom < visBottom {
		visBottom = bottom
	}
	if visBottom <= visTop {
		return 0
	}
	return float64(visBottom-visTop) / float64(r.Height)
}

// Entry reports a watched element crossing the visibility threshold.
type Entry struct {
	ID    string
	Ratio float64
}

// Observer invokes a callback for watched elements whose visible fraction
// reaches its threshold. One-shot consumers call Unobserve from the callback.
type Observer struct {
	margin    int
	threshold float64
	callback  func(Entry)
	watched   map[string]Rect
}

// New creates an observer. A zero threshold fires as soon as any part of an
// element enters the (margin-extended) viewport.
func New(margin int, threshold float64, callback func(Entry)) *Observer {
	return &Observer{
		margin:    margin,
		threshold: threshold,
		callback:  callback,
		watched:   map[string]Rect{},
	}
}

// Observe starts watching an element.
func (o *Observer) Observe(id string, r Rect) {
	o.watched[id] = r
}

// Unobserve stops watching an element. Safe to call from the callback.
func (o *Observer) Unobserve(id string) {
	delete(o.watched, id)
}

// SetRect updates a watched element's extent after a relayout. Elements no
// longer watched are left alone.
func (o *Observer) SetRect(id string, r Rect) {
	if _, ok := o.watched[id]; ok {
		o.watched[id] = r
	}
}

// Watching reports whether an element is still observed.
func (o *Observer) Watching(id string) bool {
	_, ok := o.watched[id]
	return ok
}

// Update re-evaluates every watched element against the viewport, firing the
// callback for each one at or past the threshold. Order is deterministic.
func (o *Observer) Update(vp Viewport) {
	ids := make([]string, 0, len(o.watched))
	for id := range o.watched {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		r, ok := o.watched[id]
		if !ok {
			continue
		}
		ratio := Ratio(r, vp, o.margin)
		if ratio <= 0 || ratio < o.threshold {
			continue
		}
		if o.callback != nil {
			o.callback(Entry{ID: id, Ratio: ratio})
		}
	}
}

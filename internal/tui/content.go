package tui

import (
	"fmt"
	"strings"

	"github.com/brisaclima/brisa/internal/observe"
	"github.com/brisaclima/brisa/internal/page"
)

// docLayout records where each element landed, in content line coordinates.
type docLayout struct {
	height   int
	sections map[string]observe.Rect
	figures  map[string]observe.Rect
}

// buildContent renders the document and records element positions for the
// visibility observers.
func (m *Model) buildContent() (string, docLayout) {
	layout := docLayout{
		sections: map[string]observe.Rect{},
		figures:  map[string]observe.Rect{},
	}
	width := m.contentWidth
	var lines []string

	lines = append(lines, "", taglineStyle.Render(m.doc.Tagline), "")
	for _, sec := range m.doc.Sections {
		start := len(lines)
		title := sectionTitleStyle
		if sec.ID == m.focusID {
			title = focusedTitleStyle
		}
		lines = append(lines, title.Render(sec.Title))
		lines = append(lines, mutedStyle.Render(strings.Repeat("─", minInt(width, 40))))
		for _, p := range sec.Paragraphs {
			lines = append(lines, "")
			for _, l := range page.Wrap(p, width) {
				lines = append(lines, bodyStyle.Render(l))
			}
		}
		for _, fig := range sec.Figures {
			lines = append(lines, "")
			top := len(lines)
			lines = append(lines, m.renderFigure(fig)...)
			layout.figures[fig.ID] = observe.Rect{Top: top, Height: len(lines) - top}
			lines = append(lines, mutedStyle.Render(fig.Caption))
		}
		if len(sec.Counters) > 0 {
			lines = append(lines, "")
			for _, c := range sec.Counters {
				value := fmt.Sprintf("%5d%s", m.counters.Display(c.ID), c.Suffix)
				lines = append(lines, counterValueStyle.Render(value)+"  "+bodyStyle.Render(c.Label))
			}
		}
		if sec.HasForm {
			lines = append(lines, "")
			lines = append(lines, strings.Split(m.form.View(), "\n")...)
		}
		lines = append(lines, "", "")
		layout.sections[sec.ID] = observe.Rect{Top: start, Height: len(lines) - start}
	}

	layout.height = len(lines)
	return strings.Join(lines, "\n"), layout
}

// renderFigure pads or trims the figure art to its fixed box height so a
// lazy swap never shifts the layout.
func (m *Model) renderFigure(fig page.Figure) []string {
	art := fig.Placeholder
	style := figurePendingStyle
	if !fig.Lazy || m.lazy.Loaded(fig.ID) {
		if len(fig.Deferred) > 0 {
			art = fig.Deferred
			style = figureLoadedStyle
		}
	}
	box := make([]string, 0, fig.BoxHeight)
	for i := 0; i < fig.BoxHeight; i++ {
		if i < len(art) {
			box = append(box, style.Render(art[i]))
			continue
		}
		box = append(box, "")
	}
	return box
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brisaclima/brisa/internal/model"
	"github.com/brisaclima/brisa/internal/page"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(model.DefaultConfig(), page.Brisa(), nil)
}

// sized delivers the first window size, the readiness signal.
func sized(t *testing.T, width, height int) *Model {
	t.Helper()
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	if !m.ready {
		t.Fatalf("first window size must mark the page ready")
	}
	return m
}

// pumpFrames drives the animation loop until it goes idle.
func pumpFrames(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !m.animationActive() {
			return
		}
		m.Update(frameMsg(time.Time{}))
	}
	t.Fatalf("animation never settled")
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelBlankBeforeReady(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "" {
		t.Fatalf("unready view should be empty, got %q", got)
	}
}

func TestModelReadyAfterFirstWindowSize(t *testing.T) {
	m := sized(t, 120, 40)
	view := m.View()
	if view == "" {
		t.Fatalf("ready view should render")
	}
	if !strings.Contains(view, "Brisa Clima") {
		t.Fatalf("view missing the page title")
	}
	if m.layout.height == 0 {
		t.Fatalf("layout was not computed")
	}
}

func TestModelUnknownFragmentIsNoop(t *testing.T) {
	m := sized(t, 120, 40)
	if cmd := m.smoothScrollTo("inexistente"); cmd != nil {
		t.Fatalf("unknown fragment must not schedule anything")
	}
	if m.fragment != "" || m.vp.YOffset != 0 {
		t.Fatalf("unknown fragment must leave the page alone")
	}
	if cmd := m.smoothScrollTo(""); cmd != nil {
		t.Fatalf("empty fragment must not schedule anything")
	}
}

func TestModelNavScrollLandsOnSection(t *testing.T) {
	m := sized(t, 120, 30)

	m.Update(keyMsg("5")) // Contacto
	if m.fragment != "contacto" {
		t.Fatalf("fragment = %q, want contacto", m.fragment)
	}
	pumpFrames(t, m)

	rect, ok := m.layout.sections["contacto"]
	if !ok {
		t.Fatalf("contacto section missing from layout")
	}
	want := rect.Top - m.cfg.HeaderOffset
	if max := m.maxOffset(); want > max {
		want = max
	}
	if m.vp.YOffset != want {
		t.Fatalf("landed at %d, want %d", m.vp.YOffset, want)
	}
	if m.focusID != "contacto" {
		t.Fatalf("focus should land on the section, got %q", m.focusID)
	}
	if !m.form.Focused() {
		t.Fatalf("arriving at the contact section must focus the form")
	}
	if !strings.Contains(m.renderFooter(), "#contacto") {
		t.Fatalf("footer should show the fragment")
	}
}

func TestModelScrolledStateAndTopButton(t *testing.T) {
	m := sized(t, 120, 30)
	if m.scroll.Scrolled || m.scroll.TopVisible {
		t.Fatalf("page should start unscrolled")
	}

	m.vp.SetYOffset(35)
	m.evaluateViewport()
	if !m.scroll.Scrolled {
		t.Fatalf("offset 35 should set the scrolled state")
	}
	if !m.scroll.TopVisible {
		t.Fatalf("offset 35 should reveal the top button")
	}
	if !strings.Contains(m.renderFooter(), "subir") {
		t.Fatalf("footer should show the top button")
	}

	m.handleKey(keyMsg("t"))
	pumpFrames(t, m)
	if m.vp.YOffset != 0 {
		t.Fatalf("top button should land at offset 0, got %d", m.vp.YOffset)
	}
	if m.scroll.Scrolled || m.scroll.TopVisible {
		t.Fatalf("scrolled state should reset at the top")
	}
}

func TestModelCountersStartOnce(t *testing.T) {
	m := sized(t, 120, 40)
	if m.counters.Started() {
		t.Fatalf("counters must wait for the stats section")
	}

	rect, ok := m.layout.sections["logros"]
	if !ok {
		t.Fatalf("logros section missing from layout")
	}
	m.vp.SetYOffset(rect.Top)
	m.evaluateViewport()
	if !m.counters.Started() {
		t.Fatalf("visible stats section should start the counters")
	}
	if m.statsObs.Watching("logros") {
		t.Fatalf("stats section should be unwatched after the one-shot fires")
	}

	pumpFrames(t, m)
	view := m.View()
	for _, want := range []string{"15", "1200", "850", "98"} {
		if !strings.Contains(view, want) {
			t.Fatalf("finished counters missing %q", want)
		}
	}
}

func TestModelCompactMenuFlow(t *testing.T) {
	m := sized(t, 60, 30)
	if !m.menu.Compact(m.width) {
		t.Fatalf("width 60 should use the compact menu")
	}
	if m.headerHeight() != 1 {
		t.Fatalf("closed menu header should be one row")
	}

	m.handleKey(keyMsg("m"))
	if !m.menu.Active {
		t.Fatalf("m should open the menu")
	}
	if m.headerHeight() != 1+len(m.doc.Nav) {
		t.Fatalf("open menu should list every link")
	}
	if !strings.Contains(m.renderHeader(), "Contacto") {
		t.Fatalf("open menu panel missing links")
	}

	m.handleKey(keyMsg("2")) // Servicios
	if m.menu.Active {
		t.Fatalf("activating a link must close the menu")
	}
	if m.fragment != "servicios" {
		t.Fatalf("fragment = %q, want servicios", m.fragment)
	}
	pumpFrames(t, m)
}

func TestModelInvalidSubmitShowsAlert(t *testing.T) {
	m := sized(t, 120, 30)
	m.Update(keyMsg("5"))
	pumpFrames(t, m)
	if !m.form.Focused() {
		t.Fatalf("form should be focused after arriving at contacto")
	}

	for !m.form.OnSubmitButton() {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.alert != alertMessage {
		t.Fatalf("invalid submit should raise the alert, got %q", m.alert)
	}
	if !strings.Contains(m.View(), alertMessage) {
		t.Fatalf("alert should render as a modal")
	}

	m.Update(keyMsg("x"))
	if m.alert != "" {
		t.Fatalf("any key should dismiss the alert")
	}
	if !strings.Contains(m.View(), "Brisa Clima") {
		t.Fatalf("page should render again after dismissing")
	}
}

func TestModelResizeRelayoutsInline(t *testing.T) {
	m := sized(t, 120, 40)
	first := m.contentWidth
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.contentWidth == first {
		t.Fatalf("resize should recompute the layout")
	}
	if m.vp.Width != 50 {
		t.Fatalf("viewport width = %d, want 50", m.vp.Width)
	}
}

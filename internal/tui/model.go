// Package tui renders the Brisa Clima page and wires its behaviors.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brisaclima/brisa/internal/analytics"
	"github.com/brisaclima/brisa/internal/model"
	"github.com/brisaclima/brisa/internal/observe"
	"github.com/brisaclima/brisa/internal/page"
	"github.com/brisaclima/brisa/internal/timing"
)

const footerHeight = 2

const siteLocation = "brisaclima.mx/"

// frameMsg drives smooth scrolling and the counter animation.
type frameMsg time.Time

// relayoutMsg arrives after a resize burst settles.
type relayoutMsg struct{}

// Model implements the Bubble Tea page UI. All page behaviors are
// constructed together and armed on the first window size message, the
// terminal analog of document readiness.
type Model struct {
	cfg model.Config
	doc page.Document
	mon *analytics.Monitor

	width  int
	height int
	ready  bool

	vp           viewport.Model
	contentWidth int
	layout       docLayout

	scroll      ScrollState
	anim        scrollAnim
	scrollEval  *timing.Throttler
	relayoutDeb *timing.Debouncer
	notify      func(tea.Msg)

	menu         Menu
	navIndex     int
	fragment     string
	focusID      string
	pendingFocus string

	lazy     *LazyLoader
	counters *Counters
	statsObs *observe.Observer
	statsID  string

	form  *ContactForm
	alert string

	frameScheduled bool
}

// NewModel constructs the page model.
func NewModel(cfg model.Config, doc page.Document, mon *analytics.Monitor) *Model {
	m := &Model{
		cfg: cfg,
		doc: doc,
		mon: mon,
	}
	m.scroll = ScrollState{ScrolledAfter: cfg.ScrolledAfter, TopButtonAfter: cfg.TopButtonAfter}
	m.scrollEval = timing.NewThrottler(cfg.ScrollThrottle)
	m.relayoutDeb = timing.NewDebouncer(cfg.ResizeDebounce)
	m.menu = Menu{Breakpoint: cfg.CompactBreakpoint}
	m.vp = viewport.New(0, 0)
	m.form = NewContactForm()

	var figures []page.Figure
	for _, sec := range doc.Sections {
		figures = append(figures, sec.Figures...)
	}
	// The terminal renderer has no native deferred loading, so the
	// visibility-driven fallback is always in charge.
	m.lazy = NewLazyLoader(figures, cfg.LazyMargin, false)

	if stats, ok := doc.StatsSection(); ok {
		m.statsID = stats.ID
		m.counters = NewCounters(stats.Counters, cfg.CounterDuration, cfg.FrameInterval)
		m.statsObs = observe.New(0, cfg.StatsThreshold, func(e observe.Entry) {
			if m.counters.Start() {
				m.statsObs.Unobserve(e.ID)
			}
		})
		m.statsObs.Observe(stats.ID, observe.Rect{})
	} else {
		m.counters = NewCounters(nil, cfg.CounterDuration, cfg.FrameInterval)
	}
	return m
}

// SetNotify wires the program's message injector so debounced work can
// re-enter the update loop. Without it relayouts run inline.
func (m *Model) SetNotify(fn func(tea.Msg)) {
	m.notify = fn
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.ready = true
			m.relayout()
			m.reportLoad()
			return m.finish(nil)
		}
		if m.notify != nil {
			m.relayoutDeb.Do(func() { m.notify(relayoutMsg{}) })
			return m, nil
		}
		m.relayout()
		return m.finish(nil)
	case relayoutMsg:
		m.relayout()
		return m.finish(nil)
	case frameMsg:
		m.frameScheduled = false
		return m.finish(m.stepFrame())
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready || m.width == 0 || m.height == 0 {
		return ""
	}
	if m.alert != "" {
		box := modalStyle.Render(errorStyle.Render(m.alert) + "\n\n" + mutedStyle.Render("Pulse cualquier tecla"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	parts := []string{m.renderHeader(), m.vp.View(), m.renderFooter()}
	return strings.Join(parts, "\n")
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.alert != "" {
		// The alert is modal: the next key only dismisses it.
		m.alert = ""
		return m, nil
	}
	if m.form.Focused() {
		return m.handleFormKey(msg)
	}

	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return m.finish(m.activateNav(int(key[0] - '1')))
	}
	switch key {
	case "q":
		return m, tea.Quit
	case "m":
		if m.menu.Compact(m.width) {
			m.menu.Toggle()
			m.relayout()
		}
		return m.finish(nil)
	case "left", "h":
		m.moveNav(-1)
		return m, nil
	case "right", "l":
		m.moveNav(1)
		return m, nil
	case "enter":
		return m.finish(m.activateNav(m.navIndex))
	case "t":
		if m.scroll.TopVisible {
			return m.finish(m.startScroll(0, ""))
		}
		return m, nil
	case "g", "home":
		m.vp.GotoTop()
		m.scrollEval.Do(m.evaluateViewport)
		return m.finish(nil)
	case "G", "end":
		m.vp.GotoBottom()
		m.scrollEval.Do(m.evaluateViewport)
		return m.finish(nil)
	default:
		before := m.vp.YOffset
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		if m.vp.YOffset != before {
			m.scrollEval.Do(m.evaluateViewport)
		}
		return m.finish(cmd)
	}
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.form.Blur()
		m.refreshContent()
		return m, nil
	case tea.KeyTab:
		cmd := m.form.Next()
		m.refreshContent()
		return m.finish(cmd)
	case tea.KeyShiftTab:
		cmd := m.form.Prev()
		m.refreshContent()
		return m.finish(cmd)
	case tea.KeyEnter:
		if m.form.OnSubmitButton() {
			if !m.form.Submit() {
				m.alert = alertMessage
			}
			m.refreshContent()
			return m, nil
		}
		if !m.form.InTextarea() {
			cmd := m.form.Next()
			m.refreshContent()
			return m.finish(cmd)
		}
	}
	cmd := m.form.Update(msg)
	m.refreshContent()
	return m.finish(cmd)
}

func (m *Model) moveNav(delta int) {
	count := len(m.doc.Nav)
	if count == 0 {
		return
	}
	next := m.navIndex + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.navIndex = next
}

// activateNav follows a nav link: closes the compact menu, records the
// fragment, and starts the smooth scroll toward its section.
func (m *Model) activateNav(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.doc.Nav) {
		return nil
	}
	m.navIndex = idx
	wasOpen := m.menu.Active
	m.menu.LinkActivated(m.width)
	if wasOpen != m.menu.Active {
		m.relayout()
	}
	return m.smoothScrollTo(m.doc.Nav[idx].Fragment)
}

// smoothScrollTo resolves a fragment and animates toward it, leaving room
// for the fixed header. Unknown or empty fragments do nothing.
func (m *Model) smoothScrollTo(fragment string) tea.Cmd {
	if fragment == "" {
		return nil
	}
	rect, ok := m.layout.sections[fragment]
	if !ok {
		return nil
	}
	target := rect.Top - m.cfg.HeaderOffset
	m.fragment = fragment
	return m.startScroll(target, fragment)
}

func (m *Model) startScroll(target int, focus string) tea.Cmd {
	if target < 0 {
		target = 0
	}
	if max := m.maxOffset(); target > max {
		target = max
	}
	m.pendingFocus = focus
	m.anim.start(m.vp.YOffset, target, m.cfg.ScrollDuration)
	if !m.anim.active {
		return m.arrive()
	}
	return nil
}

// stepFrame advances the animations by one frame.
func (m *Model) stepFrame() tea.Cmd {
	var cmd tea.Cmd
	if m.anim.active {
		m.vp.SetYOffset(m.anim.step(m.cfg.FrameInterval))
		if m.anim.active {
			m.scrollEval.Do(m.evaluateViewport)
		} else {
			cmd = m.arrive()
		}
	}
	if m.counters.Running() {
		m.counters.Tick()
		m.refreshContent()
	}
	return cmd
}

// arrive lands a smooth scroll: focus moves to the target without another
// scroll jump, and the viewport is re-evaluated immediately.
func (m *Model) arrive() tea.Cmd {
	var cmd tea.Cmd
	if m.pendingFocus != "" {
		m.focusID = m.pendingFocus
		if sec, ok := m.doc.Section(m.pendingFocus); ok && sec.HasForm {
			cmd = m.form.FocusFirst()
		}
	}
	m.pendingFocus = ""
	m.evaluateViewport()
	return cmd
}

// evaluateViewport recomputes scroll-derived state and feeds the
// visibility observers. Callers throttle it on scroll paths.
func (m *Model) evaluateViewport() {
	offset := m.vp.YOffset
	m.scroll.Evaluate(offset)
	vp := observe.Viewport{Offset: offset, Height: m.vp.Height}
	m.lazy.Update(vp)
	if m.statsObs != nil {
		m.statsObs.Update(vp)
	}
	m.refreshContent()
}

func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.contentWidth = m.width - 4
	if m.contentWidth > 96 {
		m.contentWidth = 96
	}
	if m.contentWidth < 20 {
		m.contentWidth = 20
	}
	bodyHeight := m.height - m.headerHeight() - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.vp.Width = m.width
	m.vp.Height = bodyHeight
	m.form.SetWidth(minInt(m.contentWidth, 48))
	m.refreshContent()
	m.evaluateViewport()
}

// refreshContent re-renders the document and pushes fresh element
// positions to the observers.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	content, layout := m.buildContent()
	m.layout = layout
	m.vp.SetContent(content)
	for id, r := range layout.figures {
		m.lazy.SetRect(id, r)
	}
	if m.statsObs != nil {
		if r, ok := layout.sections[m.statsID]; ok {
			m.statsObs.SetRect(m.statsID, r)
		}
	}
}

func (m *Model) maxOffset() int {
	max := m.layout.height - m.vp.Height
	if max < 0 {
		return 0
	}
	return max
}

func (m *Model) headerHeight() int {
	if m.menu.Compact(m.width) && m.menu.Active {
		return 1 + len(m.doc.Nav)
	}
	return 1
}

func (m *Model) renderHeader() string {
	style := headerStyle
	if m.scroll.Scrolled {
		style = headerScrolled
	}
	title := titleStyle.Render(" " + m.doc.Title)

	var right string
	if m.menu.Compact(m.width) {
		right = menuIconStyle.Render(m.menu.Icon() + " ")
	} else {
		parts := make([]string, 0, len(m.doc.Nav))
		for i, link := range m.doc.Nav {
			if i == m.navIndex {
				parts = append(parts, navActiveStyle.Render(link.Label))
				continue
			}
			parts = append(parts, navStyle.Render(link.Label))
		}
		right = strings.Join(parts, "")
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := style.Width(m.width).Render(title + strings.Repeat(" ", gap) + right)
	if !(m.menu.Compact(m.width) && m.menu.Active) {
		return line
	}

	panel := make([]string, 0, len(m.doc.Nav)+1)
	panel = append(panel, line)
	for i, link := range m.doc.Nav {
		entry := fmt.Sprintf("  %d. %s", i+1, link.Label)
		if i == m.navIndex {
			panel = append(panel, navActiveStyle.Render(entry))
			continue
		}
		panel = append(panel, navStyle.Render(entry))
	}
	return strings.Join(panel, "\n")
}

func (m *Model) renderFooter() string {
	location := siteLocation
	if m.fragment != "" {
		location += "#" + m.fragment
	}
	left := mutedStyle.Render(" " + location)
	right := ""
	if m.scroll.TopVisible {
		right = topButtonStyle.Render("[t] ↑ subir ")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line1 := left + strings.Repeat(" ", gap) + right

	help := " ↑/↓ desplazar  ←/→ sección  enter ir  m menú  q salir"
	if m.form.Focused() {
		help = " tab campo siguiente  enter enviar  esc salir del formulario"
	}
	return line1 + "\n" + footerStyle.Render(help)
}

// reportLoad records the load timing once the page is interactive.
func (m *Model) reportLoad() {
	if m.mon == nil {
		return
	}
	if err := m.mon.PageLoaded(context.Background()); err != nil {
		logErrf("failed to report load timing: %v\n", err)
	}
}

func (m *Model) animationActive() bool {
	return m.anim.active || m.counters.Running()
}

func (m *Model) finish(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.animationActive() && !m.frameScheduled {
		m.frameScheduled = true
		frame := tea.Tick(m.cfg.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
		if cmd == nil {
			return m, frame
		}
		return m, tea.Batch(cmd, frame)
	}
	return m, cmd
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

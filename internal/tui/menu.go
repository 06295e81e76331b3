package tui

// Menu is the compact navigation state: one boolean mirrored onto the nav
// panel and the toggle glyph.
type Menu struct {
	Breakpoint int
	Active     bool
}

// Toggle flips the open/closed state.
func (m *Menu) Toggle() {
	m.Active = !m.Active
}

// LinkActivated closes the menu when the view is compact. Link activation
// never opens the menu.
func (m *Menu) LinkActivated(width int) {
	if width <= m.Breakpoint {
		m.Active = false
	}
}

// Compact reports whether the width collapses the nav into the menu.
func (m *Menu) Compact(width int) bool {
	return width <= m.Breakpoint
}

// Icon returns the toggle glyph for the current state.
func (m *Menu) Icon() string {
	if m.Active {
		return "✕"
	}
	return "≡"
}

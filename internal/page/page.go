// Package page defines the brochure document the interface renders.
package page

// NavLink is a navigation entry pointing at a section fragment.
type NavLink struct {
	Label    string
	Fragment string
}

// Figure is an illustration block. Lazy figures start with the placeholder
// and swap the deferred art in when they come into view; a lazy figure
// without deferred art keeps its placeholder. BoxHeight fixes the rendered
// height so loading does not shift the layout.
type Figure struct {
	ID          string
	Caption     string
	Placeholder []string
	Deferred    []string
	Lazy        bool
	BoxHeight   int
}

// Counter is an animated statistic with an integer target.
type Counter struct {
	ID     string
	Label  string
	Target int
	Suffix string
}

// Section is one titled block of the page.
type Section struct {
	ID         string
	Title      string
	Paragraphs []string
	Figures    []Figure
	Counters   []Counter
	HasForm    bool
	Stats      bool
}

// Document is the whole page.
type Document struct {
	Title    string
	Tagline  string
	Nav      []NavLink
	Sections []Section
}

// Section resolves a fragment to its section.
func (d Document) Section(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// StatsSection returns the section driving the counter animation, if any.
func (d Document) StatsSection() (Section, bool) {
	for _, s := range d.Sections {
		if s.Stats {
			return s, true
		}
	}
	return Section{}, false
}

package page

import (
	"strings"
	"testing"
)

func TestWrapBreaksAtSpaces(t *testing.T) {
	lines := Wrap("aire fresco todo el año", 11)
	want := []string{"aire fresco", "todo el año"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapHardBreaksLongWords(t *testing.T) {
	lines := Wrap("climatización", 5)
	joined := strings.Join(lines, "")
	if joined != "climatización" {
		t.Fatalf("hard break lost runes: %q", lines)
	}
	for _, line := range lines {
		if len([]rune(line)) > 5 {
			t.Fatalf("line %q over width", line)
		}
	}
}

func TestWrapPreservesParagraphBreaks(t *testing.T) {
	lines := Wrap("uno\n\ndos", 10)
	want := []string{"uno", "", "dos"}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapZeroWidth(t *testing.T) {
	lines := Wrap("sin ancho", 0)
	if len(lines) != 1 || lines[0] != "sin ancho" {
		t.Fatalf("zero width must pass text through, got %q", lines)
	}
}

func TestBrisaDocument(t *testing.T) {
	doc := Brisa()
	if len(doc.Nav) == 0 || len(doc.Sections) == 0 {
		t.Fatalf("empty document")
	}
	for _, link := range doc.Nav {
		if _, ok := doc.Section(link.Fragment); !ok {
			t.Errorf("nav link %q points at missing section", link.Fragment)
		}
	}
	stats, ok := doc.StatsSection()
	if !ok {
		t.Fatalf("document has no stats section")
	}
	if len(stats.Counters) == 0 {
		t.Fatalf("stats section has no counters")
	}
	for _, c := range stats.Counters {
		if c.Target <= 0 {
			t.Errorf("counter %q has non-positive target", c.ID)
		}
	}
	if _, ok := doc.Section("no-such-fragment"); ok {
		t.Fatalf("unknown fragment resolved")
	}
}

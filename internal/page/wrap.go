package page

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap word-wraps text to the given display width. Paragraph breaks ("\n")
// are preserved; words wider than the line are hard-broken.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	out := []string{}
	current := ""
	currentWidth := 0
	for i := 0; i < len(words); {
		word := words[i]
		w := runewidth.StringWidth(word)
		if currentWidth == 0 {
			if w > width {
				head, rest := splitWord(word, width)
				out = append(out, head)
				words[i] = rest
				continue
			}
			current = word
			currentWidth = w
			i++
			continue
		}
		if currentWidth+1+w > width {
			out = append(out, current)
			current = ""
			currentWidth = 0
			continue
		}
		current += " " + word
		currentWidth += 1 + w
		i++
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}

// splitWord cuts word at the last rune fitting in width. The first rune is
// always taken so progress is guaranteed even for wide runes.
func splitWord(word string, width int) (string, string) {
	var b strings.Builder
	used := 0
	for i, r := range word {
		rw := runewidth.RuneWidth(r)
		if i > 0 && used+rw > width {
			return b.String(), word[i:]
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String(), ""
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brisaclima/brisa/internal/form"
)

const (
	alertMessage   = "Please fix the highlighted fields."
	successMessage = "¡Gracias! Le contactaremos pronto."
	submitLabel    = "[ Enviar ]"
)

// ContactForm renders the contact form and validates on blur and submit.
// Inline error lines are created lazily, one per field, and removed when the
// field passes again.
type ContactForm struct {
	fields  []form.Field
	inputs  []textinput.Model
	message textarea.Model
	msgIdx  int

	focus   int // field index; len(fields) is the submit button; -1 unfocused
	errSet  []bool
	errText []string
	sent    bool
}

// NewContactForm builds the form from the contact field set.
func NewContactForm() *ContactForm {
	fields := form.ContactFields()
	f := &ContactForm{
		fields:  fields,
		inputs:  make([]textinput.Model, len(fields)),
		msgIdx:  -1,
		focus:   -1,
		errSet:  make([]bool, len(fields)),
		errText: make([]string, len(fields)),
	}
	for i, field := range fields {
		if field.Kind == form.KindMessage {
			ta := textarea.New()
			ta.Placeholder = "Escriba su mensaje..."
			ta.ShowLineNumbers = false
			ta.SetHeight(4)
			f.message = ta
			f.msgIdx = i
			continue
		}
		input := textinput.New()
		input.Prompt = "> "
		input.Placeholder = field.Label
		f.inputs[i] = input
	}
	return f
}

// SetWidth resizes the field widgets.
func (f *ContactForm) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	for i := range f.inputs {
		f.inputs[i].Width = w - 2
	}
	f.message.SetWidth(w)
}

// Focused reports whether the form owns keyboard input.
func (f *ContactForm) Focused() bool {
	return f.focus >= 0
}

// OnSubmitButton reports whether focus sits on the submit control.
func (f *ContactForm) OnSubmitButton() bool {
	return f.focus == len(f.fields)
}

// InTextarea reports whether focus sits in the message body.
func (f *ContactForm) InTextarea() bool {
	return f.focus == f.msgIdx
}

// FocusFirst moves focus to the first field.
func (f *ContactForm) FocusFirst() tea.Cmd {
	return f.setFocus(0)
}

// Blur leaves the form, validating the field being left.
func (f *ContactForm) Blur() {
	if f.focus >= 0 && f.focus < len(f.fields) {
		f.validateField(f.focus)
	}
	f.dropFocus()
	f.focus = -1
}

// Next moves focus forward, validating the field being left.
func (f *ContactForm) Next() tea.Cmd {
	return f.move(1)
}

// Prev moves focus backward, validating the field being left.
func (f *ContactForm) Prev() tea.Cmd {
	return f.move(-1)
}

func (f *ContactForm) move(delta int) tea.Cmd {
	if f.focus >= 0 && f.focus < len(f.fields) {
		f.validateField(f.focus)
	}
	next := f.focus + delta
	count := len(f.fields) + 1 // fields plus the submit button
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	return f.setFocus(next)
}

func (f *ContactForm) setFocus(idx int) tea.Cmd {
	f.dropFocus()
	f.focus = idx
	if idx == f.msgIdx {
		return f.message.Focus()
	}
	if idx >= 0 && idx < len(f.fields) {
		return f.inputs[idx].Focus()
	}
	return nil
}

func (f *ContactForm) dropFocus() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.message.Blur()
}

// Update routes input to the focused widget.
func (f *ContactForm) Update(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	f.sent = false
	var cmd tea.Cmd
	if f.focus == f.msgIdx {
		f.message, cmd = f.message.Update(msg)
		return cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *ContactForm) value(i int) string {
	if i == f.msgIdx {
		return f.message.Value()
	}
	return f.inputs[i].Value()
}

// validateField applies the blur rule to one field, setting or clearing its
// inline error.
func (f *ContactForm) validateField(i int) {
	res := form.Validate(f.fields[i], f.value(i))
	if res.Valid {
		f.errSet[i] = false
		f.errText[i] = ""
		return
	}
	f.errSet[i] = true
	f.errText[i] = res.Message
}

// Submit validates the whole form. On failure every failing field is marked
// and submission is blocked; on success the form resets and shows the
// confirmation notice.
func (f *ContactForm) Submit() bool {
	values := make([]string, len(f.fields))
	for i := range f.fields {
		values[i] = f.value(i)
	}
	results, ok := form.ValidateAll(f.fields, values)
	for i, res := range results {
		f.errSet[i] = !res.Valid
		f.errText[i] = ""
		if !res.Valid {
			f.errText[i] = res.Message
		}
	}
	if !ok {
		return false
	}
	f.reset()
	f.sent = true
	return true
}

func (f *ContactForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.message.SetValue("")
	for i := range f.errSet {
		f.errSet[i] = false
		f.errText[i] = ""
	}
}

// View renders the form body.
func (f *ContactForm) View() string {
	var lines []string
	for i, field := range f.fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		if f.errSet[i] {
			lines = append(lines, fieldErrorStyle.Render(label))
		} else {
			lines = append(lines, bodyStyle.Render(label))
		}
		if i == f.msgIdx {
			lines = append(lines, strings.Split(f.message.View(), "\n")...)
		} else {
			lines = append(lines, f.inputs[i].View())
		}
		if f.errSet[i] {
			lines = append(lines, errorStyle.Render(f.errText[i]))
		}
	}
	button := navStyle.Render(submitLabel)
	if f.OnSubmitButton() {
		button = navActiveStyle.Render(submitLabel)
	}
	lines = append(lines, "", button)
	if f.sent {
		lines = append(lines, successStyle.Render(successMessage))
	}
	return strings.Join(lines, "\n")
}

// Package form implements contact form field validation.
package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind identifies how a field's value is interpreted.
type Kind int

// Field kinds.
const (
	KindText Kind = iota
	KindEmail
	KindMessage
)

// Field describes one form field and its rules.
type Field struct {
	Name      string
	Label     string
	Kind      Kind
	Required  bool
	MinLength int
}

// Result is the outcome of validating a single field. An invalid result may
// carry an empty message: the required rule marks the field without text.
type Result struct {
	Valid   bool
	Message string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate applies the field's rules to value. Rules are checked
// independently and the last failing rule's message wins; validity is the
// conjunction of all rules.
func Validate(f Field, value string) Result {
	trimmed := strings.TrimSpace(value)
	res := Result{Valid: true}
	if f.Required && trimmed == "" {
		res.Valid = false
		res.Message = ""
	}
	if f.Kind == KindEmail && trimmed != "" && !emailPattern.MatchString(trimmed) {
		res.Valid = false
		res.Message = "Please enter a valid email."
	}
	if f.MinLength > 0 && utf8.RuneCountInString(trimmed) < f.MinLength {
		res.Valid = false
		res.Message = fmt.Sprintf("Minimum %d characters.", f.MinLength)
	}
	return res
}

// ValidateAll validates every field against its value and reports the
// per-field results along with whether the whole form passed.
func ValidateAll(fields []Field, values []string) ([]Result, bool) {
	results := make([]Result, len(fields))
	ok := true
	for i, f := range fields {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		results[i] = Validate(f, value)
		if !results[i].Valid {
			ok = false
		}
	}
	return results, ok
}

// ContactFields returns the contact form's field set.
func ContactFields() []Field {
	return []Field{
		{Name: "nombre", Label: "Nombre", Kind: KindText, Required: true, MinLength: 3},
		{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
		{Name: "mensaje", Label: "Mensaje", Kind: KindMessage, Required: true, MinLength: 10},
	}
}

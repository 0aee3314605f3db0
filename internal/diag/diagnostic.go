package diag

import (
	"pycst/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement inside a suggested fix.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested source edit (e.g. "replace tabs with spaces").
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one reported problem with its position and context.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// WithNote returns a copy with an extra note attached.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix returns a copy with a suggested fix attached.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}

package token

import (
	"strings"

	"pycst/internal/source"
)

// TriviaKind classifies one piece of inter-token material.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces, tabs, and formfeeds.
	TriviaSpace TriviaKind = iota
	// TriviaComment is a '#' comment up to (not including) the line break.
	TriviaComment
	// TriviaNewline is a line break that does not terminate a logical line:
	// inside brackets, after a comment-only line, or after a whitespace-only
	// line.
	TriviaNewline
	// TriviaBlankLine is a line break on a line with no content at all.
	TriviaBlankLine
	// TriviaContinuation is a backslash immediately followed by a line break.
	TriviaContinuation
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaComment:      "Comment",
	TriviaNewline:      "Newline",
	TriviaBlankLine:    "BlankLine",
	TriviaContinuation: "Continuation",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(?)"
}

// Trivia is one contiguous piece of non-token source text.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// Whitespace is the opaque state capturing everything between two consecutive
// tokens: spaces, comments, escaped newlines, blank lines. One value is
// shared by both neighbors, so printing code can query it from either side.
type Whitespace struct {
	Span   source.Span
	Pieces []Trivia

	// Newlines counts line breaks inside the run (continuations included).
	Newlines int
	// BlankLines counts lines with no content at all. A line holding only
	// spaces or tabs is not blank: it shows up as TriviaSpace+TriviaNewline
	// pieces and is counted in Newlines only.
	BlankLines int
}

// Text returns the literal source text of the run.
func (w *Whitespace) Text() string {
	if w == nil || len(w.Pieces) == 0 {
		return ""
	}
	if len(w.Pieces) == 1 {
		return w.Pieces[0].Text
	}
	var sb strings.Builder
	for _, p := range w.Pieces {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Empty reports whether the run contains no characters.
func (w *Whitespace) Empty() bool {
	return w == nil || len(w.Pieces) == 0
}

// HasNewline reports whether any line break occurred inside the run.
func (w *Whitespace) HasNewline() bool {
	return w != nil && w.Newlines > 0
}

// Comments returns the verbatim text of every comment in the run, in order.
func (w *Whitespace) Comments() []string {
	if w == nil {
		return nil
	}
	var out []string
	for _, p := range w.Pieces {
		if p.Kind == TriviaComment {
			out = append(out, p.Text)
		}
	}
	return out
}

package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pycst/internal/source"
	"pycst/internal/token"
)

// TokenOutput — одна запись в JSON-дампе токенов.
type TokenOutput struct {
	Kind      string      `json:"kind"`
	Text      string      `json:"text,omitempty"`
	Span      source.Span `json:"span"`
	RelIndent string      `json:"rel_indent,omitempty"`
	Before    string      `json:"before,omitempty"`
	After     string      `json:"after,omitempty"`
	Comments  []string    `json:"comments,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, opts TokenOpts) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %s", i+1, paintKind(tok, opts.Color))

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if rel, ok := tok.RelativeIndent(); ok {
			fmt.Fprintf(w, " rel=%q", rel)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if opts.ShowWhitespace && !tok.Before.Empty() {
			fmt.Fprintf(w, " (before: %s)", describeWhitespace(tok.Before))
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}
	return nil
}

// describeWhitespace сворачивает промежуток в короткую сводку: "2sp", "nl" и т.д.
func describeWhitespace(ws *token.Whitespace) string {
	parts := make([]string, 0, len(ws.Pieces))
	for _, piece := range ws.Pieces {
		switch piece.Kind {
		case token.TriviaSpace:
			parts = append(parts, fmt.Sprintf("%dsp", len(piece.Text)))
		case token.TriviaNewline:
			parts = append(parts, "nl")
		case token.TriviaBlankLine:
			parts = append(parts, "blank")
		case token.TriviaContinuation:
			parts = append(parts, "cont")
		case token.TriviaComment:
			parts = append(parts, fmt.Sprintf("comment(%d)", len(piece.Text)))
		}
	}
	return strings.Join(parts, "+")
}

func paintKind(tok token.Token, enabled bool) string {
	// паддинг до покраски, чтобы escape-коды не ломали выравнивание
	name := fmt.Sprintf("%-12s", tok.Kind.String())
	if !enabled {
		return name
	}
	switch {
	case tok.Kind == token.Invalid:
		return color.New(color.FgRed, color.Bold).Sprint(name)
	case tok.IsKeyword():
		return color.New(color.FgMagenta).Sprint(name)
	case tok.IsLiteral():
		return color.New(color.FgGreen).Sprint(name)
	case tok.IsVirtual():
		return color.New(color.FgBlue).Sprint(name)
	default:
		return name
	}
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, opts TokenOpts) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if rel, ok := tok.RelativeIndent(); ok {
			out.RelIndent = rel
		}
		if opts.ShowWhitespace {
			out.Before = tok.Before.Text()
			out.After = tok.After.Text()
			out.Comments = tok.Before.Comments()
		}
		output = append(output, out)

		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

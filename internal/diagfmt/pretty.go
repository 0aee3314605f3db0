package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pycst/internal/diag"
	"pycst/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой диагностики печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file, opts.PathMode), start.Line, start.Col,
		paintSeverity(d.Severity, opts.Color),
		paintCode(d.Code, opts.Color),
		d.Message)

	printContext(w, fs, file, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nStart, _ := fs.Resolve(note.Span)
			nFile := fs.Get(note.Span.File)
			fmt.Fprintf(w, "  note: %s (%s:%d:%d)\n",
				note.Msg, displayPath(nFile, opts.PathMode), nStart.Line, nStart.Col)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  fix: %s\n", fix.Title)
		}
	}
}

// printContext печатает строки вокруг участка и caret-подчёркивание под ним.
func printContext(w io.Writer, fs *source.FileSet, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	if file == nil || start.Line == 0 {
		return
	}

	first := start.Line
	if opts.Context > 0 {
		ctx := uint32(opts.Context)
		if first > ctx {
			first -= ctx
		} else {
			first = 1
		}
	}

	gutter := len(fmt.Sprintf("%d", start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "  %*d | %s\n", gutter, ln, file.GetLine(ln))
	}

	line := file.GetLine(start.Line)
	if start.Col == 0 || int(start.Col) > len(line)+1 {
		return
	}

	// колонки байтовые, подчёркивание выравнивается по видимой ширине
	prefix := line[:start.Col-1]
	span := line[start.Col-1:]
	if end.Line == start.Line && end.Col > start.Col {
		span = line[start.Col-1 : end.Col-1]
	}

	width := runewidth.StringWidth(span)
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)

	fmt.Fprintf(w, "  %s | %s%s\n",
		strings.Repeat(" ", gutter),
		strings.Repeat(" ", runewidth.StringWidth(prefix)),
		paintMarker(marker, opts.Color))
}

func displayPath(file *source.File, mode PathMode) string {
	if file == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(file.Path)
	}
	return file.Path
}

func paintSeverity(sev diag.Severity, enabled bool) string {
	if !enabled {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return color.New(color.FgCyan).Sprint(sev.String())
	}
}

func paintCode(code diag.Code, enabled bool) string {
	if !enabled {
		return code.ID()
	}
	return color.New(color.Bold).Sprint(code.ID())
}

func paintMarker(marker string, enabled bool) string {
	if !enabled {
		return marker
	}
	return color.New(color.FgRed, color.Bold).Sprint(marker)
}

package lexer

import (
	"pycst/internal/diag"
	"pycst/internal/source"
	"pycst/internal/token"
)

// tabSize — ширина таба при сравнении отступов.
const tabSize = 8

// indentLevel — один открытый уровень отступа.
// width считается с табами по 8, altWidth — с табами по 1. Две строки
// сравниваются корректно, только если оба замера дают один и тот же
// результат; расхождение — неоднозначное смешение табов и пробелов.
type indentLevel struct {
	width    int
	altWidth int
	text     string
}

type indentStack struct {
	levels []indentLevel
}

func newIndentStack() indentStack {
	// базовый уровень — нулевой отступ
	return indentStack{levels: []indentLevel{{}}}
}

func (s *indentStack) top() indentLevel {
	return s.levels[len(s.levels)-1]
}

func (s *indentStack) push(l indentLevel) {
	s.levels = append(s.levels, l)
}

func (s *indentStack) pop() indentLevel {
	l := s.top()
	s.levels = s.levels[:len(s.levels)-1]
	return l
}

// open возвращает число уровней выше базового.
func (s *indentStack) open() int {
	return len(s.levels) - 1
}

// indentWidths замеряет отступ двумя способами: табы по 8 и табы по 1.
// Формфид обнуляет счётчики (правило токенизатора CPython).
func indentWidths(text string) (w, alt int) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			w++
			alt++
		case '\t':
			w = w/tabSize*tabSize + tabSize
			alt++
		case '\f':
			w, alt = 0, 0
		}
	}
	return w, alt
}

// applyIndent сравнивает отступ новой логической строки со стеком и ставит
// Indent/Dedent (или терминальный Invalid) в очередь pending.
func (lx *Lexer) applyIndent() {
	text := lx.indentText
	sp := lx.indentSpan
	w, alt := indentWidths(text)
	top := lx.indents.top()

	switch {
	case w == top.width:
		if alt != top.altWidth {
			lx.indentError(diag.LexTabError, sp, text,
				"inconsistent use of tabs and spaces in indentation")
		}

	case w > top.width:
		if alt <= top.altWidth {
			lx.indentError(diag.LexTabError, sp, text,
				"inconsistent use of tabs and spaces in indentation")
			return
		}
		lx.indents.push(indentLevel{width: w, altWidth: alt, text: text})
		lx.queue(token.Token{
			Kind:      token.Indent,
			Span:      lx.emptySpan(),
			RelIndent: text,
		})

	default:
		for w < lx.indents.top().width {
			popped := lx.indents.pop()
			lx.queue(token.Token{
				Kind:      token.Dedent,
				Span:      lx.emptySpan(),
				RelIndent: popped.text,
			})
		}
		top = lx.indents.top()
		if w != top.width {
			lx.indentError(diag.LexBadDedent, sp, text,
				"unindent does not match any outer indentation level")
			return
		}
		if alt != top.altWidth {
			lx.indentError(diag.LexTabError, sp, text,
				"inconsistent use of tabs and spaces in indentation")
		}
	}
}

// indentError сбрасывает уже поставленные в очередь индент-токены и ставит
// терминальный Invalid: после ошибки отступов ничего не выдаётся.
func (lx *Lexer) indentError(code diag.Code, sp source.Span, text, msg string) {
	lx.errLex(code, sp, msg)
	lx.pending = lx.pending[:0]
	lx.queue(token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: text,
	})
}

package lexer

import (
	"pycst/internal/diag"
	"pycst/internal/token"
)

func isStringPrefixByte(b byte) bool {
	switch b {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	}
	return false
}

// looksLikeStringPrefix решает, начинается ли со строки текущего курсора
// строковый литерал с префиксом: r"", b"", f"""...""", rb"", fr"" и т.д.
// Вызывается до scanIdentOrKeyword, курсор не двигает.
func (lx *Lexer) looksLikeStringPrefix() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || !isStringPrefixByte(b0) {
		return false
	}
	if isQuote(b1) {
		return true
	}
	b2 := lx.cursor.PeekAt(2)
	if !isStringPrefixByte(b1) || !isQuote(b2) {
		return false
	}
	// u не комбинируется; вторая буква не повторяет первую (rr, bb, ff)
	l0, l1 := lowerByte(b0), lowerByte(b1)
	if l0 == 'u' || l1 == 'u' || l0 == l1 {
		return false
	}
	// допустимы только пары r+b и r+f в любом порядке
	return l0 == 'r' || l1 == 'r'
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// scanString сканирует строковый литерал целиком, включая префикс и кавычки.
// Незакрытая строка — терминальная ошибка.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()

	kind := token.StringLit
	for isStringPrefixByte(lx.cursor.Peek()) {
		if b := lowerByte(lx.cursor.Peek()); b == 'f' {
			kind = token.FStringLit
		}
		lx.cursor.Bump()
	}

	quoteStart := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	triple := false
	if lx.cursor.Peek() == quote && lx.cursor.PeekAt(1) == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	}
	quoteSpan := lx.cursor.SpanFrom(quoteStart)

	for {
		if lx.cursor.EOF() {
			lx.errLex(diag.LexUnterminatedString, quoteSpan, "unterminated string literal")
			return token.Token{
				Kind: token.Invalid,
				Span: lx.cursor.SpanFrom(start),
				Text: lx.textFrom(start),
			}
		}
		switch b := lx.cursor.Peek(); {
		case b == '\\':
			// backslash съедает следующий байт даже в raw-строке:
			// экранированная кавычка не закрывает литерал
			lx.cursor.Bump()
			lx.cursor.Bump()

		case b == '\n' && !triple:
			lx.errLex(diag.LexUnterminatedString, quoteSpan, "unterminated string literal")
			return token.Token{
				Kind: token.Invalid,
				Span: lx.cursor.SpanFrom(start),
				Text: lx.textFrom(start),
			}

		case b == quote:
			if !triple {
				lx.cursor.Bump()
				return token.Token{
					Kind: kind,
					Span: lx.cursor.SpanFrom(start),
					Text: lx.textFrom(start),
				}
			}
			b0, b1, b2, ok := lx.cursor.Peek3()
			if ok && b0 == quote && b1 == quote && b2 == quote {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				return token.Token{
					Kind: kind,
					Span: lx.cursor.SpanFrom(start),
					Text: lx.textFrom(start),
				}
			}
			lx.cursor.Bump()

		default:
			lx.cursor.Bump()
		}
	}
}

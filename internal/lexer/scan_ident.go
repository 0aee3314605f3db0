package lexer

import (
	"pycst/internal/diag"
	"pycst/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор или ключевое слово.
// ASCII идёт по быстрой ветке, не-ASCII — через классификаторы рун.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		first := lx.cursor.Off == uint32(start)
		if first && !isIdentStartRune(r) {
			lx.bumpRune()
			return lx.invalidFrom(start, diag.LexUnknownChar, "unexpected character")
		}
		if !first && !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	// Text хранит точные байты исходника (round-trip); NFKC-каноничную
	// форму потребители берут через token.NormalizeIdent.
	text := lx.textFrom(start)
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: text,
	}
}

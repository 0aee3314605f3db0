package lexer

import (
	"pycst/internal/diag"
	"pycst/internal/token"
)

// scanNumber сканирует числовой литерал: целые с основанием 2/8/10/16,
// числа с плавающей точкой, мнимые (суффикс j/J). Подчёркивания допустимы
// только между цифрами.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.isNumberAfterDot() {
		return lx.scanFraction(start)
	}

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.scanRadix(start, isBin, "invalid binary literal")
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.scanRadix(start, isOct, "invalid octal literal")
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.scanRadix(start, isHex, "invalid hexadecimal literal")
		}
	}

	hadZeroPrefix := lx.cursor.Peek() == '0'
	if !lx.digitRun(isDec) {
		return lx.invalidFrom(start, diag.LexBadNumber, "invalid number literal")
	}

	switch b := lx.cursor.Peek(); {
	case b == '.':
		return lx.scanFraction(start)
	case b == 'e' || b == 'E':
		return lx.scanExponent(start)
	case b == 'j' || b == 'J':
		lx.cursor.Bump()
		return lx.numberToken(start, token.ImagLit)
	}

	// 00 допустим, 0digit — нет: устаревшая восьмеричная запись
	if hadZeroPrefix && hasNonZeroDigit(lx.textFrom(start)) {
		return lx.invalidFrom(start, diag.LexBadNumber,
			"leading zeros in decimal integer literals are not permitted")
	}
	return lx.numberToken(start, token.IntLit)
}

// scanFraction: курсор стоит на '.', целая часть (возможно пустая) уже съедена.
func (lx *Lexer) scanFraction(start Mark) token.Token {
	lx.cursor.Bump() // '.'
	if isDec(lx.cursor.Peek()) {
		if !lx.digitRun(isDec) {
			return lx.invalidFrom(start, diag.LexBadNumber, "invalid number literal")
		}
	}
	// "1." — корректный литерал, дробная часть может быть пустой
	switch b := lx.cursor.Peek(); {
	case b == 'e' || b == 'E':
		return lx.scanExponent(start)
	case b == 'j' || b == 'J':
		lx.cursor.Bump()
		return lx.numberToken(start, token.ImagLit)
	}
	return lx.numberToken(start, token.FloatLit)
}

// scanExponent: курсор стоит на 'e'/'E'.
func (lx *Lexer) scanExponent(start Mark) token.Token {
	lx.cursor.Bump() // 'e'
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) || !lx.digitRun(isDec) {
		return lx.invalidFrom(start, diag.LexBadNumber, "exponent requires digits")
	}
	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		lx.cursor.Bump()
		return lx.numberToken(start, token.ImagLit)
	}
	return lx.numberToken(start, token.FloatLit)
}

// scanRadix: префикс 0b/0o/0x уже съеден, дальше обязана идти цифровая серия.
func (lx *Lexer) scanRadix(start Mark, digit func(byte) bool, msg string) token.Token {
	if b := lx.cursor.Peek(); !digit(b) && b != '_' {
		return lx.invalidFrom(start, diag.LexBadNumber, msg)
	}
	if !lx.digitRun(digit) {
		return lx.invalidFrom(start, diag.LexBadNumber, msg)
	}
	return lx.numberToken(start, token.IntLit)
}

// digitRun потребляет серию цифр с одиночными подчёркиваниями между ними.
// false — серия оборвалась на подчёркивании или пуста.
func (lx *Lexer) digitRun(digit func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			lx.cursor.Bump()
			seen = true
		case b == '_':
			if !digit(lx.cursor.PeekAt(1)) {
				lx.cursor.Bump()
				return false
			}
			lx.cursor.Bump()
		default:
			return seen
		}
	}
}

func hasNonZeroDigit(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= '1' && text[i] <= '9' {
			return true
		}
	}
	return false
}

// numberToken закрывает литерал; прилипший к числу символ идентификатора —
// ошибка ("1if", "0x1z").
func (lx *Lexer) numberToken(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); isIdentContinueByte(b) || b >= utf8RuneSelf {
		if b >= utf8RuneSelf {
			if r, _ := lx.peekRune(); isIdentContinueRune(r) {
				lx.bumpRune()
				return lx.invalidFrom(start, diag.LexBadNumber,
					"invalid character after number literal")
			}
		} else {
			lx.cursor.Bump()
			return lx.invalidFrom(start, diag.LexBadNumber,
				"invalid character after number literal")
		}
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.textFrom(start),
	}
}

package lexer

import (
	"pycst/internal/diag"
	"pycst/internal/token"
)

// scanOperatorOrPunct сканирует оператор или разделитель. Матчинг жадный:
// сперва трёхбайтовые последовательности, затем двух-, затем одиночные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	kind := lx.matchOperator()
	if kind == token.Invalid {
		lx.bumpRune()
		return lx.invalidFrom(start, diag.LexUnknownChar, "unexpected character")
	}

	switch kind {
	case token.LParen, token.LBracket, token.LBrace:
		lx.parenDepth++
	case token.RParen, token.RBracket, token.RBrace:
		// лишняя закрывающая — дело парсера, глубину не роняем ниже нуля
		if lx.parenDepth > 0 {
			lx.parenDepth--
		}
	}

	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.textFrom(start),
	}
}

func (lx *Lexer) matchOperator() token.Kind {
	switch {
	case lx.try3('*', '*', '='):
		return token.StarStarAssign
	case lx.try3('/', '/', '='):
		return token.SlashSlashAssign
	case lx.try3('<', '<', '='):
		return token.ShlAssign
	case lx.try3('>', '>', '='):
		return token.ShrAssign
	case lx.try3('.', '.', '.'):
		return token.Ellipsis

	case lx.try2('*', '*'):
		return token.StarStar
	case lx.try2('/', '/'):
		return token.SlashSlash
	case lx.try2('<', '<'):
		return token.Shl
	case lx.try2('>', '>'):
		return token.Shr
	case lx.try2('<', '='):
		return token.LtEq
	case lx.try2('>', '='):
		return token.GtEq
	case lx.try2('=', '='):
		return token.EqEq
	case lx.try2('!', '='):
		return token.BangEq
	case lx.try2('+', '='):
		return token.PlusAssign
	case lx.try2('-', '='):
		return token.MinusAssign
	case lx.try2('*', '='):
		return token.StarAssign
	case lx.try2('/', '='):
		return token.SlashAssign
	case lx.try2('%', '='):
		return token.PercentAssign
	case lx.try2('@', '='):
		return token.AtAssign
	case lx.try2('&', '='):
		return token.AmpAssign
	case lx.try2('|', '='):
		return token.PipeAssign
	case lx.try2('^', '='):
		return token.CaretAssign
	case lx.try2(':', '='):
		return token.ColonAssign
	case lx.try2('-', '>'):
		return token.Arrow
	}

	var kind token.Kind
	switch lx.cursor.Peek() {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '@':
		kind = token.At
	case '&':
		kind = token.Amp
	case '|':
		kind = token.Pipe
	case '^':
		kind = token.Caret
	case '~':
		kind = token.Tilde
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '=':
		kind = token.Assign
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case '.':
		kind = token.Dot
	default:
		// одинокие '!', '\\', '\r', '$', '?', '`' и прочее
		return token.Invalid
	}
	lx.cursor.Bump()
	return kind
}

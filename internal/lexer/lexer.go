package lexer

import (
	"pycst/internal/diag"
	"pycst/internal/source"
	"pycst/internal/token"
)

// Lexer разбивает содержимое файла на токены, ничего не теряя: весь
// межтокенный материал складывается в Whitespace, который разделяют
// соседние токены. Восстановление исходника — конкатенация
// Before.Text()+Text по всем токенам плюс After последнего.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	interner *source.Interner

	// ws — текущее (общее) состояние пробелов: After последнего выданного
	// токена и Before следующего.
	ws *token.Whitespace

	// pending — очередь виртуальных токенов (Indent/Dedent/Newline/EOF/Invalid)
	pending []token.Token

	look *token.Token // буфер на один токен для Peek

	indents       indentStack
	indentPending bool
	indentText    string
	indentSpan    source.Span

	parenDepth int // глубина вложенности (), [], {}

	atLineStart      bool
	lineHasToken     bool
	afterCommentLine bool
	commentLine      bool

	done bool
	last token.Token // последний выданный токен после done
}

// New создаёт лексер для файла. Содержимое файла должно быть уже
// нормализовано загрузчиком (BOM снят, CRLF приведён к LF).
func New(f *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        f,
		cursor:      NewCursor(f),
		opts:        opts,
		interner:    source.NewInterner(),
		indents:     newIndentStack(),
		atLineStart: true,
	}
}

// Next выдаёт следующий токен. После EOF или Invalid возвращает тот же
// завершающий токен при повторных вызовах.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.next()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.next()
		lx.look = &tok
	}
	return *lx.look
}

// Tokens прогоняет лексер до конца и возвращает все токены,
// включая завершающий EOF или Invalid.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return out
		}
	}
}

func (lx *Lexer) next() token.Token {
	if lx.done {
		return lx.last
	}
	if lx.ws == nil {
		// первый вызов: ведущие пустые/комментарные строки
		lx.ws = lx.collectTrivia()
	}

	for {
		if len(lx.pending) > 0 {
			return lx.finish(lx.popPending())
		}
		if lx.indentPending {
			lx.indentPending = false
			lx.applyIndent()
			continue
		}
		if lx.cursor.EOF() {
			lx.queueEOFSequence()
			continue
		}

		tok := lx.scanToken()
		switch tok.Kind {
		case token.Newline:
			lx.atLineStart = true
			lx.lineHasToken = false
		case token.CommentLine:
			lx.afterCommentLine = true
		default:
			lx.lineHasToken = true
		}
		return lx.finish(tok)
	}
}

// finish навешивает на токен разделяемое пробельное состояние и собирает
// trivia после него. Для виртуальных токенов курсор не двигался и
// collectTrivia вернёт пустой промежуток у того же смещения.
func (lx *Lexer) finish(tok token.Token) token.Token {
	tok.Before = lx.ws
	lx.ws = lx.collectTrivia()
	tok.After = lx.ws

	if limit := lx.maxTokenLen(); len(tok.Text) > limit && tok.Kind != token.Invalid {
		lx.errLex(diag.LexTokenTooLong, tok.Span, "token exceeds maximum length")
		tok.Kind = token.Invalid
	}

	if tok.Kind == token.EOF || tok.Kind == token.Invalid {
		lx.done = true
		lx.last = tok
		lx.pending = lx.pending[:0]
	}
	return tok
}

// queueEOFSequence ставит в очередь хвост потока: незакрытая скобка — это
// ошибка; иначе фиктивный Newline (если последняя строка не пуста), по
// Dedent на каждый открытый уровень и ровно один EOF.
func (lx *Lexer) queueEOFSequence() {
	sp := lx.emptySpan()

	if lx.parenDepth > 0 {
		lx.errLex(diag.LexUnexpectedEOF, sp, "unexpected end of file inside brackets")
		lx.queue(token.Token{Kind: token.Invalid, Span: sp})
		return
	}

	if lx.lineHasToken {
		// фиктивный Newline: текст пуст, Round-trip не ломает
		lx.queue(token.Token{Kind: token.Newline, Span: sp})
		lx.lineHasToken = false
	}
	for lx.indents.open() > 0 {
		popped := lx.indents.pop()
		lx.queue(token.Token{Kind: token.Dedent, Span: sp, RelIndent: popped.text})
	}
	lx.queue(token.Token{Kind: token.EOF, Span: sp})
}

// scanToken диспетчеризует сканирование по первому байту. Вызывается,
// когда trivia уже собрана и курсор стоит на начале токена.
func (lx *Lexer) scanToken() token.Token {
	b := lx.cursor.Peek()
	switch {
	case b == '\n':
		return lx.scanNewline()
	case b == '#':
		return lx.scanCommentLine()
	case isQuote(b):
		return lx.scanString()
	case isIdentStartByte(b):
		if lx.looksLikeStringPrefix() {
			return lx.scanString()
		}
		return lx.scanIdentOrKeyword()
	case b >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(b) || lx.isNumberAfterDot():
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return token.Token{
		Kind: token.Newline,
		Span: lx.cursor.SpanFrom(start),
		Text: "\n",
	}
}

func (lx *Lexer) scanCommentLine() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.commentLine = false
	return token.Token{
		Kind: token.CommentLine,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.textFrom(start),
	}
}

func (lx *Lexer) queue(tok token.Token) {
	lx.pending = append(lx.pending, tok)
}

func (lx *Lexer) popPending() token.Token {
	tok := lx.pending[0]
	lx.pending = lx.pending[1:]
	return tok
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// invalidFrom формирует терминальный Invalid токен от метки до курсора.
func (lx *Lexer) invalidFrom(start Mark, code diag.Code, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(code, sp, msg)
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: lx.textFrom(start),
	}
}

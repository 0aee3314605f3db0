package lexer

import (
	"pycst/internal/token"
)

// collectTrivia собирает всё между токенами: пробелы, комментарии,
// экранированные переводы строк, пустые строки. Возвращаемое значение
// разделяется соседними токенами: After предыдущего == Before следующего.
func (lx *Lexer) collectTrivia() *token.Whitespace {
	ws := &token.Whitespace{}
	start := lx.cursor.Mark()

loop:
	for !lx.cursor.EOF() {
		if lx.atLineStart && lx.parenDepth == 0 {
			if !lx.lineStartTrivia(ws) {
				break
			}
			continue
		}

		switch b := lx.cursor.Peek(); {
		case isBlankByte(b):
			pStart := lx.cursor.Mark()
			for isBlankByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(ws, token.TriviaSpace, pStart)

		case b == '#':
			pStart := lx.cursor.Mark()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(ws, token.TriviaComment, pStart)

		case b == '\\':
			if lx.cursor.PeekAt(1) != '\n' {
				// одинокий backslash — ошибка, её выдаст сканер
				break loop
			}
			pStart := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.cursor.Bump()
			ws.Newlines++
			lx.pushTrivia(ws, token.TriviaContinuation, pStart)

		case b == '\n':
			switch {
			case lx.parenDepth > 0:
				// внутри скобок переводы строк незначимы
				blank := lx.atPhysicalLineStart()
				pStart := lx.cursor.Mark()
				lx.cursor.Bump()
				ws.Newlines++
				kind := token.TriviaNewline
				if blank {
					kind = token.TriviaBlankLine
					ws.BlankLines++
				}
				lx.pushTrivia(ws, kind, pStart)
			case lx.afterCommentLine:
				pStart := lx.cursor.Mark()
				lx.cursor.Bump()
				ws.Newlines++
				lx.pushTrivia(ws, token.TriviaNewline, pStart)
				lx.afterCommentLine = false
				lx.atLineStart = true
			default:
				// логический конец строки — это токен Newline
				break loop
			}

		default:
			break loop
		}
	}

	ws.Span = lx.cursor.SpanFrom(start)
	return ws
}

// lineStartTrivia обрабатывает начало физической строки вне скобок: пустые и
// комментарные строки поглощаются целиком, на строке с кодом замеряется
// отступ. false — цикл trivia должен остановиться (начался токен или EOF).
func (lx *Lexer) lineStartTrivia(ws *token.Whitespace) bool {
	start := lx.cursor.Mark()
	for isBlankByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	indentSpan := lx.cursor.SpanFrom(start)

	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF():
		if !indentSpan.Empty() {
			lx.pushTrivia(ws, token.TriviaSpace, start)
		}
		return false

	case b == '\n':
		if indentSpan.Empty() {
			nlStart := lx.cursor.Mark()
			lx.cursor.Bump()
			ws.Newlines++
			ws.BlankLines++
			lx.pushTrivia(ws, token.TriviaBlankLine, nlStart)
		} else {
			lx.pushTrivia(ws, token.TriviaSpace, start)
			nlStart := lx.cursor.Mark()
			lx.cursor.Bump()
			ws.Newlines++
			lx.pushTrivia(ws, token.TriviaNewline, nlStart)
		}
		return true

	case b == '#':
		// комментарные строки не участвуют в сравнении отступов
		if !indentSpan.Empty() {
			lx.pushTrivia(ws, token.TriviaSpace, start)
		}
		if lx.opts.EmitCommentLines {
			lx.commentLine = true
			lx.atLineStart = false
			return false
		}
		cStart := lx.cursor.Mark()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(ws, token.TriviaComment, cStart)
		if lx.cursor.Peek() == '\n' {
			nlStart := lx.cursor.Mark()
			lx.cursor.Bump()
			ws.Newlines++
			lx.pushTrivia(ws, token.TriviaNewline, nlStart)
		}
		return true

	default:
		// строка с кодом: отступ уходит в trivia, сравнение — перед выдачей токена
		if !indentSpan.Empty() {
			lx.pushTrivia(ws, token.TriviaSpace, start)
		}
		lx.indentText = lx.interner.Canonical(lx.textFrom(start))
		lx.indentSpan = indentSpan
		lx.indentPending = true
		lx.atLineStart = false
		return true
	}
}

func (lx *Lexer) pushTrivia(ws *token.Whitespace, kind token.TriviaKind, from Mark) {
	sp := lx.cursor.SpanFrom(from)
	ws.Pieces = append(ws.Pieces, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) textFrom(m Mark) string {
	sp := lx.cursor.SpanFrom(m)
	return string(lx.file.Content[sp.Start:sp.End])
}

// atPhysicalLineStart: курсор стоит на первом байте физической строки.
func (lx *Lexer) atPhysicalLineStart() bool {
	return lx.cursor.Off == 0 || lx.file.Content[lx.cursor.Off-1] == '\n'
}

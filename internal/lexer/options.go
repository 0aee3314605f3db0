package lexer

import (
	"pycst/internal/diag"
	"pycst/internal/source"
)

// maxTokenLength ограничивает длину одного токена (защита от вырожденных
// входов вроде гигантской строки без закрывающей кавычки).
const maxTokenLength = 1 << 20

// Options настраивают лексер. Нулевое значение пригодно к работе.
type Options struct {
	// Reporter получает диагностики; nil — ошибки только в Invalid токенах.
	Reporter diag.Reporter

	// EmitCommentLines surfaces comment-only lines as CommentLine tokens
	// instead of folding them into whitespace state.
	EmitCommentLines bool

	// MaxTokenLen overrides maxTokenLength when positive.
	MaxTokenLen int
}

func (lx *Lexer) maxTokenLen() int {
	if lx.opts.MaxTokenLen > 0 {
		return lx.opts.MaxTokenLen
	}
	return maxTokenLength
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
	}
}

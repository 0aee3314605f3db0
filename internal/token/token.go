package token

import (
	"pycst/internal/source"
)

// Token represents a single source token with its location and the
// whitespace runs on both sides.
//
// Before and After point at shared Whitespace values: the run between two
// consecutive tokens is one value, referenced as After by the earlier token
// and as Before by the later one. Concatenating Before.Text() + Text over the
// whole stream, plus the final token's After.Text(), reproduces the source
// byte-for-byte (Indent, Dedent and the synthesized end-of-file Newline have
// empty Text and contribute nothing).
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string
	Before *Whitespace
	After  *Whitespace

	// RelIndent is set only for Indent and Dedent: the indentation text of
	// the level being opened or closed. Use RelativeIndent to read it.
	RelIndent string
}

// RelativeIndent returns the indentation text associated with an Indent or
// Dedent token. ok is false for every other kind.
func (t Token) RelativeIndent() (indent string, ok bool) {
	if t.Kind == Indent || t.Kind == Dedent {
		return t.RelIndent, true
	}
	return "", false
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, ImagLit, StringLit, FStringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a Python keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwFalse && t.Kind <= KwYield
}

// IsOperator reports whether the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t.Kind >= Plus && t.Kind <= Dot
}

// IsVirtual reports whether the token occupies no source text of its own
// (Indent, Dedent, EOF, and the synthesized trailing Newline).
func (t Token) IsVirtual() bool {
	switch t.Kind {
	case Indent, Dedent, EOF:
		return true
	case Newline:
		return t.Text == ""
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// OpensBracket reports whether the token increases bracket depth.
func (t Token) OpensBracket() bool {
	return t.Kind == LParen || t.Kind == LBracket || t.Kind == LBrace
}

// ClosesBracket reports whether the token decreases bracket depth.
func (t Token) ClosesBracket() bool {
	return t.Kind == RParen || t.Kind == RBracket || t.Kind == RBrace
}

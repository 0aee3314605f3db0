package token

// Kind represents the category of a source token.
//
// The enumeration (together with the keyword table) is shared with the
// external parser; reordering or removing constants is a breaking change.
type Kind uint8

const (
	// Invalid indicates an erroneous token. It is terminal: the lexer emits
	// nothing after it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwFalse represents the 'False' keyword.
	KwFalse // False
	// KwNone represents the 'None' keyword.
	KwNone // None
	// KwTrue represents the 'True' keyword.
	KwTrue // True
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwDel represents the 'del' keyword.
	KwDel // del
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExcept represents the 'except' keyword.
	KwExcept // except
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal // nonlocal
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwYield represents the 'yield' keyword.
	KwYield // yield

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// ImagLit represents an imaginary literal token (1j, 2.5J).
	ImagLit
	// StringLit represents a string or bytes literal token, prefix included.
	StringLit
	// FStringLit represents a formatted string literal token (f-prefix).
	FStringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the power operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// SlashSlash represents the floor division operator token.
	SlashSlash // //
	// Percent represents the percent operator token.
	Percent // %
	// At represents the matrix-multiplication / decorator token.
	At // @
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Shl represents the left shift operator token.
	Shl // <<
	// Shr represents the right shift operator token.
	Shr // >>
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// StarStarAssign represents the power assign operator token.
	StarStarAssign // **=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// SlashSlashAssign represents the floor division assign operator token.
	SlashSlashAssign // //=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// AtAssign represents the matrix-multiplication assign operator token.
	AtAssign // @=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// ShlAssign represents the shl assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// ColonAssign represents the walrus operator token.
	ColonAssign // :=
	// Arrow represents the return-annotation arrow token.
	Arrow // ->
	// Ellipsis represents the ellipsis token.
	Ellipsis // ...
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .

	// Newline terminates a logical line. Newlines inside open brackets and
	// after blank or comment-only lines are whitespace, not tokens.
	Newline
	// Indent opens an indentation level; the indentation text is carried in
	// Token.RelIndent. The token itself has no source text.
	Indent
	// Dedent closes an indentation level; Token.RelIndent holds the text of
	// the level being closed. The token itself has no source text.
	Dedent
	// CommentLine represents a comment-only line. Produced only when
	// Options.EmitCommentLines is set; otherwise such lines live in
	// whitespace state.
	CommentLine

	kindCount
)

var kindNames = [kindCount]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",

	KwFalse:    "KwFalse",
	KwNone:     "KwNone",
	KwTrue:     "KwTrue",
	KwAnd:      "KwAnd",
	KwAs:       "KwAs",
	KwAssert:   "KwAssert",
	KwAsync:    "KwAsync",
	KwAwait:    "KwAwait",
	KwBreak:    "KwBreak",
	KwClass:    "KwClass",
	KwContinue: "KwContinue",
	KwDef:      "KwDef",
	KwDel:      "KwDel",
	KwElif:     "KwElif",
	KwElse:     "KwElse",
	KwExcept:   "KwExcept",
	KwFinally:  "KwFinally",
	KwFor:      "KwFor",
	KwFrom:     "KwFrom",
	KwGlobal:   "KwGlobal",
	KwIf:       "KwIf",
	KwImport:   "KwImport",
	KwIn:       "KwIn",
	KwIs:       "KwIs",
	KwLambda:   "KwLambda",
	KwNonlocal: "KwNonlocal",
	KwNot:      "KwNot",
	KwOr:       "KwOr",
	KwPass:     "KwPass",
	KwRaise:    "KwRaise",
	KwReturn:   "KwReturn",
	KwTry:      "KwTry",
	KwWhile:    "KwWhile",
	KwWith:     "KwWith",
	KwYield:    "KwYield",

	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	ImagLit:    "ImagLit",
	StringLit:  "StringLit",
	FStringLit: "FStringLit",

	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	StarStar:         "StarStar",
	Slash:            "Slash",
	SlashSlash:       "SlashSlash",
	Percent:          "Percent",
	At:               "At",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Shl:              "Shl",
	Shr:              "Shr",
	Lt:               "Lt",
	Gt:               "Gt",
	LtEq:             "LtEq",
	GtEq:             "GtEq",
	EqEq:             "EqEq",
	BangEq:           "BangEq",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	StarStarAssign:   "StarStarAssign",
	SlashAssign:      "SlashAssign",
	SlashSlashAssign: "SlashSlashAssign",
	PercentAssign:    "PercentAssign",
	AtAssign:         "AtAssign",
	AmpAssign:        "AmpAssign",
	PipeAssign:       "PipeAssign",
	CaretAssign:      "CaretAssign",
	ShlAssign:        "ShlAssign",
	ShrAssign:        "ShrAssign",
	ColonAssign:      "ColonAssign",
	Arrow:            "Arrow",
	Ellipsis:         "Ellipsis",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	Comma:            "Comma",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Dot:              "Dot",

	Newline:     "Newline",
	Indent:      "Indent",
	Dedent:      "Dedent",
	CommentLine: "CommentLine",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

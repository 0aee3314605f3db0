package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"pycst/internal/diag"
	"pycst/internal/lexer"
	"pycst/internal/source"
	"pycst/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

// HasErrors возвращает true, если были зарегистрированы ошибки
func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// HasCode проверяет, была ли диагностика с данным кодом
func (r *testReporter) HasCode(code diag.Code) bool {
	for _, d := range r.diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

// ErrorMessages возвращает список сообщений (для отладочного вывода в тестах)
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	return makeTestLexerOpts(input, lexer.Options{Reporter: reporter}), reporter
}

func makeTestLexerOpts(input string, opts lexer.Options) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte(input))
	file := fs.Get(fileID)
	return lexer.New(file, opts)
}

// collectAllTokens собирает все токены до терминального (EOF или Invalid)
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов (без завершающего EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один значимый токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v (input %q)", expectedKind, tok.Kind, input)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== Тесты для scan_ident.go ======

func TestIdentifiers_ASCII(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_bar", token.Ident, "_bar"},
		{"__init__", token.Ident, "__init__"},
		{"x123", token.Ident, "x123"},
		{"camelCase", token.Ident, "camelCase"},
		{"UPPER", token.Ident, "UPPER"},
		{"_", token.Ident, "_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.text)
		})
	}
}

func TestIdentifiers_Unicode(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"переменная", "переменная"},
		{"名前", "名前"},
		{"π", "π"},
		{"café", "café"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestKeywords(t *testing.T) {
	// регистрозависимые; распознаётся фиксированный набор
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"False", token.KwFalse},
		{"None", token.KwNone},
		{"True", token.KwTrue},
		{"and", token.KwAnd},
		{"async", token.KwAsync},
		{"await", token.KwAwait},
		{"def", token.KwDef},
		{"elif", token.KwElif},
		{"lambda", token.KwLambda},
		{"nonlocal", token.KwNonlocal},
		{"yield", token.KwYield},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestKeywords_CaseSensitive(t *testing.T) {
	// "IF", "true", "match" — обычные идентификаторы
	for _, input := range []string{"IF", "true", "false", "none", "match", "case", "print"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

// ====== Тесты для scan_number.go ======

func TestNumbers_Integer(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"0", "0"},
		{"7", "7"},
		{"123", "123"},
		{"1_000_000", "1_000_000"},
		{"0b1010", "0b1010"},
		{"0B11", "0B11"},
		{"0o755", "0o755"},
		{"0O7", "0O7"},
		{"0xDEAD_beef", "0xDEAD_beef"},
		{"0X0", "0X0"},
		{"0b_1", "0b_1"},
		{"00", "00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.IntLit, tt.text)
		})
	}
}

func TestNumbers_Float(t *testing.T) {
	tests := []string{
		"1.5", "1.", ".5", "0.0", "1e10", "1E10", "1e+10", "1e-10",
		"1.5e3", ".5e-1", "1_0.2_5", "1.e3",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.FloatLit, input)
		})
	}
}

func TestNumbers_Imaginary(t *testing.T) {
	tests := []string{"1j", "2.5J", ".5j", "1e3j", "0j"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.ImagLit, input)
		})
	}
}

func TestNumbers_Invalid(t *testing.T) {
	tests := []string{
		"0b",    // пустая серия цифр
		"0x",    // пустая серия цифр
		"0b2",   // не двоичная цифра
		"0o8",   // не восьмеричная цифра
		"1_",    // висящее подчёркивание
		"1__0",  // двойное подчёркивание
		"1e",    // пустая экспонента
		"1e+",   // пустая экспонента со знаком
		"07",    // ведущий нуль в десятичном литерале
		"1x",    // буква прилипла к числу
		"0x1z",  // буква за пределами основания
		"1.5if", // идентификатор прилип к числу
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Fatalf("Expected Invalid, got %v (text %q)", tok.Kind, tok.Text)
			}
			if !reporter.HasCode(diag.LexBadNumber) {
				t.Errorf("Expected LexBadNumber, errors: %v", reporter.ErrorMessages())
			}
		})
	}
}

func TestNumbers_DotNotPartOfNumber(t *testing.T) {
	// "1 .5" — отдельные токены; "a.b" — точка-разделитель
	expectTokens(t, "a.b", []token.Kind{token.Ident, token.Dot, token.Ident, token.Newline})
	expectTokens(t, "x[1:]", []token.Kind{
		token.Ident, token.LBracket, token.IntLit, token.Colon, token.RBracket, token.Newline,
	})
}

// ====== Тесты для scan_string.go ======

func TestString_Simple(t *testing.T) {
	tests := []string{
		`"hello"`,
		`'hello'`,
		`""`,
		`''`,
		`"it's"`,
		`'say "hi"'`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.StringLit, input)
		})
	}
}

func TestString_Prefixes(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{`r"raw"`, token.StringLit},
		{`R"raw"`, token.StringLit},
		{`b"bytes"`, token.StringLit},
		{`u"legacy"`, token.StringLit},
		{`rb"both"`, token.StringLit},
		{`bR"both"`, token.StringLit},
		{`f"x={x}"`, token.FStringLit},
		{`F"x"`, token.FStringLit},
		{`rf"x"`, token.FStringLit},
		{`fR"x"`, token.FStringLit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestString_PrefixIsNotIdent(t *testing.T) {
	// "rb" без кавычки — идентификатор; "ub" не бывает строковым префиксом
	expectTokens(t, "rb = 1", []token.Kind{token.Ident, token.Assign, token.IntLit, token.Newline})
	expectTokens(t, `ub"x"`, []token.Kind{token.Ident, token.StringLit, token.Newline})
	expectTokens(t, `rr"x"`, []token.Kind{token.Ident, token.StringLit, token.Newline})
}

func TestString_Triple(t *testing.T) {
	tests := []string{
		`"""hello"""`,
		`'''hello'''`,
		"\"\"\"multi\nline\"\"\"",
		`""""x"""`, // кавычка сразу за открывающей тройкой
		`'''it's fine'''`,
		`""""""`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.StringLit {
				t.Fatalf("Expected StringLit, got %v; errors: %v", tok.Kind, reporter.ErrorMessages())
			}
			if tok.Text != input {
				t.Errorf("Expected text %q, got %q", input, tok.Text)
			}
		})
	}
}

func TestString_Escapes(t *testing.T) {
	tests := []string{
		`"a\"b"`,
		`'a\'b'`,
		`"line\n"`,
		"\"a\\\nb\"", // экранированный перевод строки внутри однострочной
		`r"\d+"`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.StringLit, input)
		})
	}
}

func TestString_Unterminated(t *testing.T) {
	tests := []string{
		`"abc`,
		`'abc`,
		`"""abc`,
		`"""abc""`,
		"'abc\ndef'", // голый перевод строки в однострочной
		`r"\"`,       // backslash съедает закрывающую кавычку
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Fatalf("Expected Invalid, got %v (text %q)", tok.Kind, tok.Text)
			}
			if !reporter.HasCode(diag.LexUnterminatedString) {
				t.Errorf("Expected LexUnterminatedString, errors: %v", reporter.ErrorMessages())
			}
			// терминальность: дальше тот же токен
			if again := lx.Next(); again.Kind != token.Invalid {
				t.Errorf("Expected terminal Invalid on repeat, got %v", again.Kind)
			}
		})
	}
}

// ====== Тесты для scan_ops.go ======

func TestOperators_Single(t *testing.T) {
	tests := map[string]token.Kind{
		"+": token.Plus, "-": token.Minus, "*": token.Star, "/": token.Slash,
		"%": token.Percent, "@": token.At, "&": token.Amp, "|": token.Pipe,
		"^": token.Caret, "~": token.Tilde, "<": token.Lt, ">": token.Gt,
		"=": token.Assign, ",": token.Comma, ":": token.Colon, ";": token.Semicolon,
		".": token.Dot,
	}

	for input, kind := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, kind, input)
		})
	}
}

func TestOperators_Double(t *testing.T) {
	tests := map[string]token.Kind{
		"**": token.StarStar, "//": token.SlashSlash, "<<": token.Shl, ">>": token.Shr,
		"<=": token.LtEq, ">=": token.GtEq, "==": token.EqEq, "!=": token.BangEq,
		"+=": token.PlusAssign, "-=": token.MinusAssign, "*=": token.StarAssign,
		"/=": token.SlashAssign, "%=": token.PercentAssign, "@=": token.AtAssign,
		"&=": token.AmpAssign, "|=": token.PipeAssign, "^=": token.CaretAssign,
		":=": token.ColonAssign, "->": token.Arrow,
	}

	for input, kind := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, kind, input)
		})
	}
}

func TestOperators_Triple(t *testing.T) {
	tests := map[string]token.Kind{
		"**=": token.StarStarAssign, "//=": token.SlashSlashAssign,
		"<<=": token.ShlAssign, ">>=": token.ShrAssign, "...": token.Ellipsis,
	}

	for input, kind := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, kind, input)
		})
	}
}

func TestOperators_Greedy(t *testing.T) {
	// жадность: самая длинная последовательность выигрывает
	expectTokens(t, "a**=b", []token.Kind{token.Ident, token.StarStarAssign, token.Ident, token.Newline})
	expectTokens(t, "a<<b", []token.Kind{token.Ident, token.Shl, token.Ident, token.Newline})
	expectTokens(t, "..", []token.Kind{token.Dot, token.Dot, token.Newline})
	expectTokens(t, "....", []token.Kind{token.Ellipsis, token.Dot, token.Newline})
	expectTokens(t, "x=-1", []token.Kind{token.Ident, token.Assign, token.Minus, token.IntLit, token.Newline})
}

func TestOperators_UnknownCharacter(t *testing.T) {
	// '!' без '=' в языке не существует, как и '$', '?', '`'
	for _, input := range []string{"!", "$", "?", "`", "\\"} {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Fatalf("Expected Invalid, got %v", tok.Kind)
			}
			if !reporter.HasCode(diag.LexUnknownChar) {
				t.Errorf("Expected LexUnknownChar, errors: %v", reporter.ErrorMessages())
			}
		})
	}
}

// ====== Цельные сценарии ======

func TestLexer_SimpleStatement(t *testing.T) {
	lx, _ := makeTestLexer("x = 1\n")
	tokens := collectAllTokens(lx)

	expected := []token.Kind{token.Ident, token.Assign, token.IntLit, token.Newline, token.EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %v", len(expected), tokensToString(tokens))
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("Token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}
	// между x и = ровно один пробел, разделяемый обоими токенами
	if got := tokens[0].After.Text(); got != " " {
		t.Errorf("Expected shared whitespace %q, got %q", " ", got)
	}
	if tokens[0].After != tokens[1].Before {
		t.Error("Adjacent tokens must share the same whitespace state")
	}
}

func TestLexer_FunctionDefinition(t *testing.T) {
	input := "def f(a, b=1):\n    return a + b\n"
	expectTokens(t, input, []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.Ident, token.Comma,
		token.Ident, token.Assign, token.IntLit, token.RParen, token.Colon,
		token.Newline,
		token.Indent, token.KwReturn, token.Ident, token.Plus, token.Ident,
		token.Newline, token.Dedent,
	})
}

func TestLexer_Peek(t *testing.T) {
	lx, _ := makeTestLexer("a b")

	peeked := lx.Peek()
	if peeked.Kind != token.Ident || peeked.Text != "a" {
		t.Fatalf("Peek: expected Ident(a), got %v(%q)", peeked.Kind, peeked.Text)
	}
	next := lx.Next()
	if next != peeked {
		t.Error("Next after Peek must return the peeked token")
	}
	if tok := lx.Next(); tok.Text != "b" {
		t.Errorf("Expected b, got %q", tok.Text)
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("Expected EOF, got %v", tok.Kind)
	}
	// EOF терминален и повторяется
	if again := lx.Next(); again.Kind != token.EOF {
		t.Errorf("Expected repeated EOF, got %v", again.Kind)
	}
}

func TestLexer_OnlyWhitespace(t *testing.T) {
	lx, _ := makeTestLexer("  \n\n\t\n")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("Expected EOF, got %v", tok.Kind)
	}
	if tok.Before.Text() != "  \n\n\t\n" {
		t.Errorf("Whitespace lost: %q", tok.Before.Text())
	}
	// пустой считается только полностью пустая строка; "  \n" — это Space+Newline
	if tok.Before.BlankLines != 1 {
		t.Errorf("Expected 1 blank line, got %d", tok.Before.BlankLines)
	}
}

func TestLexer_NoTrailingNewline(t *testing.T) {
	// фиктивный Newline с пустым текстом, потом EOF
	lx, _ := makeTestLexer("x = 1")
	tokens := collectAllTokens(lx)

	expected := []token.Kind{token.Ident, token.Assign, token.IntLit, token.Newline, token.EOF}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Fatalf("Token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}
	if nl := tokens[3]; nl.Text != "" {
		t.Errorf("Synthetic newline must carry no text, got %q", nl.Text)
	}
}

func TestLexer_SemicolonsAndComments(t *testing.T) {
	input := "a = 1; b = 2  # two in one\n"
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	expected := []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.Semicolon,
		token.Ident, token.Assign, token.IntLit, token.Newline, token.EOF,
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Fatalf("Token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}
	// комментарий живёт в trivia перед Newline
	nl := tokens[7]
	comments := nl.Before.Comments()
	if len(comments) != 1 || comments[0] != "# two in one" {
		t.Errorf("Expected comment in whitespace, got %v", comments)
	}
}

package lexer

import (
	"testing"

	"pycst/internal/source"
)

// helper: виртуальный файл для тестов курсора
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("Unexpected EOF before %c", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Expected peek %c, got %c", want, got)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Expected bump %c, got %c", want, got)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero byte at EOF")
	}
}

// TestMultiBytePeeks проверяет Peek2/Peek3/PeekAt на границе файла
func TestMultiBytePeeks(t *testing.T) {
	cursor := NewCursor(createFile(`f"x"`))

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'f' || b1 != '"' {
		t.Errorf("Peek2: expected ('f', '\"'), got (%c, %c, %v)", b0, b1, ok)
	}
	b0, b1, b2, ok := cursor.Peek3()
	if !ok || b0 != 'f' || b1 != '"' || b2 != 'x' {
		t.Errorf("Peek3: expected ('f', '\"', 'x'), got (%c, %c, %c, %v)", b0, b1, b2, ok)
	}
	if got := cursor.PeekAt(3); got != '"' {
		t.Errorf("PeekAt(3): expected '\"', got %c", got)
	}
	if got := cursor.PeekAt(4); got != 0 {
		t.Errorf("PeekAt(4): expected 0 past end, got %c", got)
	}

	cursor.Bump()
	cursor.Bump()
	cursor.Bump() // осталось `"`

	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 must fail with one byte left")
	}
	if _, _, _, ok := cursor.Peek3(); ok {
		t.Error("Peek3 must fail with one byte left")
	}
}

// TestEat проверяет условное поглощение байта
func TestEat(t *testing.T) {
	cursor := NewCursor(createFile("=="))

	if cursor.Eat('!') {
		t.Error("Eat('!') must not consume '='")
	}
	if !cursor.Eat('=') || !cursor.Eat('=') {
		t.Error("Eat('=') must consume both bytes")
	}
	if cursor.Eat('=') {
		t.Error("Eat at EOF must fail")
	}
}

// TestMarkSpanReset проверяет Mark/SpanFrom/Reset с многобайтовыми рунами
func TestMarkSpanReset(t *testing.T) {
	file := createFile("π = 1")
	cursor := NewCursor(file)

	mark := cursor.Mark()
	cursor.Bump() // первый байт π
	cursor.Bump() // второй байт π

	sp := cursor.SpanFrom(mark)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("Expected span [0,2), got [%d,%d)", sp.Start, sp.End)
	}
	if got := string(file.Content[sp.Start:sp.End]); got != "π" {
		t.Errorf("Expected span text π, got %q", got)
	}

	cursor.Reset(mark)
	if cursor.Off != 0 {
		t.Errorf("Reset: expected offset 0, got %d", cursor.Off)
	}
}

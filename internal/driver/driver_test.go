package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pycst/internal/lexer"
	"pycst/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenize_File(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "main.py", "def f():\n    return 1\n")

	res, err := Tokenize(path, 16, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if res.Tokens[0].Kind != token.KwDef {
		t.Errorf("expected KwDef first, got %v", res.Tokens[0].Kind)
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("stream must end with EOF, got %v", last.Kind)
	}
}

func TestTokenize_MissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "nope.py"), 4, lexer.Options{}); err == nil {
		t.Fatal("expected load error")
	}
}

func TestTokenizeSource_Virtual(t *testing.T) {
	res := TokenizeSource("<stdin>", []byte("x = 'oops\n"), 4, lexer.Options{})
	if !res.HasErrors() {
		t.Fatal("expected unterminated string error")
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.Invalid {
		t.Errorf("expected terminal Invalid, got %v", last.Kind)
	}
}

func TestTokenizeDir_Parallel(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.py", "a = 1\n")
	writeFile(t, tmp, "b.py", "if b:\n    pass\n")
	writeFile(t, tmp, "ignored.txt", "not python")
	if err := os.MkdirAll(filepath.Join(tmp, "pkg"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(tmp, "pkg"), "c.py", "c = [\n 1,\n]\n")

	fileSet, results, err := TokenizeDir(context.Background(), tmp, 16, 4, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if fileSet.Len() != 3 {
		t.Fatalf("expected 3 files in FileSet, got %d", fileSet.Len())
	}
	// порядок детерминирован: сортировка по пути
	if filepath.Base(results[0].Path) != "a.py" || filepath.Base(results[1].Path) != "b.py" {
		t.Errorf("unexpected order: %v, %v", results[0].Path, results[1].Path)
	}
	for _, res := range results {
		if res.Bag.HasErrors() {
			t.Errorf("%s: unexpected errors %v", res.Path, res.Bag.Items())
		}
		file := fileSet.Get(res.FileID)
		if got := Reconstruct(res.Tokens); got != string(file.Content) {
			t.Errorf("%s: round-trip mismatch", res.Path)
		}
	}
}

func TestTokenizeAll_LoadErrorIsDiagnostic(t *testing.T) {
	tmp := t.TempDir()
	good := writeFile(t, tmp, "ok.py", "x\n")
	missing := filepath.Join(tmp, "gone.py")

	_, results, err := TokenizeAll(context.Background(), []string{good, missing}, 4, 2, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Bag.HasErrors() {
		t.Errorf("good file must have no errors")
	}
	if !results[1].Bag.HasErrors() {
		t.Errorf("missing file must carry an IO diagnostic")
	}
}

func TestRoundtrip_Verify(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "m.py", "if a:\n    b  # c\n\nd\n")

	res, rt, err := Roundtrip(path, 16, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if !rt.OK {
		t.Fatalf("round-trip failed at %d: want %q got %q", rt.DivergeAt, rt.Want, rt.Got)
	}
}

func TestVerifyRoundtrip_ReportsDivergence(t *testing.T) {
	res := TokenizeSource("m.py", []byte("x = 1\n"), 4, lexer.Options{})
	// портим поток: подменяем текст литерала
	broken := make([]token.Token, len(res.Tokens))
	copy(broken, res.Tokens)
	broken[2].Text = "2"

	rt := VerifyRoundtrip(string(res.File.Content), broken)
	if rt.OK {
		t.Fatal("expected divergence")
	}
	if rt.DivergeAt != 4 {
		t.Errorf("expected divergence at byte 4, got %d", rt.DivergeAt)
	}
}

func TestTokenCache_PutGet(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenTokenCache("pycst-test")
	if err != nil {
		t.Fatal(err)
	}

	res := TokenizeSource("m.py", []byte("if a:\n    b\n"), 4, lexer.Options{})

	if _, hit, err := cache.Get(res.File); err != nil || hit {
		t.Fatalf("expected clean miss, hit=%v err=%v", hit, err)
	}
	if err := cache.Put(res.File, res.Tokens); err != nil {
		t.Fatal(err)
	}

	cached, hit, err := cache.Get(res.File)
	if err != nil || !hit {
		t.Fatalf("expected hit, hit=%v err=%v", hit, err)
	}
	if len(cached) != len(res.Tokens) {
		t.Fatalf("expected %d tokens, got %d", len(res.Tokens), len(cached))
	}
	for i := range cached {
		if cached[i].Kind != res.Tokens[i].Kind || cached[i].Text != res.Tokens[i].Text {
			t.Errorf("token %d differs: %v(%q) vs %v(%q)",
				i, cached[i].Kind, cached[i].Text, res.Tokens[i].Kind, res.Tokens[i].Text)
		}
	}
	// разделяемость промежутков переживает диск
	for i := 0; i+1 < len(cached); i++ {
		if cached[i].After != cached[i+1].Before {
			t.Fatalf("cached tokens %d and %d lost shared whitespace", i, i+1)
		}
	}
	// и склейка по-прежнему точна
	if got := Reconstruct(cached); got != string(res.File.Content) {
		t.Errorf("cached round-trip mismatch: %q", got)
	}
}

func TestTokenCache_MissOnChangedContent(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenTokenCache("pycst-test")
	if err != nil {
		t.Fatal(err)
	}

	first := TokenizeSource("m.py", []byte("x = 1\n"), 4, lexer.Options{})
	if err := cache.Put(first.File, first.Tokens); err != nil {
		t.Fatal(err)
	}

	changed := TokenizeSource("m.py", []byte("x = 2\n"), 4, lexer.Options{})
	if _, hit, _ := cache.Get(changed.File); hit {
		t.Error("expected miss for changed content")
	}
}

func TestTokenizeCached_HitOnSecondRun(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenTokenCache("pycst-test")
	if err != nil {
		t.Fatal(err)
	}

	tmp := t.TempDir()
	path := writeFile(t, tmp, "m.py", "for i in xs:\n    yield i\n")

	first, hit, err := TokenizeCached(path, 4, lexer.Options{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("first run must miss the cache")
	}

	second, hit, err := TokenizeCached(path, 4, lexer.Options{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("second run must hit the cache")
	}
	if len(second.Tokens) != len(first.Tokens) {
		t.Fatalf("expected %d tokens, got %d", len(first.Tokens), len(second.Tokens))
	}
	if got := Reconstruct(second.Tokens); got != string(second.File.Content) {
		t.Errorf("cached round-trip mismatch: %q", got)
	}
}

func TestTokenizeCached_ErrorsAreNotCached(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenTokenCache("pycst-test")
	if err != nil {
		t.Fatal(err)
	}

	tmp := t.TempDir()
	path := writeFile(t, tmp, "bad.py", "x = 'unterminated\n")

	res, hit, err := TokenizeCached(path, 4, lexer.Options{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("unexpected cache hit")
	}
	if !res.HasErrors() {
		t.Fatal("expected lexical errors")
	}
	if _, hit, _ := cache.Get(res.File); hit {
		t.Error("erroneous file must not be cached")
	}
}

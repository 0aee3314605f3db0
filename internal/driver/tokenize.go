package driver

import (
	"pycst/internal/diag"
	"pycst/internal/lexer"
	"pycst/internal/source"
	"pycst/internal/token"
)

// TokenizeResult содержит всё, что нужно вызывающему после токенизации
// одного файла: сам файл, поток токенов и собранные диагностики.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// HasErrors reports whether tokenization stopped on an error.
func (r *TokenizeResult) HasErrors() bool {
	return r.Bag.HasErrors()
}

// Tokenize загружает файл с диска и токенизирует его целиком.
func Tokenize(path string, maxDiagnostics int, lexOpts lexer.Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics, lexOpts), nil
}

// TokenizeSource токенизирует содержимое из памяти (stdin, тесты, LSP).
func TokenizeSource(name string, content []byte, maxDiagnostics int, lexOpts lexer.Options) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics, lexOpts)
}

// TokenizeCached — как Tokenize, но сперва пробует дисковый кеш токенов.
// Возвращает true, если токены пришли из кеша. Кешируются только чистые
// прогоны: файл с диагностиками в кеш не попадает.
func TokenizeCached(path string, maxDiagnostics int, lexOpts lexer.Options, cache *TokenCache) (*TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)
	if cache != nil {
		if tokens, ok, err := cache.Get(file); err == nil && ok {
			return &TokenizeResult{
				FileSet: fs,
				File:    file,
				Tokens:  tokens,
				Bag:     diag.NewBag(maxDiagnostics),
			}, true, nil
		}
	}
	res := tokenizeFile(fs, fileID, maxDiagnostics, lexOpts)
	if cache != nil && !res.HasErrors() {
		// ошибка записи кеша не мешает основному результату
		_ = cache.Put(file, res.Tokens)
	}
	return res, false, nil
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int, lexOpts lexer.Options) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lexOpts.Reporter = diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexOpts)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.Tokens(),
		Bag:     bag,
	}
}

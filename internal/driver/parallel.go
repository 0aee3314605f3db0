package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pycst/internal/diag"
	"pycst/internal/lexer"
	"pycst/internal/source"
	"pycst/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу
	FileID source.FileID // ID файла в FileSet (0 при ошибке загрузки)
	Tokens []token.Token // токены файла
	Bag    *diag.Bag     // диагностики
}

// listPyFiles возвращает отсортированный список всех *.py файлов в директории
func listPyFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.py файлы в директории параллельно.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int, lexOpts lexer.Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listPyFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	return TokenizeAll(ctx, files, maxDiagnostics, jobs, lexOpts)
}

// TokenizeAll токенизирует перечисленные файлы параллельно. Файлы грузятся
// в общий FileSet последовательно (он не потокобезопасен на запись), сама
// токенизация раскладывается по воркерам: лексеры независимы.
func TokenizeAll(ctx context.Context, files []string, maxDiagnostics, jobs int, lexOpts lexer.Options) (*source.FileSet, []TokenizeDirResult, error) {
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индекс i уникален для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			opts := lexOpts
			opts.Reporter = diag.BagReporter{Bag: bag}
			lx := lexer.New(fileSet.Get(fileID), opts)

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: lx.Tokens(),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

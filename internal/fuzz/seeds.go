package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addBuiltinSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.py файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".py" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addBuiltinSeeds подмешивает маленькие фрагменты, покрывающие основные
// ветки сканера: отступы, скобочные продолжения, f-строки, числа, комментарии.
func addBuiltinSeeds(f *testing.F) {
	seeds := []string{
		"",
		"x = 1\n",
		"def f(a, b=2):\n    return a + b\n",
		"if x:\n    if y:\n        pass\nelse:\n    pass\n",
		"items = [1,\n         2,\n         3]\n",
		"s = f\"answer={x!r:>{width}}\"\n",
		"b = rb'\\x00' + b\"bytes\"\n",
		"n = 0xDEAD_beef + 1_000.5e-3j\n",
		"# comment only\n\n\t\n",
		"total = 1 + \\\n    2\n",
		"'''triple\nquoted'''\n",
		"x = 'unterminated",
		"\tmixed\n        tabs\n",
		"@decorator\nclass C:\n    ...\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"func f() end f",
	"var a: int, b: array of char of length 4;",
	"type node = record of { value: int, next: node };",
	"type list = node; type node = record of { next: list };",
	"func f(x: int): int\n  if x < 0 then return -x; else return x;\n  end\nend f",
	"func f()\n  while true do write 'a'; end\nend f",
	"func f(xs: array of int): int return |xs| + xs[0]; end f",
	"func f() var r: record of { a: int }; alloc r; r.a = 2147483647; end f",
	"func f(): bool return !(1 == 2) && (3 <= 4 || null == null); end f",
	"func f() g(1, 'x', true); end f",
	"write 1 + * 2;",
	"func f( end f",
	"'",
	"'\\n'",
	"var funcs: int; funcs = 08;",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "driver", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по testdata драйвера, добавляем все *.die файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".die" {
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

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

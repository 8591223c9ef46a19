package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	``,
	`{}`,
	`[]`,
	`{"compilerOptions": {}}`,
	`{"compilerOptions": {"module": "commonjs", "target": "es5", "noImplicitAny": false, "sourceMap": false, "lib": ["es5", "es2015.core", "es2015.symbol"]}}`,
	`{"compilerOptions": {"jsx": "vue", "modu": 1, "outDir": "./dist"}}`,
	`{"compilerOptions": {"paths": {"@/*": ["src/*"]}, "moduleSuffixes": [".ios", ""], "types": ["node"]}}`,
	"{\n  // comment\n  \"compilerOptions\": {\n    \"allowJs\": true, /* trailing */\n  },\n}",
	`{"compilerOptions": {"module": "esnext",
    "experimentalDecorators": true,
  }
  "exclude": [ "node_modules" ]
}`,
	`{"compilerOptions": {"target": 'es5', unquoted: 1, 0x10: null}}`,
	`[{"compilerOptions": {"strict": true}}]`,
	`{"module": "amd", "compilerOptions": null}`,
	`"just a string"`,
	`{"compilerOptions": {"lib": ["es5", 42, "nope"]}`,
	`{"a": "é\n\t\"x\"", "b": -1.5e3, "c": [true, false, null]}`,
	`{{{{[[[[`,
	`}]}]`,
	`{"compilerOptions": {"newLine": "CRLF", "moduleResolution": "Node", "importsNotUsedAsValues": "Error"}}`,
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.json under testdata/ when the directory exists.
func addTestdataSeeds(f *testing.F) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.json"))
	if err != nil {
		return
	}
	for _, path := range matches {
		// #nosec G304 -- path comes from a testdata glob
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
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

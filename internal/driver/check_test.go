package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscfg/internal/diag"
	"tscfg/internal/options"
	"tscfg/internal/source"
)

type fixedHost struct{ cwd string }

func (h fixedHost) CurrentDirectory() string        { return h.cwd }
func (h fixedHost) UseCaseSensitiveFileNames() bool { return true }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func codesOf(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestCheckValidFileResolvesPathsAgainstItsDirectory(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "app/tsconfig.json", `{
  "compilerOptions": {
    "module": "commonjs",
    "outDir": "./dist"
  }
}`)

	fs, results, err := Check(context.Background(), Request{Inputs: Paths(p), Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	require.NoError(t, res.LoadErr)
	assert.False(t, res.HasErrors())
	assert.Equal(t, 0, res.Bag.Len())
	require.NotNil(t, fs.Get(res.FileID))

	mod, ok := res.Result.Options.Get("module")
	require.True(t, ok)
	assert.Equal(t, options.ModuleCommonJS, mod)

	outDir, _ := res.Result.Options.Get("outDir")
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "app", "dist")), outDir)
	assert.Equal(t, filepath.ToSlash(p), res.Result.Options.ConfigFilePath)
	assert.Same(t, res.File, res.Result.Options.ConfigFile)
}

func TestCheckReportsOptionErrorsWithLocation(t *testing.T) {
	in := Input{Path: "tsconfig.json", Content: []byte("{\n  \"compilerOptions\": {\n    \"jsx\": \"vue\",\n    \"modu\": 1\n  }\n}")}

	fs, results, err := Check(context.Background(), Request{Inputs: []Input{in}, Host: fixedHost{cwd: "/proj"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	res := results[0]

	assert.True(t, res.HasErrors())
	assert.Equal(t, []diag.Code{diag.ArgumentForOptionMustBe, diag.UnknownCompilerOption}, codesOf(res.Bag))

	first := res.Bag.Items()[0]
	start, _ := fs.Resolve(first.Primary)
	assert.Equal(t, source.LineCol{Line: 3, Col: 12}, start)
	assert.Equal(t, "Argument for '--jsx' option must be: 'preserve', 'react-native', 'react'.", first.Message)
}

func TestCheckMergesSyntaxAndOptionDiagnostics(t *testing.T) {
	in := Input{Path: "tsconfig.json", Content: []byte(`{"compilerOptions": {"module": "amd" "target": "es9"}}`)}

	_, results, err := Check(context.Background(), Request{Inputs: []Input{in}, Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	res := results[0]

	require.True(t, res.File.HasSyntaxErrors())
	codes := codesOf(res.Bag)
	assert.Contains(t, codes, diag.Expected)
	assert.Contains(t, codes, diag.ArgumentForOptionMustBe)

	// отсортировано по позиции
	items := res.Bag.Items()
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Primary.Start, items[i].Primary.Start)
	}
}

func TestCheckMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "tsconfig.json")

	_, results, err := Check(context.Background(), Request{Inputs: Paths(missing), Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	require.Error(t, res.LoadErr)
	assert.Equal(t, source.NoFile, res.FileID)
	assert.Nil(t, res.File)
	require.Equal(t, []diag.Code{diag.CannotReadFile}, codesOf(res.Bag))
	d := res.Bag.Items()[0]
	assert.False(t, d.HasLocation())
	assert.Equal(t, fmt.Sprintf("Cannot read file '%s'.", missing), d.Message)
}

func TestCheckKeepsInputOrder(t *testing.T) {
	var inputs []Input
	for i := range 40 {
		body := fmt.Sprintf(`{"compilerOptions": {"maxNodeModuleJsDepth": %d}}`, i)
		inputs = append(inputs, Input{Path: fmt.Sprintf("cfg%02d/tsconfig.json", i), Content: []byte(body)})
	}

	_, results, err := Check(context.Background(), Request{Inputs: inputs, Jobs: 4, Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	for i, res := range results {
		assert.Equal(t, inputs[i].Path, res.Path)
		v, ok := res.Result.Options.Get("maxNodeModuleJsDepth")
		require.True(t, ok)
		assert.Equal(t, float64(i), v)
	}
}

func TestCheckJSConfigDefaults(t *testing.T) {
	in := Input{Path: "web/jsconfig.json", Content: []byte(`{"compilerOptions": {"noEmit": false}}`)}

	_, results, err := Check(context.Background(), Request{Inputs: []Input{in}, Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	opts := results[0].Result.Options
	assert.Equal(t, []string{"allowJs", "maxNodeModuleJsDepth", "allowSyntheticDefaultImports", "skipLibCheck", "noEmit"}, opts.Keys())
	v, _ := opts.Get("noEmit")
	assert.Equal(t, false, v)
}

func TestCheckBasePathOverride(t *testing.T) {
	in := Input{Path: "a/b/tsconfig.json", Content: []byte(`{"compilerOptions": {"rootDir": "src"}}`)}

	_, results, err := Check(context.Background(), Request{Inputs: []Input{in}, BasePath: "/base", Host: fixedHost{cwd: "/cwd"}})
	require.NoError(t, err)
	v, _ := results[0].Result.Options.Get("rootDir")
	assert.Equal(t, "/base/src", v)
}

func TestCheckMaxDiagnostics(t *testing.T) {
	in := Input{Path: "tsconfig.json", Content: []byte(`{"compilerOptions": {"a": 1, "b": 2, "c": 3}}`)}

	_, results, err := Check(context.Background(), Request{Inputs: []Input{in}, MaxDiagnostics: 2, Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	assert.Equal(t, 2, results[0].Bag.Len())
	assert.Len(t, results[0].Result.Errors, 3)
}

func TestCheckProgressAndTimings(t *testing.T) {
	inputs := []Input{
		{Path: "ok.json", Content: []byte(`{"compilerOptions": {}}`)},
		{Path: "bad.json", Content: []byte(`{"compilerOptions": {"module": 1}}`)},
	}

	var mu sync.Mutex
	seen := map[string][]Event{}
	sink := SinkFunc(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		seen[e.File] = append(seen[e.File], e)
	})

	_, results, err := Check(context.Background(), Request{Inputs: inputs, Progress: sink, Timings: true, Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)

	for _, res := range results {
		require.NotNil(t, res.Timing, res.Path)
		var names []string
		for _, p := range res.Timing.Phases {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"load", "parse", "convert"}, names)
	}

	okEvents := seen["ok.json"]
	require.NotEmpty(t, okEvents)
	assert.Equal(t, Event{File: "ok.json", Stage: StageLoad, Status: StatusQueued}, okEvents[0])
	last := okEvents[len(okEvents)-1]
	assert.Equal(t, StageConvert, last.Stage)
	assert.Equal(t, StatusDone, last.Status)

	badEvents := seen["bad.json"]
	last = badEvents[len(badEvents)-1]
	assert.Equal(t, StageConvert, last.Stage)
	assert.Equal(t, StatusError, last.Status)
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, results, err := Check(ctx, Request{Inputs: []Input{{Path: "x.json", Content: []byte("{}")}}, Host: fixedHost{cwd: "/"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestCheckNoInputs(t *testing.T) {
	fs, results, err := Check(context.Background(), Request{Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	assert.NotNil(t, fs)
	assert.Empty(t, results)
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a", Stage: StageParse, Status: StatusWorking})
	assert.Equal(t, "a", (<-ch).File)

	// nil канал не блокирует
	ChannelSink{}.OnEvent(Event{File: "b"})
}

func TestCheckTimingsOnLoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")
	_, results, err := Check(context.Background(), Request{Inputs: Paths(missing), Timings: true, Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Timing)
	require.Len(t, results[0].Timing.Phases, 1)
	assert.Equal(t, "load", results[0].Timing.Phases[0].Name)
}

func TestCheckReadsRepeatedPathOnce(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "tsconfig.json", `{"compilerOptions": {"target": "es9"}}`)
	stdin := Input{Path: p, Content: []byte(`{}`)}

	fs, results, err := Check(context.Background(), Request{Inputs: []Input{{Path: p}, {Path: p}, stdin}, Host: fixedHost{cwd: "/"}})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, results[0].FileID, results[1].FileID)
	assert.NotEqual(t, results[0].FileID, results[2].FileID)
	assert.Equal(t, 2, fs.Len())
	for _, r := range results[:2] {
		require.Equal(t, 1, r.Bag.Len())
		assert.Equal(t, diag.ArgumentForOptionMustBe, r.Bag.Items()[0].Code)
	}
	assert.False(t, results[2].HasErrors())
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscfg/internal/diagfmt"
	"tscfg/internal/driver"
	"tscfg/internal/version"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.WarnLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for in, want := range cases {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseLogLevel("loud")
	assert.Error(t, err)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := readUIMode("maybe")
	assert.Error(t, err)

	assert.True(t, shouldUseTUI(uiModeOn))
	assert.False(t, shouldUseTUI(uiModeOff))

	colored, err := useColor("on")
	require.NoError(t, err)
	assert.True(t, colored)
	_, err = useColor("rainbow")
	assert.ErrorContains(t, err, "--color")
}

func TestCollectInputs(t *testing.T) {
	inputs, err := collectInputs([]string{"a.json", "-"}, nil, strings.NewReader(`{"compilerOptions": {}}`), "stdin.json")
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, driver.Input{Path: "a.json"}, inputs[0])
	assert.Equal(t, "stdin.json", inputs[1].Path)
	assert.Equal(t, `{"compilerOptions": {}}`, string(inputs[1].Content))

	_, err = collectInputs([]string{"-", "-"}, nil, strings.NewReader(""), "x")
	assert.Error(t, err)

	_, err = collectInputs(nil, nil, nil, "x")
	assert.ErrorContains(t, err, manifestName)

	m := &projectManifest{Root: "/proj", Config: manifestConfig{Files: filesConfig{Configs: []string{"tsconfig.json"}}}}
	inputs, err = collectInputs(nil, m, nil, "x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/proj", "tsconfig.json"), inputs[0].Path)
}

func checkFixture(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	good := filepath.Join(dir, "good", "tsconfig.json")
	bad := filepath.Join(dir, "bad", "tsconfig.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(good), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(bad), 0o755))
	require.NoError(t, os.WriteFile(good, []byte(`{"compilerOptions": {"module": "esnext", "strict": true}}`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("{\n  \"compilerOptions\": {\n    \"target\": \"es9\"\n  }\n}"), 0o600))
	return good, bad
}

func TestWriteCheckOutputFormats(t *testing.T) {
	good, bad := checkFixture(t)
	fs, results, err := driver.Check(context.Background(), driver.Request{Inputs: driver.Paths(good, bad)})
	require.NoError(t, err)

	settings := checkSettings{format: "pretty", pathMode: diagfmt.PathModeBasename}
	var buf bytes.Buffer
	require.NoError(t, writeCheckOutput(&buf, fs, results, settings))
	out := buf.String()
	assert.Contains(t, out, "== tsconfig.json ==")
	assert.Contains(t, out, "tsconfig.json:3:15: error TS6046: Argument for '--target' option must be:")
	assert.Contains(t, out, "Found 1 error(s) in 1 file(s).")

	buf.Reset()
	settings.format = "short"
	require.NoError(t, writeCheckOutput(&buf, fs, results, settings))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "error TS6046")

	buf.Reset()
	settings.format = "json"
	require.NoError(t, writeCheckOutput(&buf, fs, results, settings))
	var report struct {
		Files []struct {
			Path        string         `json:"path"`
			Options     map[string]any `json:"options"`
			Diagnostics []any          `json:"diagnostics"`
		} `json:"files"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.Files, 2)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, float64(99), report.Files[0].Options["module"])
	assert.Equal(t, true, report.Files[0].Options["strict"])
	assert.Len(t, report.Files[1].Diagnostics, 1)

	buf.Reset()
	settings.format = "msgpack"
	require.NoError(t, writeCheckOutput(&buf, fs, results, settings))
	assert.NotZero(t, buf.Len())
}

func TestCheckCommandExitStatus(t *testing.T) {
	good, bad := checkFixture(t)
	t.Chdir(filepath.Dir(good))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"check", "--format", "short", "--color", "off", good})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Empty(t, out.String())

	rootCmd.SetArgs([]string{"check", "--format", "short", "--color", "off", good, bad})
	err := rootCmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out.String(), "TS6046")
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunCheckWatchStopsOnCancel(t *testing.T) {
	_, bad := checkFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, errOut syncBuffer
	settings := checkSettings{format: "short", pathMode: diagfmt.PathModeBasename}
	done := make(chan error, 1)
	go func() {
		done <- runCheckWatch(ctx, &out, &errOut, driver.Request{Inputs: driver.Paths(bad)}, settings)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "1 error(s), watching for changes")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "error TS6046")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestRunCheckWatchRejectsStdin(t *testing.T) {
	in := driver.Input{Path: "tsconfig.json", Content: []byte("{}")}
	err := runCheckWatch(context.Background(), io.Discard, io.Discard, driver.Request{Inputs: []driver.Input{in}}, checkSettings{format: "short"})
	require.Error(t, err)
}

func TestWriteOptionsYAML(t *testing.T) {
	good, _ := checkFixture(t)
	_, results, err := driver.Check(context.Background(), driver.Request{Inputs: driver.Paths(good)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeOptionsYAML(&buf, results[0].Result.Options))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "module: 99", lines[0])
	assert.Equal(t, "strict: true", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "configFilePath: "), lines[2])
}

func TestFormatOptionValue(t *testing.T) {
	assert.Equal(t, "[a, b]", formatOptionValue([]string{"a", "b"}))
	assert.Equal(t, "{@/*: [src/*], x: 1}", formatOptionValue(map[string]any{"x": float64(1), "@/*": []any{"src/*"}}))
	assert.Equal(t, "true", formatOptionValue(true))
	assert.Equal(t, "plain", formatOptionValue("plain"))
}

func TestOptionRowsAndTable(t *testing.T) {
	all := optionRows("")
	require.NotEmpty(t, all)

	modules := optionRows("modules")
	require.NotEmpty(t, modules)
	for _, r := range modules {
		assert.Equal(t, "Modules", r.Category)
	}
	assert.Empty(t, optionRows("no such category"))

	var buf bytes.Buffer
	require.NoError(t, renderOptionsTable(&buf, modules, false))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Len(t, lines, len(modules)+1)
}

func TestOptionRowsListEnumValues(t *testing.T) {
	byName := map[string]optionRow{}
	for _, r := range optionRows("") {
		byName[r.Name] = r
	}
	assert.Contains(t, byName["module"].Values, "commonjs")
	assert.Contains(t, byName["lib"].Values, "es5")
	assert.Empty(t, byName["strict"].Values)

	data, err := json.Marshal(byName["strict"])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "values")
}

func TestRenderVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderVersionJSON(&buf, versionInfoForTest(), versionOptions{showHash: true}))
	var payload versionPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "tscfg", payload.Tool)
	assert.Equal(t, "unknown", payload.GitCommit)
	assert.Empty(t, payload.BuildDate)

	buf.Reset()
	renderVersionPretty(&buf, versionInfoForTest(), versionOptions{showDate: true})
	assert.Equal(t, "tscfg 9.9.9\nbuilt:  unknown\n", buf.String())
}

func versionInfoForTest() version.Info {
	return version.Info{Version: "9.9.9"}
}

package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("tsconfig.json", []byte(`{}`), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("tsconfig.json")
	if !exists || latestID != id1 {
		t.Fatalf("Expected latest ID %d, got %d (exists=%v)", id1, latestID, exists)
	}

	id2 := fs.Add("./tsconfig.json", []byte(`{"compilerOptions":{}}`), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, _ = fs.GetLatest("tsconfig.json")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != `{}` {
		t.Errorf("Expected first file content to be '{}', got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("jsconfig.json", []byte("{\n}\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestGetNoFile(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.json", []byte("{}"))

	if f := fs.Get(NoFile); f != nil {
		t.Errorf("Expected nil for NoFile, got %+v", f)
	}
	if f := fs.Get(7); f != nil {
		t.Errorf("Expected nil for out-of-range id, got %+v", f)
	}
	start, end := fs.Resolve(NoSpan)
	if start != (LineCol{}) || end != (LineCol{}) {
		t.Errorf("Expected zero positions for NoSpan, got %v %v", start, end)
	}
}

func TestResolveAndText(t *testing.T) {
	fs := NewFileSet()
	content := "{\n  \"target\": \"es5\"\n}"
	id := fs.AddVirtual("tsconfig.json", []byte(content))

	span := Span{File: id, Start: 14, End: 19}
	if got := fs.Text(span); got != `"es5"` {
		t.Fatalf("Text() = %q, want %q", got, `"es5"`)
	}
	start, end := fs.Resolve(span)
	if start.Line != 2 || start.Col != 13 {
		t.Errorf("start = %+v, want 2:13", start)
	}
	if end.Line != 2 || end.Col != 18 {
		t.Errorf("end = %+v, want 2:18", end)
	}

	if got := fs.Text(Span{File: id, Start: 18, End: 500}); got != "\"\n}" {
		t.Errorf("clamped Text() = %q", got)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("tsconfig.json", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	cases := map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsconfig.json")
	raw := []byte("\xEF\xBB\xBF{\r\n  \"compilerOptions\": {}\r\n}\r\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	want := "{\n  \"compilerOptions\": {}\n}\n"
	if string(f.Content) != want {
		t.Errorf("content = %q, want %q", f.Content, want)
	}
	if got := f.FormatPath("relative", dir); got != "tsconfig.json" {
		t.Errorf("relative path = %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if fs.Len() != 0 {
		t.Errorf("failed load must not add a file")
	}
}

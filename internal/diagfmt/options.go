package diagfmt

import "tscfg/internal/source"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ParsePathMode maps a flag value to a PathMode.
func ParsePathMode(s string) (PathMode, bool) {
	switch s {
	case "", "auto":
		return PathModeAuto, true
	case "absolute":
		return PathModeAbsolute, true
	case "relative":
		return PathModeRelative, true
	case "basename":
		return PathModeBasename, true
	}
	return PathModeAuto, false
}

func (m PathMode) mode() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int8 // строк контекста до и после
	PathMode PathMode
	Width    uint8 // максимальная ширина строки, 0 - не ограничено
}

// JSONOpts configures JSON and msgpack output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
}

// DisplayPath renders the path of file id the way diagnostics do. fallback is
// returned for files that never loaded.
func DisplayPath(fs *source.FileSet, id source.FileID, fallback string, mode PathMode) string {
	if fs == nil {
		return fallback
	}
	f := fs.Get(id)
	if f == nil {
		return fallback
	}
	return f.FormatPath(mode.mode(), fs.BaseDir())
}

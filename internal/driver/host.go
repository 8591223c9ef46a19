package driver

import (
	"os"
	"path/filepath"
	"runtime"

	"tscfg/internal/options"
)

// osHost answers host questions from the running process.
type osHost struct {
	cwd           string
	caseSensitive bool
}

// NewHost returns a Host backed by the process working directory. File names
// are treated as case-insensitive on Windows and macOS.
func NewHost() options.Host {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return osHost{
		cwd:           filepath.ToSlash(cwd),
		caseSensitive: runtime.GOOS != "windows" && runtime.GOOS != "darwin",
	}
}

func (h osHost) CurrentDirectory() string        { return h.cwd }
func (h osHost) UseCaseSensitiveFileNames() bool { return h.caseSensitive }

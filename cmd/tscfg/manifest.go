package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const manifestName = "tscfg.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Check checkConfig `toml:"check"`
	Files filesConfig `toml:"files"`
}

type checkConfig struct {
	Format         string `toml:"format" validate:"omitempty,oneof=pretty short json msgpack"`
	MaxDiagnostics int    `toml:"max_diagnostics" validate:"gte=0"`
	Jobs           int    `toml:"jobs" validate:"gte=0"`
	Color          string `toml:"color" validate:"omitempty,oneof=auto on off"`
	BasePath       string `toml:"base_path"`
	PathMode       string `toml:"path_mode" validate:"omitempty,oneof=auto absolute relative basename"`
}

type filesConfig struct {
	Configs []string `toml:"configs" validate:"dive,required"`
}

var manifestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// ошибки называют ключи так, как они записаны в tscfg.toml
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

func validateManifest(path string, cfg *manifestConfig) error {
	err := manifestValidator().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", path, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describeFieldError(fe)
	}
	return fmt.Errorf("%s: %s", path, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace is "manifestConfig.check.format"
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", key, strings.ReplaceAll(fe.Param(), " ", "|"), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must not be negative", key)
	case "required":
		return fmt.Sprintf("%s is empty", key)
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return manifestConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := validateManifest(path, &cfg); err != nil {
		return manifestConfig{}, err
	}
	return cfg, nil
}

// configPaths returns [files].configs resolved against the manifest directory.
func (m *projectManifest) configPaths() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.Config.Files.Configs))
	for i, p := range m.Config.Files.Configs {
		p = filepath.FromSlash(strings.TrimSpace(p))
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Root, p)
		}
		out[i] = p
	}
	return out
}

// basePath resolves [check].base_path against the manifest directory; empty
// stays empty.
func (m *projectManifest) basePath() string {
	if m == nil || m.Config.Check.BasePath == "" {
		return ""
	}
	p := filepath.FromSlash(m.Config.Check.BasePath)
	if !filepath.IsAbs(p) {
		p = filepath.Join(m.Root, p)
	}
	return filepath.ToSlash(p)
}

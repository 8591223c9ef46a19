package options

import (
	"path"
	"strings"
)

const jsconfigName = "jsconfig.json"

// jsconfigDefaults are applied, in this order, to configs named
// jsconfig.json. A user value replaces the default in place.
var jsconfigDefaults = []struct {
	name  string
	value any
}{
	{"allowJs", true},
	{"maxNodeModuleJsDepth", float64(2)},
	{"allowSyntheticDefaultImports", true},
	{"skipLibCheck", true},
	{"noEmit", true},
}

func baseName(configFileName string) string {
	return path.Base(strings.ReplaceAll(configFileName, `\`, "/"))
}

func isJSConfig(configFileName string, caseSensitive bool) bool {
	base := baseName(configFileName)
	if caseSensitive {
		return base == jsconfigName
	}
	return fold(base) == fold(jsconfigName)
}

// applyDefaults overlays the defaults for configFileName. Only options present
// in user block a default, so a rejected value still gets the default.
func applyDefaults(user *Options, configFileName string, caseSensitive bool) *Options {
	if !isJSConfig(configFileName, caseSensitive) {
		return user
	}
	out := NewOptions()
	for _, d := range jsconfigDefaults {
		out.Set(d.name, d.value)
	}
	for k, v := range user.All() {
		out.Set(k, v)
	}
	return out
}

package options

import (
	"encoding/json"
	"maps"
	"path"
	"slices"
	"strings"

	"tscfg/internal/diag"
	"tscfg/internal/source"
)

// converter is the single conversion routine behind every entry point. Only
// the locator differs between decoded values and parsed files.
type converter struct {
	loc      locator
	basePath string
	errs     []diag.Diagnostic
}

func newConverter(loc locator, basePath string) *converter {
	return &converter{loc: loc, basePath: basePath}
}

func (c *converter) report(code diag.Code, sp source.Span, args ...string) {
	c.errs = append(c.errs, diag.New(code, sp, args...))
}

// convertOptions converts the members of a compilerOptions object. Unknown
// keys and failed values are reported and left out. A repeated key that fails
// or is null also drops the value an earlier occurrence set.
func (c *converter) convertOptions(raws []RawOption) *Options {
	out := NewOptions()
	for _, raw := range raws {
		decl, ok := Lookup(raw.Key)
		if !ok {
			c.report(diag.UnknownCompilerOption, c.loc.keySpan(raw), raw.Key)
			continue
		}
		if v, ok := c.convertOption(decl, raw); ok {
			out.Set(decl.Name, v)
		} else {
			out.Delete(decl.Name)
		}
	}
	return out
}

func (c *converter) convertOption(decl *OptionDeclaration, raw RawOption) (any, bool) {
	if raw.Value == nil {
		// null or a property the parser found no value for: unset
		return nil, false
	}
	switch decl.Kind {
	case KindList, KindFreeList:
		return c.convertList(decl, raw)
	}
	v, ok := convertValue(decl, raw.Value, c.basePath)
	if !ok {
		c.reportInvalid(decl, raw)
		return nil, false
	}
	return v, true
}

func (c *converter) reportInvalid(decl *OptionDeclaration, raw RawOption) {
	sp := c.loc.valueSpan(raw)
	if decl.Kind == KindEnum {
		c.report(diag.ArgumentForOptionMustBe, sp, "--"+decl.Name, decl.Enum.Quoted())
		return
	}
	c.report(diag.CompilerOptionRequiresType, sp, decl.Name, decl.Kind.TypeName())
}

// convertList converts list options. Elements are converted one by one; the
// survivors are kept in order and one diagnostic covers all failures.
func (c *converter) convertList(decl *OptionDeclaration, raw RawOption) (any, bool) {
	items, ok := asList(raw.Value)
	if !ok {
		c.report(diag.CompilerOptionRequiresType, c.loc.valueSpan(raw), decl.Name, decl.Kind.TypeName())
		return nil, false
	}
	if decl.Kind == KindFreeList {
		return slices.Clone(items), true
	}

	out := make([]string, 0, len(items))
	failed := false
	for _, item := range items {
		v, ok := convertValue(decl.Element, item, c.basePath)
		s, isString := v.(string)
		if !ok || !isString {
			failed = true
			continue
		}
		out = append(out, s)
	}
	if failed {
		c.reportInvalid(decl.Element, raw)
	}
	return out, true
}

// convertValue converts one scalar-shaped value. It never reports; callers
// decide which diagnostic a failure deserves.
func convertValue(decl *OptionDeclaration, v any, basePath string) (any, bool) {
	switch decl.Kind {
	case KindBoolean:
		b, ok := v.(bool)
		return b, ok
	case KindNumber:
		return asNumber(v)
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindPath:
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		return normalizePath(basePath, s), true
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		return decl.Enum.Lookup(s)
	case KindObject:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		return maps.Clone(m), true
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// asNumber accepts what JSON decoders produce, plus plain Go integers.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// normalizePath resolves p against base with forward slashes. An empty p
// resolves to base itself.
func normalizePath(base, p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if path.IsAbs(p) || hasDrive(p) || base == "" {
		return path.Clean(p)
	}
	return path.Join(strings.ReplaceAll(base, `\`, "/"), p)
}

func hasDrive(p string) bool {
	return len(p) >= 3 && p[1] == ':' && p[2] == '/' &&
		(p[0] >= 'a' && p[0] <= 'z' || p[0] >= 'A' && p[0] <= 'Z')
}

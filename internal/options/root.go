package options

import (
	"tscfg/internal/ast"
	"tscfg/internal/diag"
)

type rootShape uint8

const (
	rootEmpty    rootShape = iota // nothing to read
	rootObject                    // the normal case
	rootFallback                  // [ {...} ] or stray values around {...}: read, but still reported
	rootInvalid                   // anything else
)

// document is the top level of a config reduced to what the validator needs.
type document struct {
	shape rootShape
	props []RawOption
}

func documentFromNode(file *ast.File) document {
	root := file.Root
	switch {
	case root == nil:
		return document{shape: rootEmpty}
	case len(file.Values) > 1:
		// несколько значений верхнего уровня не образуют объект
		if root.IsObject() {
			return document{shape: rootFallback, props: rawFromNode(root)}
		}
		return document{shape: rootInvalid}
	case root.IsObject():
		return document{shape: rootObject, props: rawFromNode(root)}
	case root.IsArray() && len(root.Elems) == 1 && root.Elems[0].IsObject():
		return document{shape: rootFallback, props: rawFromNode(root.Elems[0])}
	}
	return document{shape: rootInvalid}
}

func documentFromValue(v any) document {
	switch root := v.(type) {
	case nil:
		return document{shape: rootEmpty}
	case map[string]any:
		return document{shape: rootObject, props: rawFromMap(root)}
	case []any:
		if len(root) == 1 {
			if m, ok := root[0].(map[string]any); ok {
				return document{shape: rootFallback, props: rawFromMap(m)}
			}
		}
	}
	return document{shape: rootInvalid}
}

// convertDocument validates the root shape and converts its compilerOptions.
// Keys that belong inside compilerOptions but sit at the top level are only
// reported when compilerOptions is missing altogether, and only the first.
func (c *converter) convertDocument(doc document, configFileName string) *Options {
	if doc.shape == rootFallback || doc.shape == rootInvalid {
		c.report(diag.RootValueMustBeObject, c.loc.rootSpan(), rootDisplayName(configFileName))
	}

	co, hasCO := findLast(doc.props, "compilerOptions")
	if !hasCO {
		for _, raw := range doc.props {
			if _, known := Lookup(raw.Key); known {
				c.report(diag.OptionShouldBeSetInsideCompilerOpts, c.loc.keySpan(raw), raw.Key)
				break
			}
		}
		return NewOptions()
	}
	return c.convertOptions(c.compilerOptionsMembers(co))
}

func (c *converter) compilerOptionsMembers(co RawOption) []RawOption {
	if co.Value == nil {
		return nil
	}
	if co.Node != nil && co.Node.IsObject() {
		return rawFromNode(co.Node)
	}
	if m, ok := co.Value.(map[string]any); ok {
		return rawFromMap(m)
	}
	c.report(diag.CompilerOptionRequiresType, c.loc.valueSpan(co), "compilerOptions", "object")
	return nil
}

// rootDisplayName is the file kind named by the root-shape message.
func rootDisplayName(configFileName string) string {
	if baseName(configFileName) == jsconfigName {
		return jsconfigName
	}
	return "tsconfig.json"
}

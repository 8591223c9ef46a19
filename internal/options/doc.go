// Package options validates and normalises compiler options read from
// tsconfig.json / jsconfig.json.
//
// Three entry points share one converter: ConvertCompilerOptionsFromJSON and
// ConvertConfigFromJSON take values decoded by encoding/json and report
// location-less diagnostics; ParseJSONSourceFileConfig takes the node tree of
// internal/parser and reports diagnostics with spans. For the same input all
// three produce the same option values.
//
// The option table (Lookup, Declarations) is built once at init and is
// read-only, so conversions may run concurrently.
package options

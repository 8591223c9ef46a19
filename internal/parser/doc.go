// Package parser turns config file text into an ast.File.
//
// The parser is tolerant: it accepts comments, trailing commas, single quoted
// strings and bare identifier keys, reports what is not strict JSON and keeps
// going. Stray text around the document becomes extra top-level values; the
// first object among them is the root.
package parser

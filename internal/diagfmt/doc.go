// Package diagfmt renders diagnostics: pretty text with source snippets,
// JSON, and msgpack with the same field names.
package diagfmt

// Package ast is the node tree produced by internal/parser for config files.
//
// Every node keeps its source.Span so the option engine can point diagnostics
// at the exact key or value. Node.Value lowers a subtree into the same generic
// shape encoding/json produces, which is how the engine guarantees identical
// option values for parsed text and already-decoded input.
package ast

// Package diag defines the diagnostic model shared by the config parser and
// the compiler-option engine.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Category – Message, Suggestion, Warning or Error (category.go).
//   - Code – numeric identifier compatible with the reference compiler's
//     numbering (see codes.go); ID() renders "TS6046", Key() the symbolic
//     message key.
//   - Message – the formatted template.
//   - Primary – source.Span pointing at the offending JSON text. Diagnostics
//     produced from an already-decoded value carry source.NoSpan.
//
// # Emitting diagnostics
//
// Producers depend on the Reporter interface only. diag.Report formats a code
// template and forwards it. BagReporter stores into a bounded Bag,
// SliceReporter into a plain slice, DedupReporter drops repeated positions
// before forwarding.
//
// Package diag does no IO and no colour handling; rendering lives in
// internal/diagfmt. FormatShortDiagnostics is the one exception, kept here so
// tests across packages can compare diagnostics as plain strings.
package diag

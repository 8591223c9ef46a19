package diag

import (
	"tscfg/internal/source"
)

// Diagnostic is a single finding. A Primary span without a file marks a
// location-less diagnostic (produced from an already-decoded value).
type Diagnostic struct {
	Category Category
	Code     Code
	Message  string
	Primary  source.Span
}

// New builds a diagnostic with the code's default category and the formatted message.
func New(code Code, primary source.Span, args ...string) Diagnostic {
	return Diagnostic{
		Category: code.Category(),
		Code:     code,
		Message:  code.Format(args...),
		Primary:  primary,
	}
}

// HasLocation reports whether the diagnostic points into a file.
func (d Diagnostic) HasLocation() bool {
	return d.Primary.HasFile()
}

// Start returns the byte offset of the diagnostic, zero when location-less.
func (d Diagnostic) Start() uint32 {
	if !d.HasLocation() {
		return 0
	}
	return d.Primary.Start
}

// Length returns the span length, zero when location-less.
func (d Diagnostic) Length() uint32 {
	if !d.HasLocation() {
		return 0
	}
	return d.Primary.Len()
}

package diag

import "tscfg/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Реализации: BagReporter (кладёт в Bag), SliceReporter, DedupReporter.
type Reporter interface {
	Report(code Code, cat Category, primary source.Span, msg string)
}

// Report formats the code template with args and sends it to r.
func Report(r Reporter, code Code, primary source.Span, args ...string) {
	if r == nil {
		return
	}
	r.Report(code, code.Category(), primary, code.Format(args...))
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, cat Category, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Category: cat, Code: code, Message: msg, Primary: primary})
}

// SliceReporter appends every diagnostic to Items, without a limit.
type SliceReporter struct {
	Items []Diagnostic
}

func (r *SliceReporter) Report(code Code, cat Category, primary source.Span, msg string) {
	r.Items = append(r.Items, Diagnostic{Category: cat, Code: code, Message: msg, Primary: primary})
}

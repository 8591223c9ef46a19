package diag

import "tscfg/internal/source"

// DedupReporter wraps another Reporter and suppresses a diagnostic whose
// start offset equals the previous one's. Error recovery in the parser tends
// to stack several complaints on the same token; only the first is useful.
type DedupReporter struct {
	next      Reporter
	lastFile  source.FileID
	lastStart uint32
	any       bool
}

// NewDedupReporter returns a Reporter that filters repeated positions while
// forwarding the rest to next.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next}
}

func (r *DedupReporter) Report(code Code, cat Category, primary source.Span, msg string) {
	if r == nil {
		return
	}
	if r.any && primary.File == r.lastFile && primary.Start == r.lastStart {
		return
	}
	r.any = true
	r.lastFile = primary.File
	r.lastStart = primary.Start
	if r.next != nil {
		r.next.Report(code, cat, primary, msg)
	}
}

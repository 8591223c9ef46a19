package diag

// Category defines the importance of a diagnostic. Higher values are more
// severe so that comparisons like `cat >= CatWarning` read naturally.
type Category uint8

const (
	// CatMessage is for informational diagnostics.
	CatMessage Category = iota
	// CatSuggestion is for optional improvements.
	CatSuggestion
	CatWarning
	CatError
)

func (c Category) String() string {
	switch c {
	case CatMessage:
		return "MESSAGE"
	case CatSuggestion:
		return "SUGGESTION"
	case CatWarning:
		return "WARNING"
	case CatError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lower-case form used by renderers ("error", "warning", ...).
func (c Category) Label() string {
	switch c {
	case CatError:
		return "error"
	case CatWarning:
		return "warning"
	case CatSuggestion:
		return "suggestion"
	default:
		return "message"
	}
}

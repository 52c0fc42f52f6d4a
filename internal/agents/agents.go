package agents

// Adapter names used as keys in the aggregated fan-out result.
const (
	NameSearch   = "search"
	NameHistory  = "history"
	NameDatabase = "database"
)

// Output is the uniform shape every search adapter returns. LLMOutput is the
// already-summarized natural-language form; RawOutput preserves structured
// data (product rows, API answers) for follow-up turns.
type Output struct {
	LLMOutput string
	RawOutput any
}

// Aggregated maps adapter name to its output. A nil entry means the adapter
// failed or was not applicable; a non-nil entry with empty fields means it ran
// and found nothing. Entries are never silently dropped, so callers can tell
// the two apart.
type Aggregated map[string]*Output

package converter

// CodeSpan records one code region pulled out of a message before any
// markdown pass runs.
type CodeSpan struct {
	Ordinal       int    // 1-based, matches the %s<n> token
	Content       string // raw content, restored verbatim
	LanguageClass string // "language-<id>" or "nohighlight"; empty for inline spans
	Inline        bool
}

// listFrame is one open list on the list reconstructor's stack.
type listFrame struct {
	indent  int
	ordered bool
}

func (f listFrame) tag() string {
	if f.ordered {
		return "ol"
	}
	return "ul"
}

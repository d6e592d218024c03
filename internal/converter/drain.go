package converter

import (
	"log"
	"regexp"
)

// drainLimit caps the number of replacements a single drain may perform.
// Reaching it means a pattern keeps matching its own output.
var drainLimit = 1 << 16

// drain repeatedly replaces the leftmost match of re in s with fn(groups),
// where groups[0] is the whole match and unmatched groups are "".
//
// The search resumes at the start of the replacement when the replacement is
// shorter than the match, so <b><b>x</b></b> under a lazy pattern is fully
// unwrapped, and after it otherwise. Either way the
// distance between the cursor and the end of s strictly shrinks on every
// iteration, so the loop terminates for any pattern.
//
// It returns the new string and the number of replacements made.
func drain(s string, re *regexp.Regexp, fn func(groups []string) string) (string, int) {
	cursor := 0
	n := 0
	for cursor <= len(s) && n < drainLimit {
		loc := re.FindStringSubmatchIndex(s[cursor:])
		if loc == nil {
			break
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[cursor+loc[2*i] : cursor+loc[2*i+1]]
			}
		}
		start, end := cursor+loc[0], cursor+loc[1]
		repl := fn(groups)
		s = s[:start] + repl + s[end:]
		n++

		switch {
		case end == start:
			cursor = start + len(repl) + 1
		case len(repl) < end-start:
			cursor = start
		default:
			cursor = start + len(repl)
		}
	}
	return s, n
}

// drainLogged runs drain and reports through logger when re hit drainLimit.
// Matches past the limit stay in the text unprocessed.
func drainLogged(logger *log.Logger, s string, re *regexp.Regexp, fn func(groups []string) string) string {
	s, n := drain(s, re, fn)
	if n >= drainLimit && logger != nil {
		logger.Printf("pattern %s stopped after %d replacements, rest left as text", re, drainLimit)
	}
	return s
}

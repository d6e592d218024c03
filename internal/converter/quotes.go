package converter

import (
	"regexp"
	"strings"

	"github.com/riverfjs/chatlog-go/internal/buffer"
)

var (
	quoteLineRe  = regexp.MustCompile(`^[ \t]*&gt;[ \t]?(.*)`)
	quoteBlockRe = regexp.MustCompile(`^[ \t]*&gt;&gt;&gt;[ \t]?(.*)`)
)

// GroupQuotes merges runs of "> " lines into one quote container each. A
// ">>> " line starts a quote that takes every remaining line verbatim; the
// dialect has no way to close it.
func GroupQuotes(content string) string {
	out := buffer.New()
	quote := buffer.New()
	inQuote := false
	absorbing := false

	flush := func() {
		out.WriteLine(`<div class="quote">` + quote.Join(lineBreak) + `</div>`)
		quote.Reset()
	}

	for _, line := range strings.Split(content, "\n") {
		if absorbing {
			quote.WriteLine(line)
			continue
		}
		if m := quoteBlockRe.FindStringSubmatch(line); m != nil {
			if inQuote {
				flush()
				inQuote = false
			}
			absorbing = true
			quote.WriteLine(m[1])
			continue
		}
		if m := quoteLineRe.FindStringSubmatch(line); m != nil {
			inQuote = true
			quote.WriteLine(m[1])
			continue
		}
		if inQuote {
			flush()
			inQuote = false
		}
		out.WriteLine(line)
	}
	if inQuote || absorbing {
		flush()
	}
	return out.String()
}

package chatlog

import "github.com/riverfjs/chatlog-go/internal/converter"

// ToMarkdown converts rendered HTML back to platform markdown, for example
// to build a plain-text export or to edit an archived message. The result is
// not re-escaped.
func ToMarkdown(html string) string {
	return converter.ToMarkdown(html, Logger)
}

package converter

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// preserveBlockRe 匹配已渲染内容外层的 preserve 容器
var preserveBlockRe = regexp.MustCompile(`<div class="chatlog__markdown-preserve">(.*)</div>`)

// EscapeString escapes raw message text into the form the transformer
// expects: &, <, >, ", ' and % become entities, backticks stay literal.
func EscapeString(raw string) string {
	return escapePercent(html.EscapeString(raw))
}

const percentEntity = "&#37;"

// escapePercent 转义 %，缓冲区中的 % 只能来自占位符
func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", percentEntity)
}

// StripPreserve unwraps content previously wrapped in a preserve container.
func (t *Transformer) StripPreserve() {
	t.content = drainLogged(t.logger, t.content, preserveBlockRe, func(g []string) string {
		return g[1]
	})
}

// RestorePlaceholders reinserts caller-supplied HTML for marker strings.
// Markers are looked up in their escaped form, as they appear in the buffer.
func (t *Transformer) RestorePlaceholders() {
	for marker, replacement := range t.placeholders {
		if marker == "" {
			continue
		}
		t.content = strings.ReplaceAll(t.content, EscapeString(marker), replacement)
	}
}

// CollapseBreaks turns line breaks into spaces for single-line previews.
func (t *Transformer) CollapseBreaks() {
	t.content = strings.ReplaceAll(t.content, lineBreak, " ")
	t.content = strings.ReplaceAll(t.content, "\n", " ")
}

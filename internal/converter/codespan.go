package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/riverfjs/chatlog-go/internal/util"
)

const lineBreak = "<br>"

var (
	fencedCodeRe = regexp.MustCompile("```(.*?)```")
	doubleCodeRe = regexp.MustCompile("``(.*?)``")
	singleCodeRe = regexp.MustCompile("`(.*?)`")

	edgeBreaksRe = regexp.MustCompile(`^(?:<br>)+|(?:<br>)+$`)
)

// ExtractCode pulls every code span out of the buffer and leaves a wrapped
// token in its place. Fenced blocks are drained first, then double and
// single backtick spans, so a fence is never read as three inline spans.
//
// With reference set, fenced blocks are wrapped as inline spans.
func (t *Transformer) ExtractCode(reference bool) {
	content := strings.ReplaceAll(t.content, "\n", lineBreak)

	content = drainLogged(t.logger, content, fencedCodeRe, func(g []string) string {
		text, class := splitLanguage(g[1])
		text = edgeBreaksRe.ReplaceAllString(text, "")
		text = strings.ReplaceAll(text, "  ", "&nbsp;&nbsp;")
		token := t.addSpan(text, class, false)
		if reference {
			return fmt.Sprintf(`<span class="pre pre-inline">%s</span>`, token)
		}
		return fmt.Sprintf(`<div class="pre pre--multiline %s">%s</div>`, class, token)
	})

	content = drainLogged(t.logger, content, doubleCodeRe, func(g []string) string {
		return fmt.Sprintf(`<code class="inline">%s</code>`, t.addSpan(g[1], "", true))
	})

	content = drainLogged(t.logger, content, singleCodeRe, func(g []string) string {
		return fmt.Sprintf(`<span class="pre pre-inline">%s</span>`, t.addSpan(g[1], "", true))
	})

	t.content = strings.ReplaceAll(content, lineBreak, "\n")
}

func (t *Transformer) addSpan(content, class string, inline bool) string {
	token := t.registry.RegisterCode(content)
	t.spans = append(t.spans, CodeSpan{
		Ordinal:       t.registry.CodeCount(),
		Content:       content,
		LanguageClass: class,
		Inline:        inline,
	})
	return token
}

// splitLanguage strips a leading language identifier from fenced content.
// The identifier must be followed by a line break; a single-line fence is
// always treated as code.
func splitLanguage(content string) (string, string) {
	first, rest, ok := strings.Cut(content, lineBreak)
	if !ok {
		return content, util.NoHighlight
	}
	lang := util.MatchLanguage(first)
	if lang == "" {
		return content, util.NoHighlight
	}
	return rest, util.LanguageClass(lang)
}

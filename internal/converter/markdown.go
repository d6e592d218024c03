package converter

import (
	"fmt"
	"regexp"
)

// rule is one regex substitution of the inline/block pass. The template
// uses ${1} for the captured text.
type rule struct {
	pattern  *regexp.Regexp
	template string
}

const spoilerTemplate = `<span class="spoiler spoiler--hidden" onclick="showSpoiler(event, this)"> <span class="spoiler-text">${1}</span></span>`

var (
	boldItalicRe  = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	underlineRe   = regexp.MustCompile(`__(.+?)__`)
	italicStarRe  = regexp.MustCompile(`\*(.+?)\*`)
	italicUnderRe = regexp.MustCompile(`_(.+?)_`)
	strikeRe      = regexp.MustCompile(`~~(.+?)~~`)
	subtextRe     = regexp.MustCompile(`(?m)^[ \t]*-#[ \t]+(.*?)$`)
	heading3Re    = regexp.MustCompile(`(?m)^[ \t]*###[ \t](.*?)$`)
	heading2Re    = regexp.MustCompile(`(?m)^[ \t]*##[ \t](.*?)$`)
	heading1Re    = regexp.MustCompile(`(?m)^[ \t]*#[ \t](.*?)$`)
	spoilerRe     = regexp.MustCompile(`\|\|(.+?)\|\|`)
)

func (t *Transformer) rules(inlineOnly bool) []rule {
	styles := t.config.Styles
	inline := []rule{
		{boldItalicRe, "<strong><em><span>${1}</span></em></strong>"},
		{boldRe, "<strong>${1}</strong>"},
		{underlineRe, `<span class="markdown-underline">${1}</span>`},
		{italicStarRe, "<em><span>${1}</span></em>"},
		{italicUnderRe, "<em><span>${1}</span></em>"},
		{strikeRe, `<span class="markdown-strikethrough">${1}</span>`},
	}
	var block []rule
	if inlineOnly {
		block = []rule{
			{subtextRe, "${1}"},
			{heading3Re, "${1}"},
			{heading2Re, "${1}"},
			{heading1Re, "${1}"},
		}
	} else {
		block = []rule{
			{subtextRe, fmt.Sprintf(`<span style="%s">${1}</span>`, styles.Subtext)},
			{heading3Re, fmt.Sprintf(`<h3 style="%s">${1}</h3>`, styles.Heading3)},
			{heading2Re, fmt.Sprintf(`<h2 style="%s">${1}</h2>`, styles.Heading2)},
			{heading1Re, fmt.Sprintf(`<h1 style="%s">${1}</h1>`, styles.Heading1)},
		}
	}
	rules := append(inline, block...)
	return append(rules, rule{spoilerRe, spoilerTemplate})
}

// Markdown applies the list, emphasis, heading, spoiler and quote passes.
// With inlineOnly, list and quote structure is not generated and heading
// markers are dropped, leaving only inline styling. Custom emoji references
// pass through untouched.
func (t *Transformer) Markdown(inlineOnly bool) {
	content := t.protectEmoji(t.content)
	if !inlineOnly {
		content = t.ListsToHTML(content)
	}
	for _, r := range t.rules(inlineOnly) {
		content = r.pattern.ReplaceAllString(content, r.template)
	}
	if !inlineOnly {
		content = GroupQuotes(content)
	}
	t.content = t.registry.RestoreEmoji(content)
}

package converter

import (
	"log"
	"regexp"
	"strings"
)

// reverseRule maps one rendered HTML construct back to markdown. fn
// receives the regex groups.
type reverseRule struct {
	pattern *regexp.Regexp
	fn      func(g []string) string
}

func wrapWith(prefix, suffix string) func(g []string) string {
	return func(g []string) string {
		return prefix + g[1] + suffix
	}
}

var reverseRules = []reverseRule{
	{regexp.MustCompile(`<strong>(.*?)</strong>`), wrapWith("**", "**")},
	{regexp.MustCompile(`<em><span>(.*?)</span></em>`), wrapWith("*", "*")},
	{regexp.MustCompile(`<em>([^<>]+)</em>`), wrapWith("*", "*")},
	{regexp.MustCompile(`<h1[^>]*>([^<>]+)</h1>`), wrapWith("# ", "")},
	{regexp.MustCompile(`<h2[^>]*>([^<>]+)</h2>`), wrapWith("## ", "")},
	{regexp.MustCompile(`<h3[^>]*>([^<>]+)</h3>`), wrapWith("### ", "")},
	{regexp.MustCompile(`<span class="markdown-underline">([^<>]*)</span>`), wrapWith("__", "__")},
	{regexp.MustCompile(`<span style="text-decoration: underline">([^<>]+)</span>`), wrapWith("__", "__")},
	{regexp.MustCompile(`<span class="markdown-strikethrough">([^<>]*)</span>`), wrapWith("~~", "~~")},
	{regexp.MustCompile(`<span style="text-decoration: line-through">([^<>]+)</span>`), wrapWith("~~", "~~")},
	{regexp.MustCompile(`<span style="color: #949BA4;[^"]*">([^<>]*)</span>`), wrapWith("-# ", "")},
	{regexp.MustCompile(`(?s)<div class="quote">(.*?)</div>`), func(g []string) string {
		return "> " + strings.ReplaceAll(g[1], lineBreak, "\n> ")
	}},
	{regexp.MustCompile(`<span class="spoiler spoiler--hidden" onclick="showSpoiler\(event, this\)"> <span class="spoiler-text">(.*?)</span></span>`), wrapWith("||", "||")},
	{regexp.MustCompile(`<span class="unix-timestamp" data-timestamp=".*?" raw-content="(.*?)">.*?</span>`), wrapWith("", "")},
	{regexp.MustCompile(`<div class="pre pre--multiline[^"]*">(.*?)</div>`), wrapWith("```\n", "\n```")},
	{regexp.MustCompile(`<code class="inline">(.*?)</code>`), wrapWith("``", "``")},
	{regexp.MustCompile(`<span class="pre pre-inline">(.*?)</span>`), wrapWith("`", "`")},
	{regexp.MustCompile(`<img class="emoji[^"]*" src="[^"]*" alt="([^"]*)">`), wrapWith("", "")},
}

var anchorRe = regexp.MustCompile(`<a href="(.*?)".*?>(.*?)</a>`)

// ToMarkdown converts a rendered HTML fragment back to platform markdown.
// Each rule is drained before the next one runs; anchors come last so link
// text has already been converted. The text is not re-escaped, except that
// "&#37;" goes back to "%". logger may be nil.
func ToMarkdown(content string, logger *log.Logger) string {
	content = ListsToMarkdown(content)
	for _, r := range reverseRules {
		content = drainLogged(logger, content, r.pattern, r.fn)
	}
	content = drainLogged(logger, content, anchorRe, func(g []string) string {
		url, text := g[1], g[2]
		if url == text {
			return url
		}
		return "[" + text + "](" + url + ")"
	})
	content = strings.ReplaceAll(content, lineBreak, "\n")
	content = strings.ReplaceAll(content, percentEntity, "%")
	return strings.TrimSpace(content)
}

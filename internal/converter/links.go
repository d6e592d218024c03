package converter

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	maskedLinkRe = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)

	// autoLinkRe matches an angle-bracket wrapped URL (group 1) or a bare URL
	// (group 2). Neither form crosses a "%", which in the buffer only starts
	// a placeholder token, or a backtick, which may still delimit a code span.
	// The bare form is cut back at the first escaped bracket or quote by
	// trimAtEntity.
	autoLinkRe = regexp.MustCompile(`(&lt;https?://[^%`+"`"+`]*?&gt;)|(https?://[^\s<%`+"`"+`]+)`)

	// trailing 中的字符如果出现在 URL 末尾，视为句子标点
	trailingPunctuation = ".,:)]}"
	apostropheEntities  = []string{"&#39;", "&#x27;"}
	stopEntities        = []string{"&lt;", "&gt;", "&quot;", "&#34;"}
)

func (t *Transformer) anchorOpen(url string) string {
	return fmt.Sprintf(`<a href="%s" style="color: %s;">`, url, t.config.LinkColor)
}

func (t *Transformer) anchor(url, text string) string {
	return t.anchorOpen(url) + text + "</a>"
}

// MaskLinks replaces [text](url) with link tokens around the text. The text
// stays in the buffer so later passes can still style it.
func (t *Transformer) MaskLinks() {
	t.content = drainLogged(t.logger, t.content, maskedLinkRe, func(g []string) string {
		url := unwrapAngles(g[2])
		start, end := t.registry.RegisterLinkPair(t.anchorOpen(url), "</a>")
		return start + g[1] + end
	})
}

func unwrapAngles(url string) string {
	if strings.HasPrefix(url, "<") && strings.HasSuffix(url, ">") && len(url) >= 2 {
		return url[1 : len(url)-1]
	}
	if strings.HasPrefix(url, "&lt;") && strings.HasSuffix(url, "&gt;") && len(url) >= 8 {
		return url[4 : len(url)-4]
	}
	return url
}

// AutoLinks turns wrapped and bare http(s) URLs into full link tokens.
// URLs that directly follow a masked-link opening "](" are left alone, as are
// URLs inside the text of an already masked link.
func (t *Transformer) AutoLinks() {
	src := t.content
	masked := maskedTextSpans(src)
	var out strings.Builder
	pos := 0
	for pos < len(src) {
		loc := autoLinkRe.FindStringSubmatchIndex(src[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if strings.HasSuffix(src[:start], "](") {
			out.WriteString(src[pos:end])
			pos = end
			continue
		}
		if stop, ok := within(masked, start); ok {
			out.WriteString(src[pos:stop])
			pos = stop
			continue
		}
		out.WriteString(src[pos:start])

		if loc[2] >= 0 {
			url := src[start+len("&lt;") : end-len("&gt;")]
			out.WriteString(t.registry.RegisterLink(t.anchor(url, url)))
			pos = end
			continue
		}

		raw := trimAtEntity(src[start:end])
		url, suffix := splitTrailing(raw)
		if strings.HasSuffix(url, "://") {
			// Nothing after the scheme; leave it as text.
			out.WriteString(raw)
			pos = start + len(raw)
			continue
		}
		out.WriteString(t.registry.RegisterLink(t.anchor(url, url)))
		out.WriteString(suffix)
		pos = start + len(raw)
	}
	out.WriteString(src[pos:])
	t.content = out.String()
}

// maskedTextSpans returns the byte ranges between each START token and its
// matching END token.
func maskedTextSpans(src string) [][2]int {
	var spans [][2]int
	open := make(map[string]int)
	for _, m := range linkTokenRe.FindAllStringSubmatchIndex(src, -1) {
		kind, id := src[m[2]:m[3]], src[m[4]:m[5]]
		switch kind {
		case "START":
			open[id] = m[1]
		case "END":
			if from, ok := open[id]; ok {
				spans = append(spans, [2]int{from, m[0]})
				delete(open, id)
			}
		}
	}
	return spans
}

// within reports the end of the span containing i.
func within(spans [][2]int, i int) (int, bool) {
	for _, sp := range spans {
		if i >= sp[0] && i < sp[1] {
			return sp[1], true
		}
	}
	return 0, false
}

// trimAtEntity cuts a bare URL before the first escaped angle bracket or
// quote, which can only come from the surrounding text.
func trimAtEntity(url string) string {
	cut := len(url)
	for _, ent := range stopEntities {
		if i := strings.Index(url, ent); i >= 0 && i < cut {
			cut = i
		}
	}
	return url[:cut]
}

// splitTrailing moves sentence punctuation off the end of a URL. A closing
// parenthesis stays when the URL still has an unmatched opening one.
func splitTrailing(url string) (string, string) {
	suffix := ""
	for url != "" {
		last := url[len(url)-1]
		if strings.IndexByte(trailingPunctuation, last) >= 0 {
			if last == ')' && strings.Count(url, "(") >= strings.Count(url, ")") {
				break
			}
			suffix = string(last) + suffix
			url = url[:len(url)-1]
			continue
		}
		if ent, ok := hasAnySuffix(url, apostropheEntities); ok {
			suffix = ent + suffix
			url = url[:len(url)-len(ent)]
			continue
		}
		break
	}
	return url, suffix
}

func hasAnySuffix(s string, suffixes []string) (string, bool) {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return suf, true
		}
	}
	return "", false
}

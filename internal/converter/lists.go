package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/riverfjs/chatlog-go/internal/buffer"
)

var (
	listItemRe = regexp.MustCompile(`^([ \t]*)([-*]|\d+\.)[ \t]+(.+)$`)

	listOpenRe  = regexp.MustCompile(`^<(?:ul|ol)\b[^>]*>$`)
	listCloseRe = regexp.MustCompile(`^</(?:ul|ol)>$`)
	listEntryRe = regexp.MustCompile(`^<li\b[^>]*>(.+?)</li>$`)

	bulletStyles = []string{"disc", "circle", "square"}
)

// ListsToHTML rebuilds nested <ul>/<ol> markup from indented bullet and
// ordinal lines. Any non-list line closes every open list.
func (t *Transformer) ListsToHTML(content string) string {
	out := buffer.New()
	var stack []listFrame

	closeTop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.WriteLine("</" + top.tag() + ">")
	}
	open := func(indent int, ordered bool, bullet string) {
		frame := listFrame{indent: indent, ordered: ordered}
		out.WriteLine(t.listOpenTag(stack, frame, bullet))
		stack = append(stack, frame)
	}

	for _, line := range strings.Split(content, "\n") {
		m := listItemRe.FindStringSubmatch(line)
		if m == nil {
			for len(stack) > 0 {
				closeTop()
			}
			out.WriteLine(line)
			continue
		}

		indent := len(m[1])
		bullet := m[2]
		ordered := strings.HasSuffix(bullet, ".")

		switch {
		case len(stack) == 0:
			open(indent, ordered, bullet)
		case indent > stack[len(stack)-1].indent:
			open(indent, ordered, bullet)
		default:
			for len(stack) > 0 && stack[len(stack)-1].indent > indent {
				closeTop()
			}
			if len(stack) == 0 {
				open(indent, ordered, bullet)
			} else if stack[len(stack)-1].ordered != ordered {
				closeTop()
				open(indent, ordered, bullet)
			}
		}

		out.WriteLine(fmt.Sprintf(`<li class="markup">%s</li>`, strings.TrimSpace(m[3])))
	}
	for len(stack) > 0 {
		closeTop()
	}
	return out.String()
}

// listOpenTag renders the opening tag of a list pushed on top of stack.
func (t *Transformer) listOpenTag(stack []listFrame, frame listFrame, bullet string) string {
	var style string
	if frame.ordered {
		style = "list-style-type: decimal;"
	} else {
		depth := 0
		for _, f := range stack {
			if !f.ordered {
				depth++
			}
		}
		style = fmt.Sprintf("list-style-type: %s;", bulletStyles[depth%len(bulletStyles)])
	}
	if len(stack) == 0 && t.config.Styles.List != "" {
		style += " " + t.config.Styles.List
	}

	start := ""
	if frame.ordered {
		if n, err := strconv.Atoi(strings.TrimSuffix(bullet, ".")); err == nil && n != 1 {
			start = fmt.Sprintf(` start="%d"`, n)
		}
	}
	return fmt.Sprintf(`<%s class="markup" style="%s"%s>`, frame.tag(), style, start)
}

// ListsToMarkdown turns list markup back into dash lines indented two spaces
// per nesting level. Ordinals are not reconstructed; ordered items come back
// as dashes too. Lines may be separated by newlines or <br>.
func ListsToMarkdown(content string) string {
	lines := strings.Split(strings.ReplaceAll(content, lineBreak, "\n"), "\n")
	out := buffer.New()
	level := -1
	changed := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case listOpenRe.MatchString(trimmed):
			level++
			changed = true
		case listCloseRe.MatchString(trimmed):
			if level >= 0 {
				level--
			}
			changed = true
		default:
			if m := listEntryRe.FindStringSubmatch(trimmed); m != nil && level >= 0 {
				out.WriteLine(strings.Repeat("  ", level) + "- " + m[1])
				changed = true
				continue
			}
			out.WriteLine(line)
		}
	}
	if !changed {
		return content
	}
	return out.String()
}

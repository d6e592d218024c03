package converter

import (
	"fmt"
	"regexp"
	"strconv"
)

// Kind identifies what a placeholder token protects.
type Kind int

const (
	// KindFullLink is a complete anchor element.
	KindFullLink Kind = iota
	// KindLinkStart is the opening tag of a masked link.
	KindLinkStart
	// KindLinkEnd is the closing tag of a masked link.
	KindLinkEnd
	// KindCodeSpan is the raw content of an extracted code span.
	KindCodeSpan
	// KindEmoji is a custom emoji reference hidden from the markdown pass.
	KindEmoji
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindFullLink:
		return "full-link"
	case KindLinkStart:
		return "link-start"
	case KindLinkEnd:
		return "link-end"
	case KindCodeSpan:
		return "code-span"
	case KindEmoji:
		return "emoji"
	default:
		return "unknown"
	}
}

// Token is a placeholder issued by a Registry.
type Token struct {
	ID      int
	Kind    Kind
	Payload string
	Text    string
}

var (
	linkTokenRe  = regexp.MustCompile(`%LINK-(FULL|START|END)-(\d+)%`)
	codeTokenRe  = regexp.MustCompile(`%s(\d+)`)
	emojiTokenRe = regexp.MustCompile(`%EMOJI-(\d+)%`)
)

// Registry issues placeholder tokens for one transformer invocation and
// restores them. Link, code and emoji tokens are numbered independently,
// each starting at 1.
type Registry struct {
	tokens map[string]*Token
	order  []*Token
	links  int
	codes  []string
	emoji  int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]*Token),
	}
}

func (r *Registry) add(tok *Token) string {
	r.tokens[tok.Text] = tok
	r.order = append(r.order, tok)
	return tok.Text
}

// RegisterLink protects a finished anchor element.
func (r *Registry) RegisterLink(tag string) string {
	r.links++
	return r.add(&Token{
		ID:      r.links,
		Kind:    KindFullLink,
		Payload: tag,
		Text:    fmt.Sprintf("%%LINK-FULL-%d%%", r.links),
	})
}

// RegisterLinkPair protects the opening and closing tags of a masked link,
// leaving the link text between them exposed to later passes.
func (r *Registry) RegisterLinkPair(startTag, endTag string) (string, string) {
	r.links++
	start := r.add(&Token{
		ID:      r.links,
		Kind:    KindLinkStart,
		Payload: startTag,
		Text:    fmt.Sprintf("%%LINK-START-%d%%", r.links),
	})
	end := r.add(&Token{
		ID:      r.links,
		Kind:    KindLinkEnd,
		Payload: endTag,
		Text:    fmt.Sprintf("%%LINK-END-%d%%", r.links),
	})
	return start, end
}

// RegisterCode stores the raw content of a code span and returns its token.
func (r *Registry) RegisterCode(content string) string {
	r.codes = append(r.codes, content)
	n := len(r.codes)
	return r.add(&Token{
		ID:      n,
		Kind:    KindCodeSpan,
		Payload: content,
		Text:    "%s" + strconv.Itoa(n),
	})
}

// RegisterEmoji hides a custom emoji reference until RestoreEmoji.
func (r *Registry) RegisterEmoji(ref string) string {
	r.emoji++
	return r.add(&Token{
		ID:      r.emoji,
		Kind:    KindEmoji,
		Payload: ref,
		Text:    fmt.Sprintf("%%EMOJI-%d%%", r.emoji),
	})
}

// CodeCount returns how many code spans were registered.
func (r *Registry) CodeCount() int {
	return len(r.codes)
}

// Tokens returns every token in registration order.
func (r *Registry) Tokens() []Token {
	out := make([]Token, len(r.order))
	for i, tok := range r.order {
		out[i] = *tok
	}
	return out
}

// RestoreLinks replaces every link token in text with its tag. Tokens not
// issued by this registry are left untouched.
func (r *Registry) RestoreLinks(text string) string {
	return r.restore(text, linkTokenRe)
}

// RestoreCode replaces every code token in text with its raw content.
// Restored content is never scanned again, so code that happens to contain
// token-like text stays verbatim.
func (r *Registry) RestoreCode(text string) string {
	return r.restore(text, codeTokenRe)
}

// RestoreEmoji puts custom emoji references back in place of emoji tokens.
func (r *Registry) RestoreEmoji(text string) string {
	return r.restore(text, emojiTokenRe)
}

func (r *Registry) restore(text string, re *regexp.Regexp) string {
	if len(r.tokens) == 0 {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(m string) string {
		if tok, ok := r.tokens[m]; ok {
			return tok.Payload
		}
		return m
	})
}

// Unresolved returns the registry tokens still present in text.
func (r *Registry) Unresolved(text string) []string {
	var left []string
	for _, re := range []*regexp.Regexp{linkTokenRe, codeTokenRe, emojiTokenRe} {
		for _, m := range re.FindAllString(text, -1) {
			if _, ok := r.tokens[m]; ok {
				left = append(left, m)
			}
		}
	}
	return left
}

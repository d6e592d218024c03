package converter

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/riverfjs/chatlog-go/internal/types"
)

// Options configures a Transformer.
type Options struct {
	Config   *types.RenderConfig
	Resolver types.EmojiResolver // nil skips Unicode emoji resolution
	Images   types.ImageSource   // nil keeps CDN URLs for custom emoji
	// Placeholders maps caller-owned marker strings (raw, unescaped) to HTML
	// reinserted verbatim at the end of the message flow.
	Placeholders map[string]string
	Logger       *log.Logger
}

// Transformer holds the text buffer and the protected regions of one
// message while it moves through a flow. It is not safe for concurrent use;
// create one per message.
type Transformer struct {
	content      string
	config       *types.RenderConfig
	registry     *Registry
	spans        []CodeSpan
	resolver     types.EmojiResolver
	images       types.ImageSource
	placeholders map[string]string
	logger       *log.Logger
}

// New creates a Transformer over already-escaped content. Any "%" left in
// content is escaped so input text can never spell a placeholder token.
func New(content string, opts Options) *Transformer {
	config := opts.Config
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	if config.Styles == nil {
		config = config.Clone()
		config.Styles = types.DefaultStyles()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Transformer{
		content:      escapePercent(content),
		config:       config,
		registry:     NewRegistry(),
		resolver:     opts.Resolver,
		images:       opts.Images,
		placeholders: opts.Placeholders,
		logger:       logger,
	}
}

// Content returns the current text buffer.
func (t *Transformer) Content() string {
	return t.content
}

// Registry returns the placeholder registry of this invocation.
func (t *Transformer) Registry() *Registry {
	return t.registry
}

// CodeSpans returns the code spans extracted so far.
func (t *Transformer) CodeSpans() []CodeSpan {
	return t.spans
}

// Unresolved returns placeholder tokens of this invocation still present in
// the buffer.
func (t *Transformer) Unresolved() []string {
	return t.registry.Unresolved(t.content)
}

// MessageFlow renders a full chat message.
func (t *Transformer) MessageFlow(ctx context.Context) (string, error) {
	t.ExtractCode(false)
	t.MaskLinks()
	t.AutoLinks()
	t.Timestamps()
	t.Markdown(false)
	if err := t.Emoji(ctx); err != nil {
		return "", err
	}
	t.RestoreCode()
	t.RestorePlaceholders()
	t.RestoreLinks()
	return t.finish(), nil
}

// EmbedFlow renders an embed description or field value.
func (t *Transformer) EmbedFlow(ctx context.Context) (string, error) {
	t.ExtractCode(false)
	t.AutoLinks()
	t.MaskLinks()
	t.Timestamps()
	t.Markdown(false)
	if err := t.Emoji(ctx); err != nil {
		return "", err
	}
	t.RestoreCode()
	t.RestoreLinks()
	return t.finish(), nil
}

// SpecialEmbedFlow renders embed text whose links must be resolved before
// code extraction, so URLs inside backticks still become anchors.
func (t *Transformer) SpecialEmbedFlow(ctx context.Context) (string, error) {
	t.AutoLinks()
	t.ExtractCode(false)
	t.Timestamps()
	t.Markdown(false)
	if err := t.Emoji(ctx); err != nil {
		return "", err
	}
	t.RestoreCode()
	t.RestoreLinks()
	return t.finish(), nil
}

// ReferenceFlow renders the one-line preview of a replied-to message. Only
// inline styling survives; links and emoji are left as text.
func (t *Transformer) ReferenceFlow(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	t.StripPreserve()
	t.ExtractCode(true)
	t.Timestamps()
	t.Markdown(true)
	t.RestoreCode()
	t.CollapseBreaks()
	return t.finish(), nil
}

// EmojiFlow only resolves emoji.
func (t *Transformer) EmojiFlow(ctx context.Context) (string, error) {
	if err := t.Emoji(ctx); err != nil {
		return "", err
	}
	return t.finish(), nil
}

// LinkEmbedFlow renders the title line of a link embed.
func (t *Transformer) LinkEmbedFlow(ctx context.Context) (string, error) {
	t.MaskLinks()
	if err := t.Emoji(ctx); err != nil {
		return "", err
	}
	t.RestoreLinks()
	return t.finish(), nil
}

func (t *Transformer) finish() string {
	if left := t.Unresolved(); len(left) > 0 {
		t.logger.Printf("unresolved placeholders after flow: %s", strings.Join(left, ", "))
	}
	return t.content
}

// RestoreLinks puts link markup back in place of link tokens.
func (t *Transformer) RestoreLinks() {
	t.content = t.registry.RestoreLinks(t.content)
}

// RestoreCode puts raw code content back in place of code tokens.
func (t *Transformer) RestoreCode() {
	t.content = t.registry.RestoreCode(t.content)
}

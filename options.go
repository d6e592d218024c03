package chatlog

import (
	"net/http"

	"github.com/riverfjs/chatlog-go/internal/assets"
	"github.com/riverfjs/chatlog-go/internal/types"
)

// ImageSource turns a remote image URL into an embeddable value.
type ImageSource = types.ImageSource

// ConvertOptions holds options for rendering.
type ConvertOptions struct {
	Config        *RenderConfig
	EmojiResolver EmojiResolver // nil means a TwemojiResolver using Config.TwemojiBase
	Images        ImageSource
	Placeholders  map[string]string
	Concurrency   int // RenderTranscript only; <= 0 means unbounded
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithEmojiResolver replaces the Unicode emoji resolver. Use
// PassthroughResolver to leave Unicode emoji as text.
func WithEmojiResolver(resolver EmojiResolver) Option {
	return func(opts *ConvertOptions) {
		opts.EmojiResolver = resolver
	}
}

// WithImageSource sets how custom emoji images are embedded.
func WithImageSource(src ImageSource) Option {
	return func(opts *ConvertOptions) {
		opts.Images = src
	}
}

// WithInlineImages downloads custom emoji images with client and embeds them
// as data: URIs, so the transcript renders offline. A nil client uses a
// default one with a timeout.
func WithInlineImages(client *http.Client) Option {
	return WithImageSource(assets.NewFetcher(client))
}

// WithPlaceholders sets marker strings (as they appear in the raw message)
// to be replaced with literal HTML at the end of the message flow, e.g. GIF
// links swapped for <img> tags by the caller. Markers must not contain
// markdown syntax such as paired underscores.
func WithPlaceholders(placeholders map[string]string) Option {
	return func(opts *ConvertOptions) {
		opts.Placeholders = placeholders
	}
}

// WithConcurrency bounds how many messages RenderTranscript renders at once.
func WithConcurrency(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Concurrency = n
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	if options.EmojiResolver == nil {
		options.EmojiResolver = NewTwemojiResolver(options.Config.TwemojiBase)
	}
	return options
}

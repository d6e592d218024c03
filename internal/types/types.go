package types

import (
	"context"
	"time"
)

// EmojiResolver turns Unicode emoji in already-escaped text into markup.
// Implementations may block (remote lookups) and should honour ctx.
type EmojiResolver interface {
	Resolve(ctx context.Context, text string) (string, error)
}

// ImageSource turns a remote image URL into something embeddable, usually a
// data: URI.
type ImageSource interface {
	DataURI(ctx context.Context, url string) (string, error)
}

// Styles holds the inline style attributes used for block markup.
type Styles struct {
	Heading1 string `yaml:"heading1"`
	Heading2 string `yaml:"heading2"`
	Heading3 string `yaml:"heading3"`
	Subtext  string `yaml:"subtext"`
	List     string `yaml:"list"` // extra declarations for top-level lists
}

// DefaultStyles returns the default block styles.
func DefaultStyles() *Styles {
	return &Styles{
		Heading1: "font-weight: 700; font-size: 1.5rem; margin: 0.25em 0; line-height: 1.25;",
		Heading2: "font-weight: 700; font-size: 1.25rem; margin: 0.25em 0; line-height: 1.25;",
		Heading3: "font-weight: 700; font-size: 1rem; margin: 0.25em 0; line-height: 1.25;",
		Subtext:  "color: #949BA4; font-size: 0.75rem; line-height: 1.375rem;",
		List:     "padding-left: 20px; margin: 0 !important;",
	}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	LinkColor   string  `yaml:"link_color"`
	EmojiCDN    string  `yaml:"emoji_cdn"`    // custom emoji images, <id>.png|gif is appended
	TwemojiBase string  `yaml:"twemoji_base"` // Unicode emoji images, <codepoints>.svg is appended
	Timezone    string  `yaml:"timezone"`     // IANA name used for timestamp markup
	Styles      *Styles `yaml:"styles"`

	// Now is the clock used for relative timestamps. nil means time.Now.
	Now func() time.Time `yaml:"-"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		LinkColor:   "#00a8fc",
		EmojiCDN:    "https://cdn.discordapp.com/emojis",
		TwemojiBase: "https://cdn.jsdelivr.net/gh/jdecked/twemoji@latest/assets/svg",
		Timezone:    "UTC",
		Styles:      DefaultStyles(),
	}
}

// Clone returns a deep copy of the config.
func (c *RenderConfig) Clone() *RenderConfig {
	out := *c
	if c.Styles != nil {
		styles := *c.Styles
		out.Styles = &styles
	}
	return &out
}

// Location returns the configured time zone, falling back to UTC when the
// name is empty or unknown.
func (c *RenderConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock returns the current time according to the config.
func (c *RenderConfig) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

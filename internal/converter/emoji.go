package converter

import (
	"context"
	"fmt"
	"regexp"
)

// customEmojiRules map the four custom emoji reference forms to images.
// Escaped forms come from message text; raw forms from markup produced by
// other collaborators.
var customEmojiRules = []struct {
	pattern  *regexp.Regexp
	animated bool
}{
	{regexp.MustCompile(`&lt;:([\w~-]*):(\d+)&gt;`), false},
	{regexp.MustCompile(`&lt;a:([\w~-]*):(\d+)&gt;`), true},
	{regexp.MustCompile(`<:([\w~-]*):(\d+)>`), false},
	{regexp.MustCompile(`<a:([\w~-]*):(\d+)>`), true},
}

// protectEmoji replaces custom emoji references with emoji tokens so
// emphasis inside names such as :blob_cat: is not rendered.
func (t *Transformer) protectEmoji(content string) string {
	for _, r := range customEmojiRules {
		content = r.pattern.ReplaceAllStringFunc(content, t.registry.RegisterEmoji)
	}
	return content
}

// Emoji resolves Unicode emoji through the configured resolver, then turns
// custom emoji references into images. A failing resolver leaves the text as
// it was; only context cancellation is returned.
func (t *Transformer) Emoji(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.resolver != nil {
		resolved, err := t.resolver.Resolve(ctx, t.content)
		switch {
		case err == nil:
			t.content = resolved
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			t.logger.Printf("emoji resolution failed, keeping text: %v", err)
		}
	}

	for _, r := range customEmojiRules {
		animated := r.animated
		t.content = drainLogged(t.logger, t.content, r.pattern, func(g []string) string {
			return t.customEmoji(ctx, g[1], g[2], animated)
		})
	}
	return nil
}

// CustomEmojiURL returns the CDN URL of a custom emoji image.
func (t *Transformer) CustomEmojiURL(id string, animated bool) string {
	ext := "png"
	if animated {
		ext = "gif"
	}
	return fmt.Sprintf("%s/%s.%s", t.config.EmojiCDN, id, ext)
}

func (t *Transformer) customEmoji(ctx context.Context, name, id string, animated bool) string {
	src := t.CustomEmojiURL(id, animated)
	if t.images != nil {
		if uri, err := t.images.DataURI(ctx, src); err == nil {
			src = uri
		} else {
			t.logger.Printf("inline emoji %s failed, using CDN URL: %v", id, err)
		}
	}
	alt := "Emoji"
	if name != "" {
		alt = ":" + name + ":"
	}
	return fmt.Sprintf(`<img class="emoji emoji--small" src="%s" alt="%s">`, src, alt)
}

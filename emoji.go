package chatlog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/riverfjs/chatlog-go/internal/types"
)

// EmojiResolver turns Unicode emoji in escaped text into markup.
type EmojiResolver = types.EmojiResolver

// EmojiResolverFunc adapts a function to EmojiResolver.
type EmojiResolverFunc func(ctx context.Context, text string) (string, error)

// Resolve calls f(ctx, text).
func (f EmojiResolverFunc) Resolve(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// PassthroughResolver leaves Unicode emoji as text.
var PassthroughResolver EmojiResolver = EmojiResolverFunc(func(_ context.Context, text string) (string, error) {
	return text, nil
})

const (
	zeroWidthJoiner     = 0x200D
	variationSelector16 = 0xFE0F
	combiningKeycap     = 0x20E3
)

// TwemojiResolver replaces emoji grapheme clusters with Twemoji SVG images.
// It needs no network access; the images are referenced by URL.
type TwemojiResolver struct {
	base string
}

// NewTwemojiResolver creates a resolver serving images from base. An empty
// base uses the default Twemoji CDN.
func NewTwemojiResolver(base string) *TwemojiResolver {
	if base == "" {
		base = types.DefaultRenderConfig().TwemojiBase
	}
	return &TwemojiResolver{base: strings.TrimSuffix(base, "/")}
}

// Resolve implements EmojiResolver.
func (r *TwemojiResolver) Resolve(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !hasNonASCII(text) {
		return text, nil
	}

	var sb strings.Builder
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		if !isEmojiCluster(runes) {
			sb.WriteString(g.Str())
			continue
		}
		fmt.Fprintf(&sb, `<img class="emoji emoji--small" src="%s/%s.svg" alt="%s">`,
			r.base, EmojiCodepoints(runes), g.Str())
	}
	return sb.String(), nil
}

// EmojiCodepoints returns the Twemoji file name of an emoji cluster:
// lowercase hex code points joined by "-". U+FE0F is dropped unless the
// cluster is a ZWJ sequence.
func EmojiCodepoints(runes []rune) string {
	zwj := false
	for _, r := range runes {
		if r == zeroWidthJoiner {
			zwj = true
			break
		}
	}
	parts := make([]string, 0, len(runes))
	for _, r := range runes {
		if r == variationSelector16 && !zwj {
			continue
		}
		parts = append(parts, strconv.FormatInt(int64(r), 16))
	}
	return strings.Join(parts, "-")
}

// emojiPresentation holds pictographs shown as emoji without a variation
// selector.
var emojiPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x231a, Hi: 0x231b, Stride: 1},
		{Lo: 0x23e9, Hi: 0x23ec, Stride: 1},
		{Lo: 0x23f0, Hi: 0x23f0, Stride: 1},
		{Lo: 0x23f3, Hi: 0x23f3, Stride: 1},
		{Lo: 0x25fd, Hi: 0x25fe, Stride: 1},
		{Lo: 0x2614, Hi: 0x2615, Stride: 1},
		{Lo: 0x2648, Hi: 0x2653, Stride: 1},
		{Lo: 0x267f, Hi: 0x267f, Stride: 1},
		{Lo: 0x2693, Hi: 0x2693, Stride: 1},
		{Lo: 0x26a1, Hi: 0x26a1, Stride: 1},
		{Lo: 0x26aa, Hi: 0x26ab, Stride: 1},
		{Lo: 0x26bd, Hi: 0x26be, Stride: 1},
		{Lo: 0x26c4, Hi: 0x26c5, Stride: 1},
		{Lo: 0x26ce, Hi: 0x26ce, Stride: 1},
		{Lo: 0x26d4, Hi: 0x26d4, Stride: 1},
		{Lo: 0x26ea, Hi: 0x26ea, Stride: 1},
		{Lo: 0x26f2, Hi: 0x26f3, Stride: 1},
		{Lo: 0x26f5, Hi: 0x26f5, Stride: 1},
		{Lo: 0x26fa, Hi: 0x26fa, Stride: 1},
		{Lo: 0x26fd, Hi: 0x26fd, Stride: 1},
		{Lo: 0x2705, Hi: 0x2705, Stride: 1},
		{Lo: 0x270a, Hi: 0x270b, Stride: 1},
		{Lo: 0x2728, Hi: 0x2728, Stride: 1},
		{Lo: 0x274c, Hi: 0x274c, Stride: 1},
		{Lo: 0x274e, Hi: 0x274e, Stride: 1},
		{Lo: 0x2753, Hi: 0x2755, Stride: 1},
		{Lo: 0x2757, Hi: 0x2757, Stride: 1},
		{Lo: 0x2795, Hi: 0x2797, Stride: 1},
		{Lo: 0x27b0, Hi: 0x27b0, Stride: 1},
		{Lo: 0x27bf, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2b1b, Hi: 0x2b1c, Stride: 1},
		{Lo: 0x2b50, Hi: 0x2b50, Stride: 1},
		{Lo: 0x2b55, Hi: 0x2b55, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f004, Hi: 0x1f004, Stride: 1},
		{Lo: 0x1f0cf, Hi: 0x1f0cf, Stride: 1},
		{Lo: 0x1f18e, Hi: 0x1f18e, Stride: 1},
		{Lo: 0x1f191, Hi: 0x1f19a, Stride: 1},
		{Lo: 0x1f1e6, Hi: 0x1f1ff, Stride: 1}, // regional indicators
		{Lo: 0x1f201, Hi: 0x1f201, Stride: 1},
		{Lo: 0x1f21a, Hi: 0x1f21a, Stride: 1},
		{Lo: 0x1f22f, Hi: 0x1f22f, Stride: 1},
		{Lo: 0x1f232, Hi: 0x1f236, Stride: 1},
		{Lo: 0x1f238, Hi: 0x1f23a, Stride: 1},
		{Lo: 0x1f250, Hi: 0x1f251, Stride: 1},
		{Lo: 0x1f300, Hi: 0x1f64f, Stride: 1},
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1},
		{Lo: 0x1f7e0, Hi: 0x1f7eb, Stride: 1},
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1},
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1},
	},
}

// textPictographic holds pictographs that default to text presentation and
// only count as emoji when followed by U+FE0F or joined with U+200D.
var textPictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00a9, Hi: 0x00a9, Stride: 1},
		{Lo: 0x00ae, Hi: 0x00ae, Stride: 1},
		{Lo: 0x203c, Hi: 0x203c, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x2199, Stride: 1},
		{Lo: 0x21a9, Hi: 0x21aa, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23cf, Hi: 0x23cf, Stride: 1},
		{Lo: 0x23ed, Hi: 0x23ef, Stride: 1},
		{Lo: 0x23f1, Hi: 0x23f2, Stride: 1},
		{Lo: 0x23f8, Hi: 0x23fa, Stride: 1},
		{Lo: 0x24c2, Hi: 0x24c2, Stride: 1},
		{Lo: 0x25aa, Hi: 0x25ab, Stride: 1},
		{Lo: 0x25b6, Hi: 0x25b6, Stride: 1},
		{Lo: 0x25c0, Hi: 0x25c0, Stride: 1},
		{Lo: 0x25fb, Hi: 0x25fc, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2b05, Hi: 0x2b07, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303d, Hi: 0x303d, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f170, Hi: 0x1f171, Stride: 1},
		{Lo: 0x1f17e, Hi: 0x1f17f, Stride: 1},
		{Lo: 0x1f202, Hi: 0x1f202, Stride: 1},
		{Lo: 0x1f237, Hi: 0x1f237, Stride: 1},
	},
	LatinOffset: 2,
}

// isEmojiCluster reports whether a grapheme cluster is drawn as an emoji,
// judged by its first code point.
func isEmojiCluster(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	first := runes[0]
	switch {
	case unicode.Is(emojiPresentation, first):
		return true
	case len(runes) == 1:
		return false
	case isKeycapBase(first):
		return runes[len(runes)-1] == combiningKeycap
	case unicode.Is(textPictographic, first):
		return runes[1] == variationSelector16 || runes[1] == zeroWidthJoiner
	}
	return false
}

func isKeycapBase(r rune) bool {
	return r == '#' || r == '*' || (r >= '0' && r <= '9')
}

func hasNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

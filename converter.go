package chatlog

import (
	"context"
	"fmt"

	"github.com/riverfjs/chatlog-go/internal/converter"
)

// Render 按指定 flow 将一段已转义的消息文本渲染为 HTML
//
// 参数:
//   - ctx: 上下文，取消后返回 ctx.Err()
//   - flow: 处理流程，如 FlowMessage、FlowReference
//   - content: 经过 EscapeText 转义的原始文本
//   - opts: 渲染选项
//
// 返回:
//   - string: HTML 片段
//   - error: 仅在 context 取消或 flow 未定义时返回
//
// Malformed markdown never fails; text that cannot be interpreted is
// rendered literally.
func Render(ctx context.Context, flow Flow, content string, opts ...Option) (string, error) {
	return render(ctx, flow, content, applyOptions(opts...))
}

// RenderMessage escapes raw message text and renders it with FlowMessage.
func RenderMessage(ctx context.Context, raw string, opts ...Option) (string, error) {
	return Render(ctx, FlowMessage, EscapeText(raw), opts...)
}

// EscapeText escapes raw platform text into the form Render expects.
// Backticks are left as they are.
func EscapeText(raw string) string {
	return converter.EscapeString(raw)
}

func render(ctx context.Context, flow Flow, content string, options *ConvertOptions) (string, error) {
	if !flow.valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownFlow, int(flow))
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	t := newTransformer(content, options)
	var out string
	var err error
	switch flow {
	case FlowMessage:
		out, err = t.MessageFlow(ctx)
	case FlowEmbed:
		out, err = t.EmbedFlow(ctx)
	case FlowSpecialEmbed:
		out, err = t.SpecialEmbedFlow(ctx)
	case FlowReference:
		out, err = t.ReferenceFlow(ctx)
	case FlowEmoji:
		out, err = t.EmojiFlow(ctx)
	case FlowLinkEmbed:
		out, err = t.LinkEmbedFlow(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("render %s: %w", flow, err)
	}
	return out, nil
}

// newTransformer 根据选项创建单次调用使用的 transformer
func newTransformer(content string, options *ConvertOptions) *converter.Transformer {
	return converter.New(content, converter.Options{
		Config:       options.Config,
		Resolver:     options.EmojiResolver,
		Images:       options.Images,
		Placeholders: options.Placeholders,
		Logger:       Logger,
	})
}

package chatlog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RenderTranscript 并发渲染一组消息，结果与输入顺序一致
//
// 每条消息使用独立的 transformer，消息之间不共享可变状态。
// 并发数由 WithConcurrency 控制，默认不限制。
//
// 参数:
//   - ctx: 上下文，取消后尚未开始的消息不再渲染
//   - flow: 所有消息使用的处理流程
//   - messages: 已转义的消息文本
//   - opts: 渲染选项
//
// 返回:
//   - []string: 与 messages 一一对应的 HTML 片段
//   - error: 第一个失败消息的错误
func RenderTranscript(ctx context.Context, flow Flow, messages []string, opts ...Option) ([]string, error) {
	if !flow.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFlow, int(flow))
	}
	options := applyOptions(opts...)

	out := make([]string, len(messages))
	g, ctx := errgroup.WithContext(ctx)
	if options.Concurrency > 0 {
		g.SetLimit(options.Concurrency)
	}
	for i, msg := range messages {
		i, msg := i, msg
		g.Go(func() error {
			html, err := render(ctx, flow, msg, options)
			if err != nil {
				return fmt.Errorf("message %d: %w", i, err)
			}
			out[i] = html
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

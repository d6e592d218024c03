// Package chatlog 将聊天平台的消息 markdown 渲染为归档用的 HTML 片段
//
// 这个包实现了 Discord 风格的消息方言（不是 CommonMark）：代码块、
// 掩码链接、自动链接、强调、标题、subtext、spoiler、列表、引用、
// 时间戳和 emoji。输入是已经过 HTML 转义的文本（见 EscapeText）。
//
// 核心功能：
//   - 按 Flow 渲染单条文本：消息、embed、回复预览、emoji 等
//   - 并发渲染整段聊天记录，保持顺序
//   - 将渲染结果还原为 markdown
//   - 通过 Adapter 从平台导出频道
//
// 主要 API：
//   - Render(): 按 flow 渲染一段已转义文本
//   - RenderTranscript(): 并发渲染多条消息
//   - ExportChannel(): 拉取并渲染频道历史
//   - ToMarkdown(): HTML → markdown
//
// 示例：
//
//	html, err := chatlog.Render(ctx, chatlog.FlowMessage, chatlog.EscapeText(raw))
//
//	// 回复预览（单行，只保留行内样式）
//	preview, err := chatlog.Render(ctx, chatlog.FlowReference, chatlog.EscapeText(raw))
//
//	// 并发渲染，最多 8 个 goroutine
//	pages, err := chatlog.RenderTranscript(ctx, chatlog.FlowMessage, escaped,
//	    chatlog.WithConcurrency(8))
package chatlog

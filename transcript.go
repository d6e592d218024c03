package chatlog

import (
	"context"
	"fmt"
	"time"

	"github.com/riverfjs/chatlog-go/internal/platform"
)

// 导出平台类型别名
type (
	Adapter = platform.Adapter
	Guild   = platform.Guild
	Channel = platform.Channel
	Author  = platform.Author
	Message = platform.Message
)

// ErrNotFound is returned when a guild, channel or message does not exist.
var ErrNotFound = platform.ErrNotFound

// DeletedReference is the preview shown for replies to unknown messages.
const DeletedReference = "Original message was deleted."

// NewDiscordAdapter creates an Adapter backed by the Discord REST API.
func NewDiscordAdapter(token string) (Adapter, error) {
	a, err := platform.NewDiscordAdapter(token)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// RenderedMessage is one message of an exported transcript.
type RenderedMessage struct {
	ID         string
	Author     Author
	Timestamp  time.Time
	HTML       string
	Reference  string // FlowReference preview of the replied-to message, if any
	Components []RenderedComponent
}

// Transcript is a rendered channel history.
type Transcript struct {
	Guild    Guild // zero for direct messages
	Channel  Channel
	Topic    string // channel topic rendered as CommonMark
	Messages []RenderedMessage
}

// ExportChannel 导出频道的最近 limit 条消息（limit <= 0 表示全部）
//
// 消息按时间正序返回。回复预览只能解析本次导出范围内的消息，
// 范围外的被引用消息显示为 DeletedReference。
func ExportChannel(ctx context.Context, a Adapter, channelID string, limit int, opts ...Option) (*Transcript, error) {
	reg, msgs, err := platform.Load(ctx, a, channelID, limit)
	if err != nil {
		return nil, err
	}
	options := applyOptions(opts...)

	contents := make([]string, len(msgs))
	for i, m := range msgs {
		contents[i] = EscapeText(m.Content)
	}
	bodies, err := RenderTranscript(ctx, FlowMessage, contents, opts...)
	if err != nil {
		return nil, err
	}

	tr := &Transcript{Messages: make([]RenderedMessage, len(msgs))}
	tr.Channel, _ = reg.Channel(channelID)
	tr.Guild, _ = reg.GuildOf(channelID)
	if tr.Channel.Topic != "" {
		if tr.Topic, err = RenderCommonMark(tr.Channel.Topic); err != nil {
			return nil, err
		}
	}

	for i, m := range msgs {
		rm := RenderedMessage{
			ID:        m.ID,
			Author:    m.Author,
			Timestamp: m.Timestamp,
			HTML:      bodies[i],
		}
		if m.ReferenceID != "" {
			rm.Reference = DeletedReference
			if ref, ok := reg.Referenced(m); ok {
				if rm.Reference, err = render(ctx, FlowReference, EscapeText(ref.Content), options); err != nil {
					return nil, fmt.Errorf("reference of message %s: %w", m.ID, err)
				}
			}
		}
		if rm.Components, err = renderComponents(ctx, m.Components, options); err != nil {
			return nil, fmt.Errorf("components of message %s: %w", m.ID, err)
		}
		tr.Messages[i] = rm
	}
	return tr, nil
}

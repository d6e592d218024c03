package chatlog

import (
	"context"

	"github.com/riverfjs/chatlog-go/internal/platform"
)

// ComponentKind enumerates message component types (buttons, selects and
// the layout components).
type ComponentKind = platform.ComponentKind

// Component is one element attached to a message.
type Component = platform.Component

const (
	ComponentUnknown      = platform.ComponentUnknown
	ComponentActionRow    = platform.ComponentActionRow
	ComponentButton       = platform.ComponentButton
	ComponentSelect       = platform.ComponentSelect
	ComponentTextInput    = platform.ComponentTextInput
	ComponentSection      = platform.ComponentSection
	ComponentTextDisplay  = platform.ComponentTextDisplay
	ComponentThumbnail    = platform.ComponentThumbnail
	ComponentMediaGallery = platform.ComponentMediaGallery
	ComponentFile         = platform.ComponentFile
	ComponentSeparator    = platform.ComponentSeparator
	ComponentContainer    = platform.ComponentContainer
)

// RenderedComponent is a component whose text has been rendered to HTML.
type RenderedComponent struct {
	Kind     ComponentKind
	Label    string // HTML, emoji resolved
	URL      string
	HTML     string // text display content, FlowEmbed
	Children []RenderedComponent
}

// renderComponents 渲染组件树中的文本：标签只解析 emoji，文本展示组件按 embed 处理
func renderComponents(ctx context.Context, cs []Component, options *ConvertOptions) ([]RenderedComponent, error) {
	if len(cs) == 0 {
		return nil, nil
	}
	out := make([]RenderedComponent, 0, len(cs))
	for _, c := range cs {
		rc := RenderedComponent{Kind: c.Kind, URL: c.URL}
		var err error
		switch c.Kind {
		case ComponentTextDisplay:
			rc.HTML, err = render(ctx, FlowEmbed, EscapeText(c.Content), options)
		case ComponentButton, ComponentSelect, ComponentTextInput:
			rc.Label, err = render(ctx, FlowEmoji, EscapeText(c.Label), options)
		case ComponentActionRow, ComponentSection, ComponentContainer, ComponentMediaGallery,
			ComponentThumbnail, ComponentFile, ComponentSeparator, ComponentUnknown:
		}
		if err != nil {
			return nil, err
		}
		if c.Kind.IsLayout() {
			if rc.Children, err = renderComponents(ctx, c.Children, options); err != nil {
				return nil, err
			}
		}
		out = append(out, rc)
	}
	return out, nil
}

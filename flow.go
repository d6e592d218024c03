package chatlog

import (
	"errors"
	"fmt"
)

// ErrUnknownFlow is returned when a Flow value is not one of the defined flows.
var ErrUnknownFlow = errors.New("unknown flow")

// Flow selects the ordered pass list applied to one piece of text.
type Flow int

const (
	// FlowMessage renders a chat message body.
	FlowMessage Flow = iota
	// FlowEmbed renders embed descriptions and field values.
	FlowEmbed
	// FlowSpecialEmbed renders embed text whose URLs must be linked even
	// inside code spans.
	FlowSpecialEmbed
	// FlowReference renders the single-line preview of a replied-to message.
	FlowReference
	// FlowEmoji only resolves emoji, for names and titles.
	FlowEmoji
	// FlowLinkEmbed renders the title of a link embed.
	FlowLinkEmbed
)

var flowNames = [...]string{
	FlowMessage:      "message",
	FlowEmbed:        "embed",
	FlowSpecialEmbed: "special-embed",
	FlowReference:    "reference",
	FlowEmoji:        "emoji",
	FlowLinkEmbed:    "link-embed",
}

// String returns the string representation of Flow.
func (f Flow) String() string {
	if f.valid() {
		return flowNames[f]
	}
	return "unknown"
}

func (f Flow) valid() bool {
	return f >= 0 && int(f) < len(flowNames)
}

// ParseFlow returns the Flow named s, as printed by String.
func ParseFlow(s string) (Flow, error) {
	for i, name := range flowNames {
		if name == s {
			return Flow(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlow, s)
}

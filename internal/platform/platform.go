// Package platform describes the chat data a transcript is built from,
// independent of any client library.
package platform

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by adapters and registry lookups for unknown IDs.
var ErrNotFound = errors.New("not found")

// Adapter fetches guilds, channels and messages from one chat backend.
type Adapter interface {
	Guild(ctx context.Context, id string) (Guild, error)
	Channel(ctx context.Context, id string) (Channel, error)
	// Messages returns up to limit messages of a channel sent before the
	// message with ID before ("" for the newest), newest first.
	Messages(ctx context.Context, channelID string, limit int, before string) ([]Message, error)
}

// Guild is a server that owns channels.
type Guild struct {
	ID      string
	Name    string
	IconURL string
}

// Channel refers to its guild by ID; resolve it through a Registry.
type Channel struct {
	ID      string
	GuildID string // empty for direct messages
	Name    string
	Topic   string
}

// Author is the sender of a message. DisplayName falls back to Name.
type Author struct {
	ID          string
	Name        string
	DisplayName string
	Bot         bool
}

// Message refers to its channel and replied-to message by ID.
type Message struct {
	ID          string
	ChannelID   string
	Author      Author
	Content     string
	Timestamp   time.Time
	ReferenceID string
	Components  []Component
}

// Component is one interactive or layout element attached to a message.
type Component struct {
	Kind     ComponentKind
	Label    string // button and input label, select placeholder
	URL      string // link buttons, thumbnails, media
	Content  string // text display markdown
	Children []Component
}

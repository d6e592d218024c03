package platform

import (
	"context"
	"fmt"
	"sync"
)

// Registry indexes guilds, channels and messages by ID. Entities never point
// at each other; navigating from a message to its channel or guild is a
// lookup. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	guilds   map[string]Guild
	channels map[string]Channel
	messages map[string]Message
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		guilds:   make(map[string]Guild),
		channels: make(map[string]Channel),
		messages: make(map[string]Message),
	}
}

// AddGuild stores g, replacing any guild with the same ID.
func (r *Registry) AddGuild(g Guild) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guilds[g.ID] = g
}

// AddChannel stores c, replacing any channel with the same ID.
func (r *Registry) AddChannel(c Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels[c.ID] = c
}

// AddMessages stores msgs by ID.
func (r *Registry) AddMessages(msgs ...Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.messages[m.ID] = m
	}
}

// Guild looks up a guild by ID.
func (r *Registry) Guild(id string) (Guild, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.guilds[id]
	return g, ok
}

// Channel looks up a channel by ID.
func (r *Registry) Channel(id string) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.channels[id]
	return c, ok
}

// Message looks up a message by ID.
func (r *Registry) Message(id string) (Message, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.messages[id]
	return m, ok
}

// GuildOf returns the guild a channel belongs to.
func (r *Registry) GuildOf(channelID string) (Guild, bool) {
	c, ok := r.Channel(channelID)
	if !ok || c.GuildID == "" {
		return Guild{}, false
	}
	return r.Guild(c.GuildID)
}

// Referenced returns the message m replies to, if it is known.
func (r *Registry) Referenced(m Message) (Message, bool) {
	if m.ReferenceID == "" {
		return Message{}, false
	}
	return r.Message(m.ReferenceID)
}

// pageSize 单次请求的最大消息数
const pageSize = 100

// Load fetches a channel, its guild and up to limit of its newest messages
// into a new Registry. Messages are returned oldest first.
func Load(ctx context.Context, a Adapter, channelID string, limit int) (*Registry, []Message, error) {
	reg := NewRegistry()

	ch, err := a.Channel(ctx, channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	reg.AddChannel(ch)

	if ch.GuildID != "" {
		g, err := a.Guild(ctx, ch.GuildID)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch guild %s: %w", ch.GuildID, err)
		}
		reg.AddGuild(g)
	}

	var msgs []Message
	before := ""
	for limit <= 0 || len(msgs) < limit {
		n := pageSize
		if limit > 0 && limit-len(msgs) < n {
			n = limit - len(msgs)
		}
		page, err := a.Messages(ctx, channelID, n, before)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch messages of %s: %w", channelID, err)
		}
		msgs = append(msgs, page...)
		if len(page) < n {
			break
		}
		before = page[len(page)-1].ID
	}

	// newest first -> oldest first
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	reg.AddMessages(msgs...)
	return reg, msgs, nil
}

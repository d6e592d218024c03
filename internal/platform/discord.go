package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// DiscordAdapter implements Adapter with a discordgo REST session.
type DiscordAdapter struct {
	session *discordgo.Session
}

// NewDiscordAdapter creates an adapter authenticated with a bot token.
func NewDiscordAdapter(token string) (*DiscordAdapter, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &DiscordAdapter{session: s}, nil
}

// NewDiscordAdapterFromSession wraps an existing session.
func NewDiscordAdapterFromSession(s *discordgo.Session) *DiscordAdapter {
	return &DiscordAdapter{session: s}
}

// Guild implements Adapter.
func (a *DiscordAdapter) Guild(ctx context.Context, id string) (Guild, error) {
	g, err := a.session.Guild(id, discordgo.WithContext(ctx))
	if err != nil {
		return Guild{}, wrapDiscordError(err)
	}
	return Guild{ID: g.ID, Name: g.Name, IconURL: g.IconURL("256")}, nil
}

// Channel implements Adapter.
func (a *DiscordAdapter) Channel(ctx context.Context, id string) (Channel, error) {
	ch, err := a.session.Channel(id, discordgo.WithContext(ctx))
	if err != nil {
		return Channel{}, wrapDiscordError(err)
	}
	return Channel{ID: ch.ID, GuildID: ch.GuildID, Name: ch.Name, Topic: ch.Topic}, nil
}

// Messages implements Adapter. The API returns at most 100 messages per call.
func (a *DiscordAdapter) Messages(ctx context.Context, channelID string, limit int, before string) ([]Message, error) {
	msgs, err := a.session.ChannelMessages(channelID, limit, before, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapDiscordError(err)
	}
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, convertMessage(m))
	}
	return out, nil
}

func wrapDiscordError(err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

func convertMessage(m *discordgo.Message) Message {
	msg := Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
	if m.Author != nil {
		msg.Author = Author{
			ID:          m.Author.ID,
			Name:        m.Author.Username,
			DisplayName: m.Author.GlobalName,
			Bot:         m.Author.Bot,
		}
		if msg.Author.DisplayName == "" {
			msg.Author.DisplayName = m.Author.Username
		}
	}
	if m.MessageReference != nil {
		msg.ReferenceID = m.MessageReference.MessageID
	}
	for _, c := range m.Components {
		msg.Components = append(msg.Components, convertComponent(c))
	}
	return msg
}

func convertComponent(c discordgo.MessageComponent) Component {
	out := Component{Kind: KindFromType(int(c.Type()))}
	switch v := c.(type) {
	case *discordgo.ActionsRow:
		out.Children = convertComponents(v.Components)
	case discordgo.ActionsRow:
		out.Children = convertComponents(v.Components)
	case *discordgo.Button:
		out.Label, out.URL = v.Label, v.URL
	case discordgo.Button:
		out.Label, out.URL = v.Label, v.URL
	case *discordgo.SelectMenu:
		out.Label = v.Placeholder
	case discordgo.SelectMenu:
		out.Label = v.Placeholder
	case *discordgo.TextInput:
		out.Label = v.Label
	case discordgo.TextInput:
		out.Label = v.Label
	}
	return out
}

func convertComponents(cs []discordgo.MessageComponent) []Component {
	out := make([]Component, 0, len(cs))
	for _, c := range cs {
		out = append(out, convertComponent(c))
	}
	return out
}

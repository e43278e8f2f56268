package bot

import (
	"context"
	"log/slog"

	"kinobot/core/logger"
	"kinobot/internal/storage"
)

// ChannelDirectory is the channel-store surface the gate reads from.
type ChannelDirectory interface {
	Create(ctx context.Context, ch storage.Channel) (storage.Channel, error)
	Active(ctx context.Context) ([]storage.Channel, error)
	Delete(ctx context.Context, channelID string) error
}

// Gate enforces mandatory channel membership for non-privileged users.
type Gate struct {
	channels ChannelDirectory
	gw       Gateway
}

// NewGate builds the subscription gate over the channel store and gateway.
func NewGate(channels ChannelDirectory, gw Gateway) *Gate {
	return &Gate{channels: channels, gw: gw}
}

func joinedStatus(status string) bool {
	switch status {
	case "member", "administrator", "creator":
		return true
	}
	return false
}

// IsFullyJoined reports whether the user is a member of every active channel.
// Any lookup error fails closed; an empty channel set is trivially joined.
func (g *Gate) IsFullyJoined(ctx context.Context, userID int64) bool {
	channels, err := g.channels.Active(ctx)
	if err != nil {
		logger.Error(ctx, "tg", "gate.channels",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return false
	}
	for _, ch := range channels {
		status, err := g.gw.ChatMemberStatus(ctx, ch.ChannelID, userID)
		if err != nil || !joinedStatus(status) {
			return false
		}
	}
	return true
}

// UnjoinedChannels lists the active channels the user has not joined,
// counting membership lookup errors as unjoined.
func (g *Gate) UnjoinedChannels(ctx context.Context, userID int64) ([]storage.Channel, error) {
	channels, err := g.channels.Active(ctx)
	if err != nil {
		return nil, err
	}
	var unjoined []storage.Channel
	for _, ch := range channels {
		status, err := g.gw.ChatMemberStatus(ctx, ch.ChannelID, userID)
		if err != nil || !joinedStatus(status) {
			unjoined = append(unjoined, ch)
		}
	}
	return unjoined, nil
}

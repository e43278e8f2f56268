package service

import (
	"context"
	"errors"
	"log/slog"

	"kinobot/core/logger"
	"kinobot/internal/apperrors"
	"kinobot/internal/storage"
)

// Channels manages the mandatory-subscription channel list.
type Channels struct {
	repo *storage.ChannelsRepo
}

func NewChannels(repo *storage.ChannelsRepo) *Channels {
	return &Channels{repo: repo}
}

// Create registers a channel users must join before receiving content.
func (s *Channels) Create(ctx context.Context, ch storage.Channel) (storage.Channel, error) {
	created, err := s.repo.Create(ctx, ch)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return storage.Channel{}, apperrors.Validation("channel already registered")
		}
		return storage.Channel{}, apperrors.External("channel insert failed", err)
	}
	logger.Info(ctx, "service.channels", "channels.create",
		slog.String("status", "ok"),
		slog.String("channel_id", created.ChannelID),
	)
	return created, nil
}

// Active lists every channel currently enforced by the subscription gate.
func (s *Channels) Active(ctx context.Context) ([]storage.Channel, error) {
	chs, err := s.repo.Active(ctx)
	if err != nil {
		return nil, apperrors.External("channel list failed", err)
	}
	return chs, nil
}

// Delete removes a channel from the gate by its Telegram identifier.
func (s *Channels) Delete(ctx context.Context, channelID string) error {
	ok, err := s.repo.Delete(ctx, channelID)
	if err != nil {
		return apperrors.External("channel delete failed", err)
	}
	if !ok {
		return apperrors.NotFound("channel not found")
	}
	logger.Info(ctx, "service.channels", "channels.delete",
		slog.String("status", "ok"),
		slog.String("channel_id", channelID),
	)
	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ChannelsRepo persists required-subscription channels.
type ChannelsRepo struct {
	db *sqlx.DB
}

// NewChannelsRepo binds a channels repository to the database handle.
func NewChannelsRepo(db *sqlx.DB) *ChannelsRepo {
	return &ChannelsRepo{db: db}
}

// Create inserts a channel gate entry.
func (r *ChannelsRepo) Create(ctx context.Context, ch Channel) (Channel, error) {
	const q = `
		INSERT INTO channels (channel_id, name, invite_link, is_active, created_at)
		VALUES ($1, $2, $3, TRUE, NOW())
		RETURNING channel_id, name, invite_link, is_active, created_at`

	var out Channel
	if err := r.db.GetContext(ctx, &out, q, ch.ChannelID, ch.Name, ch.InviteLink); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return Channel{}, ErrDuplicate
		}
		return Channel{}, fmt.Errorf("insert channel %q: %w", ch.ChannelID, err)
	}
	return out, nil
}

// Active returns all active channel gates.
func (r *ChannelsRepo) Active(ctx context.Context) ([]Channel, error) {
	const q = `
		SELECT channel_id, name, invite_link, is_active, created_at
		FROM channels WHERE is_active ORDER BY created_at`

	var channels []Channel
	if err := r.db.SelectContext(ctx, &channels, q); err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return channels, nil
}

// Delete removes a channel gate and reports whether it existed.
func (r *ChannelsRepo) Delete(ctx context.Context, channelID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM channels WHERE channel_id = $1`, channelID)
	if err != nil {
		return false, fmt.Errorf("delete channel %q: %w", channelID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete channel rows: %w", err)
	}
	return affected > 0, nil
}

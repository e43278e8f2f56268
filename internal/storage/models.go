// Package storage implements the Postgres repositories behind the bot's
// catalog, channel and user records.
package storage

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("storage: record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("storage: duplicate record")
)

// Role values stored on user records.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Media kinds stored on catalog records.
const (
	KindPhoto     = "photo"
	KindVideo     = "video"
	KindAnimation = "animation"
)

// User is a Telegram identity known to the bot.
type User struct {
	TelegramID   int64     `db:"telegram_id"`
	FirstName    string    `db:"first_name"`
	LastName     *string   `db:"last_name"`
	Username     *string   `db:"username"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	LastActivity time.Time `db:"last_activity"`
	CreatedAt    time.Time `db:"created_at"`
}

// Movie is a catalog entry addressable by its lower-cased code.
type Movie struct {
	ID            int64     `db:"id"`
	Code          string    `db:"code"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	FileID        string    `db:"file_id"`
	Kind          string    `db:"kind"`
	DownloadCount int       `db:"download_count"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}

// Channel is a required-subscription channel gate entry.
type Channel struct {
	ChannelID  string    `db:"channel_id"`
	Name       string    `db:"name"`
	InviteLink string    `db:"invite_link"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
}

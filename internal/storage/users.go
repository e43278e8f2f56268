package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// UsersRepo persists Telegram user records.
type UsersRepo struct {
	db *sqlx.DB
}

// NewUsersRepo binds a users repository to the database handle.
func NewUsersRepo(db *sqlx.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// Profile carries the identity fields taken from an inbound update sender.
type Profile struct {
	TelegramID int64
	FirstName  string
	LastName   *string
	Username   *string
}

// FindOrCreate upserts the user, refreshing last_activity on every call.
// The role argument applies only on first insert; an existing role is never
// downgraded by this path.
func (r *UsersRepo) FindOrCreate(ctx context.Context, p Profile, role string) (User, error) {
	const q = `
		INSERT INTO users (telegram_id, first_name, last_name, username, role, is_active, last_activity, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		ON CONFLICT (telegram_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    username = EXCLUDED.username,
		    last_activity = NOW()
		RETURNING telegram_id, first_name, last_name, username, role, is_active, last_activity, created_at`

	var u User
	if err := r.db.GetContext(ctx, &u, q, p.TelegramID, p.FirstName, p.LastName, p.Username, role); err != nil {
		return User{}, fmt.Errorf("upsert user %d: %w", p.TelegramID, err)
	}
	return u, nil
}

// ByTelegramID fetches one user record.
func (r *UsersRepo) ByTelegramID(ctx context.Context, telegramID int64) (User, error) {
	const q = `
		SELECT telegram_id, first_name, last_name, username, role, is_active, last_activity, created_at
		FROM users WHERE telegram_id = $1`

	var u User
	if err := r.db.GetContext(ctx, &u, q, telegramID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("select user %d: %w", telegramID, err)
	}
	return u, nil
}

// ActiveIDs returns the identities of all active users, the broadcast
// recipient snapshot.
func (r *UsersRepo) ActiveIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids,
		`SELECT telegram_id FROM users WHERE is_active ORDER BY telegram_id`); err != nil {
		return nil, fmt.Errorf("select active users: %w", err)
	}
	return ids, nil
}

// CountActive reports the number of active users.
func (r *UsersRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users WHERE is_active`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// SetRole updates a user's role and reports whether the user existed.
func (r *UsersRepo) SetRole(ctx context.Context, telegramID int64, role string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET role = $2 WHERE telegram_id = $1`, telegramID, role)
	if err != nil {
		return false, fmt.Errorf("set role %s for %d: %w", role, telegramID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set role rows: %w", err)
	}
	return affected > 0, nil
}

// ByRole returns all active users holding one of the given roles.
func (r *UsersRepo) ByRole(ctx context.Context, roles ...string) ([]User, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	q, args, err := sqlx.In(`
		SELECT telegram_id, first_name, last_name, username, role, is_active, last_activity, created_at
		FROM users WHERE is_active AND role IN (?) ORDER BY telegram_id`, roles)
	if err != nil {
		return nil, fmt.Errorf("build role query: %w", err)
	}
	var users []User
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("select users by role: %w", err)
	}
	return users, nil
}

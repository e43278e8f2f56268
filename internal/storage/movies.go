package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// MoviesRepo persists catalog entries keyed by their lower-cased code.
type MoviesRepo struct {
	db *sqlx.DB
}

// NewMoviesRepo binds a movies repository to the database handle.
func NewMoviesRepo(db *sqlx.DB) *MoviesRepo {
	return &MoviesRepo{db: db}
}

// NormalizeCode lowers and trims a catalog code into its canonical form.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Create inserts a catalog entry. ErrDuplicate is returned when the
// canonical code already exists.
func (r *MoviesRepo) Create(ctx context.Context, m Movie) (Movie, error) {
	const q = `
		INSERT INTO movies (code, title, description, file_id, kind, download_count, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, TRUE, NOW())
		RETURNING id, code, title, description, file_id, kind, download_count, is_active, created_at`

	var out Movie
	err := r.db.GetContext(ctx, &out, q, NormalizeCode(m.Code), m.Title, m.Description, m.FileID, m.Kind)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return Movie{}, ErrDuplicate
		}
		return Movie{}, fmt.Errorf("insert movie %q: %w", m.Code, err)
	}
	return out, nil
}

// ByCode fetches one active catalog entry by canonical code.
func (r *MoviesRepo) ByCode(ctx context.Context, code string) (Movie, error) {
	const q = `
		SELECT id, code, title, description, file_id, kind, download_count, is_active, created_at
		FROM movies WHERE code = $1 AND is_active`

	var m Movie
	if err := r.db.GetContext(ctx, &m, q, NormalizeCode(code)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Movie{}, ErrNotFound
		}
		return Movie{}, fmt.Errorf("select movie %q: %w", code, err)
	}
	return m, nil
}

// Delete removes a catalog entry and reports whether it existed.
func (r *MoviesRepo) Delete(ctx context.Context, code string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE code = $1`, NormalizeCode(code))
	if err != nil {
		return false, fmt.Errorf("delete movie %q: %w", code, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete movie rows: %w", err)
	}
	return affected > 0, nil
}

// List returns a page of active entries ordered by recency, newest first.
func (r *MoviesRepo) List(ctx context.Context, offset, limit int) ([]Movie, error) {
	const q = `
		SELECT id, code, title, description, file_id, kind, download_count, is_active, created_at
		FROM movies WHERE is_active
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2`

	var movies []Movie
	if err := r.db.SelectContext(ctx, &movies, q, offset, limit); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// Count reports the number of active catalog entries.
func (r *MoviesRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM movies WHERE is_active`); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// RecordDownload notes that a user received the entry and bumps the download
// counter once per (user, code) pair. Reports whether this was a first-time
// download.
func (r *MoviesRepo) RecordDownload(ctx context.Context, userID int64, code string) (bool, error) {
	code = NormalizeCode(code)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO movie_downloads (user_id, movie_code, downloaded_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, movie_code) DO NOTHING`, userID, code)
	if err != nil {
		return false, fmt.Errorf("record download %q by %d: %w", code, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record download rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE movies SET download_count = download_count + 1 WHERE code = $1`, code); err != nil {
		return false, fmt.Errorf("bump download count %q: %w", code, err)
	}
	return true, nil
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"kinobot/core/logger"
	"kinobot/internal/apperrors"
	"kinobot/internal/storage"
)

// Catalog manages the movie library keyed by short codes.
type Catalog struct {
	repo *storage.MoviesRepo
}

func NewCatalog(repo *storage.MoviesRepo) *Catalog {
	return &Catalog{repo: repo}
}

// Exists reports whether an active movie already claims the code.
func (s *Catalog) Exists(ctx context.Context, code string) (bool, error) {
	_, err := s.repo.ByCode(ctx, code)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	default:
		return false, apperrors.External("code lookup failed", err)
	}
}

// Create stores a new movie. The code must be unused.
func (s *Catalog) Create(ctx context.Context, m storage.Movie) (storage.Movie, error) {
	created, err := s.repo.Create(ctx, m)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return storage.Movie{}, apperrors.Validation("code already taken")
		}
		return storage.Movie{}, apperrors.External("movie insert failed", err)
	}
	logger.Info(ctx, "service.catalog", "catalog.create",
		slog.String("status", "ok"),
		slog.String("code", created.Code),
		slog.Int64("movie_id", created.ID),
	)
	return created, nil
}

// Get resolves a code to its active movie.
func (s *Catalog) Get(ctx context.Context, code string) (storage.Movie, error) {
	m, err := s.repo.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Movie{}, apperrors.NotFound("movie not found")
		}
		return storage.Movie{}, apperrors.External("movie lookup failed", err)
	}
	return m, nil
}

// Delete removes a movie by code.
func (s *Catalog) Delete(ctx context.Context, code string) error {
	ok, err := s.repo.Delete(ctx, code)
	if err != nil {
		return apperrors.External("movie delete failed", err)
	}
	if !ok {
		return apperrors.NotFound("movie not found")
	}
	logger.Info(ctx, "service.catalog", "catalog.delete",
		slog.String("status", "ok"),
		slog.String("code", code),
	)
	return nil
}

// Page returns one catalog page, newest first, plus the overall total.
// page is zero-based.
func (s *Catalog) Page(ctx context.Context, page, pageSize int) ([]storage.Movie, int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.External("movie count failed", err)
	}
	movies, err := s.repo.List(ctx, page*pageSize, pageSize)
	if err != nil {
		return nil, 0, apperrors.External("movie list failed", err)
	}
	return movies, total, nil
}

// RecordDownload counts a delivery, incrementing the movie's download
// counter only on the user's first request for that code.
func (s *Catalog) RecordDownload(ctx context.Context, userID int64, code string) error {
	first, err := s.repo.RecordDownload(ctx, userID, code)
	if err != nil {
		return apperrors.External("download record failed", err)
	}
	if first {
		logger.Debug(ctx, "service.catalog", "catalog.download",
			slog.Int64("user_id", userID),
			slog.String("code", code),
		)
	}
	return nil
}

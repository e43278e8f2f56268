// Package service wraps the storage repositories with role logic, error
// classification and structured logging.
package service

import (
	"context"
	"errors"
	"log/slog"

	"kinobot/core/logger"
	"kinobot/internal/apperrors"
	"kinobot/internal/storage"
)

// Users manages Telegram identities and their roles.
type Users struct {
	repo         *storage.UsersRepo
	superAdminID int64
}

// NewUsers builds the user service. superAdminID always receives the
// super_admin role on first contact.
func NewUsers(repo *storage.UsersRepo, superAdminID int64) *Users {
	return &Users{repo: repo, superAdminID: superAdminID}
}

// FindOrCreate registers the sender on first contact and refreshes activity.
func (s *Users) FindOrCreate(ctx context.Context, p storage.Profile) (storage.User, error) {
	role := storage.RoleUser
	if p.TelegramID == s.superAdminID {
		role = storage.RoleSuperAdmin
	}
	u, err := s.repo.FindOrCreate(ctx, p, role)
	if err != nil {
		logger.Error(ctx, "service.users", "users.upsert",
			slog.String("status", "fail"),
			slog.Int64("user_id", p.TelegramID),
			slog.String("err", err.Error()),
		)
		return storage.User{}, apperrors.External("user lookup failed", err)
	}
	return u, nil
}

// GetUserByTelegramID fetches one user record.
func (s *Users) GetUserByTelegramID(ctx context.Context, telegramID int64) (storage.User, error) {
	u, err := s.repo.ByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, apperrors.NotFound("user not registered")
		}
		return storage.User{}, apperrors.External("user lookup failed", err)
	}
	return u, nil
}

// IsAdmin reports whether the identity holds the admin or super_admin role.
// Lookup errors map to false.
func (s *Users) IsAdmin(ctx context.Context, telegramID int64) bool {
	u, err := s.repo.ByTelegramID(ctx, telegramID)
	if err != nil {
		return false
	}
	return u.Role == storage.RoleAdmin || u.Role == storage.RoleSuperAdmin
}

// IsSuperAdmin reports whether the identity holds the super_admin role.
func (s *Users) IsSuperAdmin(ctx context.Context, telegramID int64) bool {
	u, err := s.repo.ByTelegramID(ctx, telegramID)
	if err != nil {
		return false
	}
	return u.Role == storage.RoleSuperAdmin
}

// CountActive reports the active-user total shown in the admin menu.
func (s *Users) CountActive(ctx context.Context) (int, error) {
	n, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, apperrors.External("user count failed", err)
	}
	return n, nil
}

// Recipients snapshots the identities of every active user for a broadcast.
func (s *Users) Recipients(ctx context.Context) ([]int64, error) {
	ids, err := s.repo.ActiveIDs(ctx)
	if err != nil {
		return nil, apperrors.External("recipient snapshot failed", err)
	}
	return ids, nil
}

// Admins lists every identity holding the admin role, super admin excluded.
func (s *Users) Admins(ctx context.Context) ([]storage.User, error) {
	admins, err := s.repo.ByRole(ctx, storage.RoleAdmin)
	if err != nil {
		return nil, apperrors.External("admin list failed", err)
	}
	return admins, nil
}

// Promote grants the admin role. The identity must already be a registered
// non-admin user.
func (s *Users) Promote(ctx context.Context, telegramID int64) error {
	u, err := s.repo.ByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound("user not registered")
		}
		return apperrors.External("user lookup failed", err)
	}
	if u.Role != storage.RoleUser {
		return apperrors.NotFound("user already privileged")
	}
	if _, err := s.repo.SetRole(ctx, telegramID, storage.RoleAdmin); err != nil {
		return apperrors.External("role update failed", err)
	}
	logger.Info(ctx, "service.users", "users.promote",
		slog.String("status", "ok"),
		slog.Int64("user_id", telegramID),
	)
	return nil
}

// Demote revokes the admin role. Only plain admins can be demoted; the
// super admin is never touched.
func (s *Users) Demote(ctx context.Context, telegramID int64) error {
	u, err := s.repo.ByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound("admin not found")
		}
		return apperrors.External("user lookup failed", err)
	}
	if u.Role != storage.RoleAdmin {
		return apperrors.NotFound("admin not found")
	}
	if _, err := s.repo.SetRole(ctx, telegramID, storage.RoleUser); err != nil {
		return apperrors.External("role update failed", err)
	}
	logger.Info(ctx, "service.users", "users.demote",
		slog.String("status", "ok"),
		slog.Int64("user_id", telegramID),
	)
	return nil
}

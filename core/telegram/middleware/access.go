package middleware

import (
	"context"

	tele "gopkg.in/telebot.v4"
)

// RoleFunc reports whether the given Telegram identity holds the role this
// middleware protects. Lookup errors must map to false.
type RoleFunc func(ctx context.Context, userID int64) bool

// AccessOptions defines how privileged checks should behave.
type AccessOptions struct {
	Allowed  RoleFunc
	OnReject tele.HandlerFunc
}

// RequireRole ensures only users passing the role check reach downstream
// handlers. A nil Allowed func denies everyone.
func RequireRole(opts AccessOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if opts.Allowed == nil || !opts.Allowed(context.Background(), c.Sender().ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}

package middleware

import (
	"kinobot/core/logger"
	tghelpers "kinobot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// StepGetter is the minimal interface required from an FSM manager.
type StepGetter interface {
	Step(userID int64) string
}

// Step returns a middleware that runs the handler only while the user is in
// the expected FSM step. Updates arriving in any other step are ignored.
func Step(mgr StepGetter, expected string) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID
			current := mgr.Step(userID)
			ctx := tghelpers.BuildContext(c)
			if current == expected {
				logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.match",
					slog.Int64("user_id", userID),
					slog.String("state", current),
					slog.String("expected", expected),
					slog.String("rid", logger.RIDFrom(ctx)),
				)
				return next(c)
			}
			logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.skip",
				slog.Int64("user_id", userID),
				slog.String("state", current),
				slog.String("expected", expected),
				slog.String("rid", logger.RIDFrom(ctx)),
			)
			return nil
		}
	}
}

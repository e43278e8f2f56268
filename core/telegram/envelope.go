package telegram

import (
	"log/slog"

	"kinobot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// EnvelopeResult reports boundary validation of an inbound update.
type EnvelopeResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ValidateEnvelope checks that an update carries a non-zero identifier.
// Rejected envelopes must not reach the router or touch any session.
func ValidateEnvelope(upd tele.Update) EnvelopeResult {
	if upd.ID == 0 {
		return EnvelopeResult{OK: false, Error: "missing update_id"}
	}
	return EnvelopeResult{OK: true}
}

// EnvelopeMiddleware drops updates that fail envelope validation before any
// downstream handler or session lookup runs.
func EnvelopeMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if res := ValidateEnvelope(c.Update()); !res.OK {
			logger.TG.Warn("update rejected",
				slog.String("event", "envelope.reject"),
				slog.String("reason", res.Error),
			)
			return nil
		}
		return next(c)
	}
}

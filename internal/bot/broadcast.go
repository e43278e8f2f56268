package bot

import (
	"context"
	"log/slog"
	"time"

	"kinobot/core/logger"
	"kinobot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

func adMarkup(ad AdPayload) *tele.ReplyMarkup {
	if ad.Button == nil {
		return nil
	}
	return keyboard.SingleURLMarkup(ad.Button.Label, ad.Button.URL)
}

// defaultSendDelay is the fixed pause between consecutive broadcast sends.
// Sequential sends with this delay keep the outbound rate under gateway
// throttling limits.
const defaultSendDelay = 50 * time.Millisecond

// Tally is the advisory delivery count shown to the initiating admin.
type Tally struct {
	Sent   int
	Failed int
}

// Broadcaster delivers one payload to a snapshot of recipients, strictly
// sequentially. Per-recipient failures are counted and never abort the loop;
// context cancellation aborts between sends.
type Broadcaster struct {
	gw    Gateway
	delay time.Duration
}

// NewBroadcaster builds a dispatcher over the gateway with the default
// inter-send delay.
func NewBroadcaster(gw Gateway) *Broadcaster {
	return &Broadcaster{gw: gw, delay: defaultSendDelay}
}

// Text delivers a plain text message to every recipient.
func (b *Broadcaster) Text(ctx context.Context, recipients []int64, text string) Tally {
	return b.run(ctx, recipients, func(id int64) error {
		return b.gw.SendText(ctx, id, text, nil)
	})
}

// Ad delivers a media payload with its optional link button to every
// recipient.
func (b *Broadcaster) Ad(ctx context.Context, recipients []int64, ad AdPayload) Tally {
	markup := adMarkup(ad)
	return b.run(ctx, recipients, func(id int64) error {
		return b.gw.SendMedia(ctx, id, ad.Kind, ad.FileID, ad.Caption, markup)
	})
}

// Preview sends the payload once to the initiating admin. Best-effort, the
// caller logs failures without counting them.
func (b *Broadcaster) Preview(ctx context.Context, adminID int64, ad AdPayload) error {
	return b.gw.SendMedia(ctx, adminID, ad.Kind, ad.FileID, ad.Caption, adMarkup(ad))
}

func (b *Broadcaster) run(ctx context.Context, recipients []int64, send func(id int64) error) Tally {
	start := time.Now()
	var tally Tally
	for _, id := range recipients {
		if ctx.Err() != nil {
			logger.Warn(ctx, "service.broadcast", "broadcast.cancelled",
				slog.Int("sent", tally.Sent),
				slog.Int("failed", tally.Failed),
				slog.Int("remaining", len(recipients)-tally.Sent-tally.Failed),
			)
			break
		}
		if err := send(id); err != nil {
			tally.Failed++
			logger.Debug(ctx, "service.broadcast", "broadcast.send",
				slog.String("status", "fail"),
				slog.Int64("recipient", id),
				slog.String("err", err.Error()),
			)
		} else {
			tally.Sent++
		}
		select {
		case <-ctx.Done():
		case <-time.After(b.delay):
		}
	}
	logger.Info(ctx, "service.broadcast", "broadcast.done",
		slog.Int("sent", tally.Sent),
		slog.Int("failed", tally.Failed),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return tally
}

package bot

import (
	"fmt"

	tghelpers "kinobot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// stepBroadcastText is the terminal step of the plain-text broadcast flow:
// the typed message goes to every active user, then the tally is reported.
func (b *Bot) stepBroadcastText(c tele.Context) error {
	ctx, cancel := b.broadcastCtx(c)
	defer cancel()

	recipients, err := b.users.Recipients(ctx)
	if err != nil {
		return b.failFlow(c, err)
	}
	tally := b.caster.Text(ctx, recipients, c.Text())

	if err := tghelpers.SendText(c, fmt.Sprintf(msgBroadcastDone, tally.Sent, tally.Failed)); err != nil {
		return err
	}
	return b.finishFlow(c)
}

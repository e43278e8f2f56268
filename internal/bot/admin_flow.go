package bot

import (
	tghelpers "kinobot/core/telegram/helpers"
	"kinobot/internal/apperrors"

	tele "gopkg.in/telebot.v4"
)

// stepAdminAdd promotes the given Telegram ID. Non-numeric input replies
// correctively and keeps the step.
func (b *Bot) stepAdminAdd(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, ok := parseNumericID(c.Text())
	if !ok {
		return tghelpers.SendText(c, msgBadNumericID)
	}

	err := b.users.Promote(ctx, id)
	switch {
	case err == nil:
		if err := tghelpers.SendText(c, msgAdminAdded); err != nil {
			return err
		}
	case apperrors.IsNotFound(err):
		if err := tghelpers.SendText(c, msgAdminAddFailed); err != nil {
			return err
		}
	default:
		return b.failFlow(c, err)
	}
	return b.finishFlow(c)
}

func (b *Bot) stepAdminRemove(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, ok := parseNumericID(c.Text())
	if !ok {
		return tghelpers.SendText(c, msgBadNumericID)
	}

	err := b.users.Demote(ctx, id)
	switch {
	case err == nil:
		if err := tghelpers.SendText(c, msgAdminRemoved); err != nil {
			return err
		}
	case apperrors.IsNotFound(err):
		if err := tghelpers.SendText(c, msgAdminNotFound); err != nil {
			return err
		}
	default:
		return b.failFlow(c, err)
	}
	return b.finishFlow(c)
}

package bot

import (
	"strings"

	tghelpers "kinobot/core/telegram/helpers"
	"kinobot/internal/apperrors"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// stepChannelInfo accepts a "channel_id|name|link" record. A malformed
// record replies correctively and keeps the step.
func (b *Bot) stepChannelInfo(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	channelID, name, inviteLink, ok := parseChannelRecord(c.Text())
	if !ok {
		return tghelpers.SendText(c, msgChannelBadFormat)
	}

	_, err := b.channels.Create(ctx, storage.Channel{
		ChannelID:  channelID,
		Name:       name,
		InviteLink: inviteLink,
	})
	if err != nil {
		return b.failFlow(c, err)
	}
	if err := tghelpers.SendText(c, msgChannelAdded); err != nil {
		return err
	}
	return b.finishFlow(c)
}

func (b *Bot) stepChannelDelete(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	err := b.channels.Delete(ctx, strings.TrimSpace(c.Text()))
	switch {
	case err == nil:
		if err := tghelpers.SendText(c, msgChannelDeleted); err != nil {
			return err
		}
	case apperrors.IsNotFound(err):
		if err := tghelpers.SendText(c, msgChannelNotFound); err != nil {
			return err
		}
	default:
		return b.failFlow(c, err)
	}
	return b.finishFlow(c)
}

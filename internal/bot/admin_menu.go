package bot

import (
	"fmt"
	"strings"

	"kinobot/core/telegram/format"
	tghelpers "kinobot/core/telegram/helpers"
	"kinobot/internal/apperrors"

	tele "gopkg.in/telebot.v4"
)

// Menu label handlers. Each one either answers immediately or opens a
// multi-step flow by priming the session step.

func (b *Bot) onUserCount(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	n, err := b.users.CountActive(ctx)
	if err != nil {
		return b.failFlow(c, err)
	}
	if err := tghelpers.SendText(c, fmt.Sprintf(msgUserCount, n)); err != nil {
		return err
	}
	return b.finishFlow(c)
}

func (b *Bot) onAddMovie(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepCatalogMedia)
	return tghelpers.SendText(c, msgSendMovieFile)
}

func (b *Bot) onDeleteMovie(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepDeleteCode)
	return tghelpers.SendText(c, msgDeleteMoviePrompt)
}

func (b *Bot) onAddChannel(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepChannelInfo)
	return tghelpers.SendText(c, msgChannelFormat)
}

func (b *Bot) onDeleteChannel(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepChannelDelete)
	return tghelpers.SendText(c, msgChannelDeletePrompt)
}

func (b *Bot) onSendAd(c tele.Context) error {
	userID := c.Sender().ID
	b.sessions.MergeScratch(userID, map[string]interface{}{keyAdPayload: AdPayload{}})
	b.sessions.SetStep(userID, StepAdType)
	return tghelpers.SendText(c, msgAdTypePrompt, &tele.SendOptions{ReplyMarkup: AdTypeKeyboard()})
}

func (b *Bot) onBroadcast(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepBroadcastText)
	return tghelpers.SendText(c, msgBroadcastPrompt)
}

func (b *Bot) onAddAdmin(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if !b.users.IsSuperAdmin(ctx, c.Sender().ID) {
		_ = tghelpers.SendText(c, msgSuperAdminOnly)
		return apperrors.Permission("add admin requires super_admin")
	}
	b.sessions.SetStep(c.Sender().ID, StepAdminAdd)
	return tghelpers.SendText(c, msgAdminAddPrompt)
}

func (b *Bot) onRemoveAdmin(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if !b.users.IsSuperAdmin(ctx, c.Sender().ID) {
		_ = tghelpers.SendText(c, msgSuperAdminOnly)
		return apperrors.Permission("remove admin requires super_admin")
	}
	admins, err := b.users.Admins(ctx)
	if err != nil {
		return b.failFlow(c, err)
	}
	prompt := msgAdminRemovePrompt
	if len(admins) > 0 {
		var list strings.Builder
		list.WriteString("\n")
		for _, a := range admins {
			fmt.Fprintf(&list, "\n• %d %s", a.TelegramID, format.DerefString(a.Username, a.FirstName))
		}
		prompt += list.String()
	}
	b.sessions.SetStep(c.Sender().ID, StepAdminRemove)
	return tghelpers.SendText(c, prompt)
}

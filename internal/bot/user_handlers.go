package bot

import (
	"fmt"
	"log/slog"

	"kinobot/core/logger"
	tghelpers "kinobot/core/telegram/helpers"
	"kinobot/internal/apperrors"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

func profileFrom(sender *tele.User) storage.Profile {
	p := storage.Profile{
		TelegramID: sender.ID,
		FirstName:  sender.FirstName,
	}
	if sender.LastName != "" {
		last := sender.LastName
		p.LastName = &last
	}
	if sender.Username != "" {
		username := sender.Username
		p.Username = &username
	}
	return p
}

// onStart registers the sender, clears any in-flight dialog and shows the
// role-appropriate entry point.
func (b *Bot) onStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	user, err := b.users.FindOrCreate(ctx, profileFrom(c.Sender()))
	if err != nil {
		_ = tghelpers.SendText(c, msgGenericError)
		return err
	}
	b.sessions.Reset(user.TelegramID)

	switch user.Role {
	case storage.RoleSuperAdmin:
		return tghelpers.SendText(c, msgWelcomeSuperAdmin, &tele.SendOptions{ReplyMarkup: SuperAdminKeyboard()})
	case storage.RoleAdmin:
		return tghelpers.SendText(c, msgWelcomeAdmin, &tele.SendOptions{ReplyMarkup: AdminKeyboard()})
	default:
		return b.promptSubscription(c)
	}
}

// onUnmatchedText handles text that matched no menu label, no command and no
// active step. For regular users this is a movie-code request behind the
// subscription gate; for admins it is silently ignored.
func (b *Bot) onUnmatchedText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	user, err := b.users.FindOrCreate(ctx, profileFrom(c.Sender()))
	if err != nil {
		_ = tghelpers.SendText(c, msgGenericError)
		return err
	}
	if user.Role != storage.RoleUser {
		return nil
	}
	if !b.gate.IsFullyJoined(ctx, user.TelegramID) {
		return b.promptSubscription(c)
	}
	return b.sendMovieByCode(c, user.TelegramID, c.Text())
}

// sendMovieByCode resolves a code and delivers the stored media with the
// download count appended to the caption.
func (b *Bot) sendMovieByCode(c tele.Context, userID int64, text string) error {
	ctx := tghelpers.BuildContext(c)
	code := storage.NormalizeCode(text)

	movie, err := b.catalog.Get(ctx, code)
	switch {
	case apperrors.IsNotFound(err):
		return tghelpers.SendText(c, msgMovieNotFound)
	case err != nil:
		_ = tghelpers.SendText(c, msgGenericError)
		return err
	}

	caption := movie.Description + fmt.Sprintf(msgDownloadsSuffix, movie.DownloadCount)
	if err := b.gw.SendMedia(ctx, userID, movie.Kind, movie.FileID, caption, nil); err != nil {
		_ = tghelpers.SendText(c, msgGenericError)
		return err
	}
	if err := b.catalog.RecordDownload(ctx, userID, code); err != nil {
		logger.Warn(ctx, "service.catalog", "catalog.download",
			slog.String("status", "fail"),
			slog.String("code", code),
			slog.String("err", err.Error()),
		)
	}
	return nil
}

// promptSubscription either invites the user to send a code or renders the
// gate keyboard listing every channel still to join.
func (b *Bot) promptSubscription(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	unjoined, err := b.gate.UnjoinedChannels(ctx, c.Sender().ID)
	if err != nil {
		_ = tghelpers.SendText(c, msgGenericError)
		return err
	}
	if len(unjoined) == 0 {
		return tghelpers.SendText(c, msgSendCode)
	}
	return tghelpers.SendText(c, msgSubscribePrompt, &tele.SendOptions{ReplyMarkup: SubscriptionKeyboard(unjoined)})
}

// onCheckSubscription re-runs the gate when the user presses the re-check
// button, replacing the stale gate message.
func (b *Bot) onCheckSubscription(c tele.Context) error {
	_ = c.Delete()
	return b.promptSubscription(c)
}

package bot

import (
	"fmt"
	"log/slog"
	"strings"

	"kinobot/core/logger"
	tghelpers "kinobot/core/telegram/helpers"
	"kinobot/internal/apperrors"

	tele "gopkg.in/telebot.v4"
)

// onAdType records the chosen ad media kind and asks for the media itself.
func (b *Bot) onAdType(kind string) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID
		ad, ok := adPayloadFrom(b.sessions, userID)
		if !ok {
			return b.failFlow(c, apperrors.NotFound("ad payload missing"))
		}
		ad.Kind = kind
		b.sessions.MergeScratch(userID, map[string]interface{}{keyAdPayload: ad})
		b.sessions.SetStep(userID, StepAdMedia)
		return tghelpers.SendText(c, msgAdMediaPrompt)
	}
}

// adMediaIntake stores the ad media. The received kind must match the kind
// chosen earlier; a mismatch replies correctively and keeps the step.
func (b *Bot) adMediaIntake(c tele.Context, kind string) error {
	userID := c.Sender().ID
	ad, ok := adPayloadFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("ad payload missing"))
	}
	if ad.Kind != kind {
		return tghelpers.SendText(c, msgAdKindMismatch)
	}

	fileID, caption, ok := mediaRef(c, kind)
	if !ok {
		return tghelpers.SendText(c, msgAdMediaMissing)
	}
	ad.FileID = fileID
	ad.Caption = caption
	b.sessions.MergeScratch(userID, map[string]interface{}{keyAdPayload: ad})

	if ad.Caption == "" {
		b.sessions.SetStep(userID, StepAdText)
		return tghelpers.SendText(c, msgAdTextPrompt)
	}
	return b.askButtonChoice(c)
}

func (b *Bot) stepAdText(c tele.Context) error {
	userID := c.Sender().ID
	ad, ok := adPayloadFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("ad payload missing"))
	}
	ad.Caption = c.Text()
	b.sessions.MergeScratch(userID, map[string]interface{}{keyAdPayload: ad})
	return b.askButtonChoice(c)
}

func (b *Bot) askButtonChoice(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepButtonChoice)
	return tghelpers.SendText(c, msgButtonChoice, &tele.SendOptions{ReplyMarkup: ButtonChoiceKeyboard()})
}

func (b *Bot) onButtonYes(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepButtonLabel)
	return tghelpers.SendText(c, msgButtonLabel)
}

func (b *Bot) onButtonNo(c tele.Context) error {
	return b.dispatchAd(c)
}

func (b *Bot) stepButtonLabel(c tele.Context) error {
	userID := c.Sender().ID
	label := strings.TrimSpace(c.Text())
	if label == "" {
		return tghelpers.SendText(c, msgButtonLabel)
	}
	ad, ok := adPayloadFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("ad payload missing"))
	}
	ad.Button = &AdButton{Label: label}
	b.sessions.MergeScratch(userID, map[string]interface{}{keyAdPayload: ad})
	b.sessions.SetStep(userID, StepButtonURL)
	return tghelpers.SendText(c, msgButtonURL)
}

// stepButtonURL validates the button target. A rejected URL keeps the step.
func (b *Bot) stepButtonURL(c tele.Context) error {
	userID := c.Sender().ID
	url, ok := normalizeURL(c.Text())
	if !ok {
		return tghelpers.SendText(c, msgBadURL)
	}
	ad, adOK := adPayloadFrom(b.sessions, userID)
	if !adOK || ad.Button == nil {
		return b.failFlow(c, apperrors.NotFound("ad payload missing"))
	}
	ad.Button.URL = url
	b.sessions.MergeScratch(userID, map[string]interface{}{keyAdPayload: ad})
	return b.dispatchAd(c)
}

// dispatchAd previews the ad to the initiating admin, then delivers it to
// the recipient snapshot and reports the tally.
func (b *Bot) dispatchAd(c tele.Context) error {
	userID := c.Sender().ID
	ad, ok := adPayloadFrom(b.sessions, userID)
	if !ok || ad.FileID == "" {
		return b.failFlow(c, apperrors.NotFound("ad payload missing"))
	}

	ctx, cancel := b.broadcastCtx(c)
	defer cancel()

	if err := tghelpers.SendText(c, msgAdPreview); err != nil {
		return err
	}
	if err := b.caster.Preview(ctx, userID, ad); err != nil {
		logger.Warn(ctx, "service.broadcast", "broadcast.preview",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
	}
	if err := tghelpers.SendText(c, msgAdStarting); err != nil {
		return err
	}

	recipients, err := b.users.Recipients(ctx)
	if err != nil {
		return b.failFlow(c, err)
	}
	tally := b.caster.Ad(ctx, recipients, ad)

	if err := tghelpers.SendText(c, fmt.Sprintf(msgAdDone, tally.Sent, tally.Failed)); err != nil {
		return err
	}
	return b.finishFlow(c)
}

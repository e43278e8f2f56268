package bot

import (
	tghelpers "kinobot/core/telegram/helpers"
	"kinobot/internal/apperrors"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// onMedia routes an inbound media update by the sender's current step.
// Media from non-admins and media outside a media-expecting step is ignored.
func (b *Bot) onMedia(kind string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		userID := c.Sender().ID
		if !b.users.IsAdmin(ctx, userID) {
			return nil
		}
		switch b.sessions.Step(userID) {
		case StepCatalogMedia:
			return b.catalogMediaIntake(c, kind)
		case StepAdMedia:
			return b.adMediaIntake(c, kind)
		}
		return nil
	}
}

// mediaRef extracts the gateway file handle and caption from the update.
func mediaRef(c tele.Context, kind string) (fileID, caption string, ok bool) {
	msg := c.Message()
	if msg == nil {
		return "", "", false
	}
	switch kind {
	case storage.KindPhoto:
		if msg.Photo != nil {
			fileID = msg.Photo.FileID
		}
	case storage.KindVideo:
		if msg.Video != nil {
			fileID = msg.Video.FileID
		}
	case storage.KindAnimation:
		if msg.Animation != nil {
			fileID = msg.Animation.FileID
		}
	}
	if fileID == "" {
		return "", "", false
	}
	return fileID, msg.Caption, true
}

func (b *Bot) catalogMediaIntake(c tele.Context, kind string) error {
	userID := c.Sender().ID
	fileID, caption, ok := mediaRef(c, kind)
	if !ok {
		return tghelpers.SendText(c, msgAdMediaMissing)
	}
	b.sessions.MergeScratch(userID, map[string]interface{}{
		keyPendingMedia: PendingMedia{
			FileID:          fileID,
			Kind:            kind,
			OriginalCaption: caption,
		},
	})
	b.sessions.SetStep(userID, StepCaptionChoice)
	return tghelpers.SendText(c, msgCaptionChoice, &tele.SendOptions{ReplyMarkup: CaptionChoiceKeyboard()})
}

// Caption decisions. All three funnel into the code step with the decided
// caption stashed in scratch.

func (b *Bot) onCaptionKeep(c tele.Context) error {
	userID := c.Sender().ID
	pm, ok := pendingMediaFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("pending media missing"))
	}
	pm.ChosenCaption = pm.OriginalCaption
	b.sessions.MergeScratch(userID, map[string]interface{}{keyPendingMedia: pm})
	b.sessions.SetStep(userID, StepItemCode)
	return tghelpers.SendText(c, msgEnterCode)
}

func (b *Bot) onCaptionNew(c tele.Context) error {
	b.sessions.SetStep(c.Sender().ID, StepNewCaption)
	return tghelpers.SendText(c, msgEnterNewCaption)
}

func (b *Bot) onCaptionNone(c tele.Context) error {
	userID := c.Sender().ID
	pm, ok := pendingMediaFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("pending media missing"))
	}
	pm.ChosenCaption = ""
	b.sessions.MergeScratch(userID, map[string]interface{}{keyPendingMedia: pm})
	b.sessions.SetStep(userID, StepItemCode)
	return tghelpers.SendText(c, msgEnterCode)
}

func (b *Bot) stepNewCaption(c tele.Context) error {
	userID := c.Sender().ID
	pm, ok := pendingMediaFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("pending media missing"))
	}
	pm.ChosenCaption = c.Text()
	b.sessions.MergeScratch(userID, map[string]interface{}{keyPendingMedia: pm})
	b.sessions.SetStep(userID, StepItemCode)
	return tghelpers.SendText(c, msgEnterCode)
}

// stepItemCode accepts the catalog code after a uniqueness check against the
// canonical lower-cased form. A taken code keeps the step.
func (b *Bot) stepItemCode(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	code := storage.NormalizeCode(c.Text())
	if code == "" {
		return tghelpers.SendText(c, msgEnterCode)
	}
	taken, err := b.catalog.Exists(ctx, code)
	if err != nil {
		return b.failFlow(c, err)
	}
	if taken {
		return tghelpers.SendText(c, msgCodeTaken)
	}

	pm, ok := pendingMediaFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("pending media missing"))
	}
	pm.Code = code
	b.sessions.MergeScratch(userID, map[string]interface{}{keyPendingMedia: pm})
	b.sessions.SetStep(userID, StepItemTitle)
	return tghelpers.SendText(c, msgEnterTitle)
}

// stepItemTitle is the terminal catalog step: the entry is persisted with
// the chosen caption plus the bot-username line, then the flow resets.
func (b *Bot) stepItemTitle(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	pm, ok := pendingMediaFrom(b.sessions, userID)
	if !ok {
		return b.failFlow(c, apperrors.NotFound("pending media missing"))
	}

	description := "@" + b.gw.Username()
	if pm.ChosenCaption != "" {
		description = pm.ChosenCaption + "\n\n@" + b.gw.Username()
	}

	_, err := b.catalog.Create(ctx, storage.Movie{
		Code:        pm.Code,
		Title:       c.Text(),
		Description: description,
		FileID:      pm.FileID,
		Kind:        pm.Kind,
	})
	if err != nil {
		return b.failFlow(c, err)
	}
	if err := tghelpers.SendText(c, msgMovieAdded); err != nil {
		return err
	}
	return b.finishFlow(c)
}

func (b *Bot) stepDeleteCode(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	err := b.catalog.Delete(ctx, storage.NormalizeCode(c.Text()))
	switch {
	case err == nil:
		if err := tghelpers.SendText(c, msgMovieDeleted); err != nil {
			return err
		}
	case apperrors.IsNotFound(err):
		if err := tghelpers.SendText(c, msgMovieNotFound); err != nil {
			return err
		}
	default:
		return b.failFlow(c, err)
	}
	return b.finishFlow(c)
}

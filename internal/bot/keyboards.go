package bot

import (
	"kinobot/core/telegram/keyboard"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// cbCheckSubscription is the callback key behind the re-check button on the
// subscription gate keyboard.
const cbCheckSubscription = "check_subscription"

// cbCatalogPage is the callback key carrying page-change signals for the
// catalog listing.
const cbCatalogPage = "catalog_page"

// SuperAdminKeyboard is the reply menu shown to the super admin.
func SuperAdminKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{LabelUserCount, LabelAddMovie},
		[]string{LabelDeleteMovie, LabelSendAd},
		[]string{LabelBroadcast, LabelAddChannel},
		[]string{LabelDeleteChannel, LabelAddAdmin},
		[]string{LabelRemoveAdmin, LabelListMovies},
		[]string{LabelListChannels},
	)
}

// AdminKeyboard is the reply menu shown to regular admins. Super-admin-only
// labels are absent.
func AdminKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{LabelAddMovie, LabelDeleteMovie},
		[]string{LabelAddChannel, LabelDeleteChannel},
		[]string{LabelSendAd, LabelBroadcast},
		[]string{LabelUserCount, LabelListChannels},
		[]string{LabelListMovies},
	)
}

// CaptionChoiceKeyboard offers the three caption decisions after catalog
// media intake.
func CaptionChoiceKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{LabelCaptionKeep},
		[]string{LabelCaptionNew},
		[]string{LabelCaptionNone},
	)
}

// ButtonChoiceKeyboard asks whether the ad should carry a link button.
func ButtonChoiceKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{LabelButtonYes},
		[]string{LabelButtonNo},
	)
}

// AdTypeKeyboard offers the supported ad media kinds.
func AdTypeKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{LabelAdPhoto, LabelAdVideo, LabelAdGIF},
	)
}

// SubscriptionKeyboard renders one invite-link button per unjoined channel
// plus a re-check action.
func SubscriptionKeyboard(unjoined []storage.Channel) *tele.ReplyMarkup {
	urls := make([]keyboard.URLBtn, 0, len(unjoined))
	for _, ch := range unjoined {
		urls = append(urls, keyboard.URLBtn{
			Text: "❌ " + ch.Name,
			URL:  ch.InviteLink,
		})
	}
	return keyboard.URLButtons(urls, keyboard.InlineBtn{
		Text:   LabelCheckSubscription,
		Unique: cbCheckSubscription,
	})
}

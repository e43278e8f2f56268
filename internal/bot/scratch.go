package bot

import "kinobot/core/telegram/state"

// Scratch keys used across multi-step flows. Values are typed sub-records so
// each step handler is total over its expected shape.
const (
	keyPendingMedia = "pending_media"
	keyAdPayload    = "ad_payload"
	keyListPage     = "list_page"
)

// PendingMedia accumulates catalog intake fields until the item is persisted.
type PendingMedia struct {
	FileID          string
	Kind            string
	OriginalCaption string
	ChosenCaption   string
	Code            string
}

// AdButton is the optional single link button attached to an ad.
type AdButton struct {
	Label string
	URL   string
}

// AdPayload accumulates ad fields until the broadcast dispatches it, then is
// discarded with the session reset.
type AdPayload struct {
	FileID  string
	Kind    string
	Caption string
	Button  *AdButton
}

func pendingMediaFrom(mgr state.Manager, userID int64) (PendingMedia, bool) {
	v, ok := mgr.Scratch(userID, keyPendingMedia)
	if !ok {
		return PendingMedia{}, false
	}
	pm, ok := v.(PendingMedia)
	return pm, ok
}

func adPayloadFrom(mgr state.Manager, userID int64) (AdPayload, bool) {
	v, ok := mgr.Scratch(userID, keyAdPayload)
	if !ok {
		return AdPayload{}, false
	}
	ad, ok := v.(AdPayload)
	return ad, ok
}

func listPageFrom(mgr state.Manager, userID int64) int {
	v, ok := mgr.Scratch(userID, keyListPage)
	if !ok {
		return 1
	}
	page, ok := v.(int)
	if !ok || page < 1 {
		return 1
	}
	return page
}

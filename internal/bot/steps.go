package bot

import "kinobot/core/telegram/state"

// Conversation steps. Every multi-turn admin dialog advances through these;
// the idle step means the next text is interpreted as a menu label or, for
// regular users, a movie code.
const (
	StepCatalogMedia  state.State = "catalog_media"
	StepCaptionChoice state.State = "caption_choice"
	StepNewCaption    state.State = "new_caption"
	StepItemCode      state.State = "item_code"
	StepItemTitle     state.State = "item_title"
	StepDeleteCode    state.State = "delete_code"

	StepChannelInfo   state.State = "channel_info"
	StepChannelDelete state.State = "channel_delete"

	StepAdType        state.State = "ad_type"
	StepAdMedia       state.State = "ad_media"
	StepAdText        state.State = "ad_text"
	StepButtonChoice  state.State = "button_choice"
	StepButtonLabel   state.State = "button_label"
	StepButtonURL     state.State = "button_url"
	StepBroadcastText state.State = "broadcast_text"

	StepAdminAdd    state.State = "admin_add"
	StepAdminRemove state.State = "admin_remove"

	StepViewingList state.State = "viewing_list"
)

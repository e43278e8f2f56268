package bot

import (
	"fmt"
	"strings"

	"kinobot/core/telegram/callbacks"
	tghelpers "kinobot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// onListMovies opens the paginated catalog listing. The page the admin last
// viewed is kept in session scratch, so re-entering the listing resumes
// where they left off.
func (b *Bot) onListMovies(c tele.Context) error {
	userID := c.Sender().ID
	page := listPageFrom(b.sessions, userID)
	return b.showCatalogPage(c, page, false)
}

// onCatalogPage handles the navigation callbacks, re-rendering the listing
// in place.
func (b *Bot) onCatalogPage(c tele.Context) error {
	page, ok := parsePageSignal(callbacks.CallbackPayload(c))
	if !ok {
		return nil
	}
	return b.showCatalogPage(c, page, true)
}

// showCatalogPage renders one catalog page. A control activation edits the
// existing message; an initial listing request sends a fresh one.
func (b *Bot) showCatalogPage(c tele.Context, page int, edit bool) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	movies, total, err := b.catalog.Page(ctx, page-1, catalogPageSize)
	if err != nil {
		return b.failFlow(c, err)
	}
	if total == 0 {
		b.sessions.Reset(userID)
		return tghelpers.SendText(c, msgNoMovies)
	}

	pages := totalPages(total, catalogPageSize)
	if page > pages {
		page = pages
		movies, _, err = b.catalog.Page(ctx, page-1, catalogPageSize)
		if err != nil {
			return b.failFlow(c, err)
		}
	}

	b.sessions.SetStep(userID, StepViewingList)
	b.sessions.MergeScratch(userID, map[string]interface{}{keyListPage: page})

	body := renderCatalogPage(movies, page, pages, total)
	markup := catalogPageMarkup(page, pages)
	if edit {
		return tghelpers.EditMD(c, body, markup)
	}
	return tghelpers.SendMD(c, body, markup)
}

// onListChannels prints the active subscription channels.
func (b *Bot) onListChannels(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	channels, err := b.channels.Active(ctx)
	if err != nil {
		return b.failFlow(c, err)
	}
	if len(channels) == 0 {
		return tghelpers.SendText(c, msgNoChannels)
	}
	var body strings.Builder
	body.WriteString("📺 Kanallar:\n")
	for i, ch := range channels {
		fmt.Fprintf(&body, "\n%d. %s (%s)\n%s", i+1, ch.Name, ch.ChannelID, ch.InviteLink)
	}
	return tghelpers.SendText(c, body.String())
}

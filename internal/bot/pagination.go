package bot

import (
	"fmt"
	"strconv"
	"strings"

	"kinobot/core/telegram/format"
	"kinobot/core/telegram/keyboard"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// catalogPageSize bounds the catalog listing width.
const catalogPageSize = 10

// totalPages computes the page count for a catalog of the given size.
func totalPages(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// pageControls decides which navigation buttons a page shows: none on a
// single-page listing, next-only on the first page, prev-only on the last,
// both in between.
type pageControls struct {
	Prev bool
	Next bool
}

func controlsFor(page, pages int) pageControls {
	if pages <= 1 {
		return pageControls{}
	}
	return pageControls{
		Prev: page > 1,
		Next: page < pages,
	}
}

// pageSignal encodes a page-change callback payload.
func pageSignal(page int) string {
	return "p" + strconv.Itoa(page)
}

// parsePageSignal decodes a "p<N>" payload.
func parsePageSignal(payload string) (int, bool) {
	if !strings.HasPrefix(payload, "p") {
		return 0, false
	}
	page, err := strconv.Atoi(payload[1:])
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// renderCatalogPage builds the Markdown listing body for one page.
func renderCatalogPage(movies []storage.Movie, page, pages, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Kinolar (%d ta), %d/%d-sahifa:\n", total, page, pages)
	offset := (page - 1) * catalogPageSize
	for i, m := range movies {
		title, err := format.EscapeMarkdown(m.Title, format.MarkdownV1, "")
		if err != nil {
			title = m.Title
		}
		fmt.Fprintf(&b, "\n%d. `%s` - %s (📥 %d)", offset+i+1, m.Code, title, m.DownloadCount)
	}
	return b.String()
}

// catalogPageMarkup builds the navigation keyboard for a page, or nil when
// no controls apply.
func catalogPageMarkup(page, pages int) *tele.ReplyMarkup {
	ctrl := controlsFor(page, pages)
	var row []keyboard.InlineBtn
	if ctrl.Prev {
		row = append(row, keyboard.InlineBtn{
			Text:   "⬅️ Oldingi",
			Unique: cbCatalogPage,
			Data:   pageSignal(page - 1),
		})
	}
	if ctrl.Next {
		row = append(row, keyboard.InlineBtn{
			Text:   "Keyingi ➡️",
			Unique: cbCatalogPage,
			Data:   pageSignal(page + 1),
		})
	}
	if len(row) == 0 {
		return nil
	}
	return keyboard.InlineButtonsRows(row)
}

package bot

import (
	"strconv"
	"strings"
)

// parseChannelRecord splits a "channel_id|name|link" record, trimming each
// field. It reports false when fewer than three non-empty fields are present.
func parseChannelRecord(text string) (channelID, name, inviteLink string, ok bool) {
	parts := strings.Split(text, "|")
	if len(parts) < 3 {
		return "", "", "", false
	}
	channelID = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	inviteLink = strings.TrimSpace(parts[2])
	if channelID == "" || name == "" || inviteLink == "" {
		return "", "", "", false
	}
	return channelID, name, inviteLink, true
}

// normalizeURL validates a button target. http and https URLs pass as-is;
// a bare t.me link gets https:// prepended; anything else is rejected.
func normalizeURL(raw string) (string, bool) {
	url := strings.TrimSpace(raw)
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url, true
	}
	if strings.Contains(url, "t.me/") {
		return "https://" + url, true
	}
	return "", false
}

// parseNumericID parses a user-supplied Telegram identifier.
func parseNumericID(text string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

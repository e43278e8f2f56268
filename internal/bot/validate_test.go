package bot

import "testing"

func TestParseChannelRecord(t *testing.T) {
	channelID, name, link, ok := parseChannelRecord("-100123|Name|https://t.me/x")
	if !ok {
		t.Fatal("valid record rejected")
	}
	if channelID != "-100123" || name != "Name" || link != "https://t.me/x" {
		t.Fatalf("unexpected fields: %q %q %q", channelID, name, link)
	}
}

func TestParseChannelRecordTrimsFields(t *testing.T) {
	channelID, name, link, ok := parseChannelRecord(" -100123 | My Channel | t.me/x ")
	if !ok {
		t.Fatal("padded record rejected")
	}
	if channelID != "-100123" || name != "My Channel" || link != "t.me/x" {
		t.Fatalf("fields not trimmed: %q %q %q", channelID, name, link)
	}
}

func TestParseChannelRecordRejectsShortRecords(t *testing.T) {
	for _, raw := range []string{"-100123|Name", "-100123", "", "a||b", "|x|y"} {
		if _, _, _, ok := parseChannelRecord(raw); ok {
			t.Errorf("parseChannelRecord(%q) accepted", raw)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://example.com", "https://example.com", true},
		{"http://example.com", "http://example.com", true},
		{"t.me/foo", "https://t.me/foo", true},
		{"  t.me/foo  ", "https://t.me/foo", true},
		{"ftp://x", "", false},
		{"example.com", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := normalizeURL(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("normalizeURL(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseNumericID(t *testing.T) {
	id, ok := parseNumericID(" 123456789 ")
	if !ok || id != 123456789 {
		t.Fatalf("parseNumericID = %d, %v", id, ok)
	}
	for _, bad := range []string{"abc", "12a", "", "1.5"} {
		if _, ok := parseNumericID(bad); ok {
			t.Errorf("parseNumericID(%q) accepted", bad)
		}
	}
}

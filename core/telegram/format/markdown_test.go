package format

import "testing"

func TestEscapeMarkdownV1(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My_Movie", `My\_Movie`},
		{"a*b", `a\*b`},
		{"x[y", `x\[y`},
		{"a`b", "a\\`b"},
		{`a\b`, `a\\b`},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		got, err := EscapeMarkdown(tc.in, MarkdownV1, "")
		if err != nil {
			t.Fatalf("EscapeMarkdown(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeMarkdownV2KeepsCharacter(t *testing.T) {
	got, err := EscapeMarkdown("a.b-c", MarkdownV2, "")
	if err != nil {
		t.Fatal(err)
	}
	// The escaped character itself must survive behind the backslash.
	if got != `a\.b\-c` {
		t.Fatalf("EscapeMarkdown V2 = %q, want %q", got, `a\.b\-c`)
	}
}

func TestEscapeMarkdownUnsupportedVersion(t *testing.T) {
	if _, err := EscapeMarkdown("x", 3, ""); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

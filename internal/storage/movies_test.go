package storage

import "testing"

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ABC123", "abc123"},
		{"  Film42  ", "film42"},
		{"qwe", "qwe"},
		{"\tKINO\n", "kino"},
	}
	for _, tc := range cases {
		if got := NormalizeCode(tc.in); got != tc.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

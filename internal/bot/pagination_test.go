package bot

import (
	"strings"
	"testing"

	"kinobot/internal/storage"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{30, 3},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, catalogPageSize); got != tc.want {
			t.Errorf("totalPages(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestControlsFor(t *testing.T) {
	// 25 items, 3 pages: next-only on page 1, both on page 2, prev-only on
	// page 3.
	pages := totalPages(25, catalogPageSize)
	if pages != 3 {
		t.Fatalf("totalPages(25) = %d, want 3", pages)
	}

	cases := []struct {
		page     int
		wantPrev bool
		wantNext bool
	}{
		{1, false, true},
		{2, true, true},
		{3, true, false},
	}
	for _, tc := range cases {
		ctrl := controlsFor(tc.page, pages)
		if ctrl.Prev != tc.wantPrev || ctrl.Next != tc.wantNext {
			t.Errorf("controlsFor(%d, %d) = %+v, want prev=%v next=%v",
				tc.page, pages, ctrl, tc.wantPrev, tc.wantNext)
		}
	}
}

func TestControlsForSinglePage(t *testing.T) {
	ctrl := controlsFor(1, 1)
	if ctrl.Prev || ctrl.Next {
		t.Fatalf("single page listing must have no controls, got %+v", ctrl)
	}
	if catalogPageMarkup(1, 1) != nil {
		t.Fatal("single page listing must have nil markup")
	}
}

func TestPageSignalRoundTrip(t *testing.T) {
	if got := pageSignal(3); got != "p3" {
		t.Fatalf("pageSignal(3) = %q, want %q", got, "p3")
	}
	page, ok := parsePageSignal("p7")
	if !ok || page != 7 {
		t.Fatalf("parsePageSignal(p7) = %d, %v", page, ok)
	}
	for _, bad := range []string{"", "7", "p", "p0", "px", "q3"} {
		if _, ok := parsePageSignal(bad); ok {
			t.Errorf("parsePageSignal(%q) accepted", bad)
		}
	}
}

func TestRenderCatalogPageNumbersFromOffset(t *testing.T) {
	movies := []storage.Movie{
		{Code: "abc", Title: "First"},
		{Code: "def", Title: "Second"},
	}
	body := renderCatalogPage(movies, 2, 3, 22)
	if !strings.Contains(body, "11. `abc`") {
		t.Fatalf("page 2 must continue numbering at 11, got:\n%s", body)
	}
	if !strings.Contains(body, "12. `def`") {
		t.Fatalf("missing second entry, got:\n%s", body)
	}
	if !strings.Contains(body, "2/3-sahifa") {
		t.Fatalf("missing page header, got:\n%s", body)
	}
}

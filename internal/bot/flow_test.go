package bot

import (
	"testing"

	"kinobot/internal/storage"
)

// Every rejected flow input must reply correctively and leave the session on
// the same step, so the admin can simply retry.

func TestButtonURLRejectedInputKeepsStep(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{1: storage.RoleAdmin}}
	b := newTestBot(users, nil)

	b.sessions.SetStep(1, StepButtonURL)
	b.sessions.MergeScratch(1, map[string]interface{}{
		keyAdPayload: AdPayload{Kind: storage.KindPhoto, FileID: "f1", Button: &AdButton{Label: "Ochish"}},
	})

	c := newFakeCtx(1, "example.com")
	if err := b.stepButtonURL(c); err != nil {
		t.Fatal(err)
	}

	if len(c.sent) != 1 || c.sent[0] != msgBadURL {
		t.Fatalf("sent = %q, want bad-URL reply", c.sent)
	}
	if got := b.sessions.Step(1); got != StepButtonURL {
		t.Fatalf("step = %s, want %s", got, StepButtonURL)
	}
	ad, _ := adPayloadFrom(b.sessions, 1)
	if ad.Button.URL != "" {
		t.Fatalf("rejected URL stored: %q", ad.Button.URL)
	}
}

func TestAdminAddNonNumericInputKeepsStep(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{1: storage.RoleSuperAdmin}}
	b := newTestBot(users, nil)

	b.sessions.SetStep(1, StepAdminAdd)

	c := newFakeCtx(1, "abc")
	if err := b.stepAdminAdd(c); err != nil {
		t.Fatal(err)
	}

	if len(c.sent) != 1 || c.sent[0] != msgBadNumericID {
		t.Fatalf("sent = %q, want bad-ID reply", c.sent)
	}
	if len(users.promoted) != 0 {
		t.Fatalf("promoted = %v, want none", users.promoted)
	}
	if got := b.sessions.Step(1); got != StepAdminAdd {
		t.Fatalf("step = %s, want %s", got, StepAdminAdd)
	}
}

func TestAdMediaKindMismatchKeepsStep(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{1: storage.RoleAdmin}}
	b := newTestBot(users, nil)

	b.sessions.SetStep(1, StepAdMedia)
	b.sessions.MergeScratch(1, map[string]interface{}{
		keyAdPayload: AdPayload{Kind: storage.KindPhoto},
	})

	c := newFakeCtx(1, "")
	if err := b.adMediaIntake(c, storage.KindVideo); err != nil {
		t.Fatal(err)
	}

	if len(c.sent) != 1 || c.sent[0] != msgAdKindMismatch {
		t.Fatalf("sent = %q, want kind-mismatch reply", c.sent)
	}
	if got := b.sessions.Step(1); got != StepAdMedia {
		t.Fatalf("step = %s, want %s", got, StepAdMedia)
	}
	ad, _ := adPayloadFrom(b.sessions, 1)
	if ad.FileID != "" {
		t.Fatalf("mismatched media stored: %q", ad.FileID)
	}
}

func TestItemCodeTakenKeepsStep(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{1: storage.RoleAdmin}}
	catalog := &fakeCatalog{movies: map[string]storage.Movie{
		"abc": {Code: "abc", Title: "Mavjud"},
	}}
	b := newTestBot(users, catalog)

	b.sessions.SetStep(1, StepItemCode)
	b.sessions.MergeScratch(1, map[string]interface{}{
		keyPendingMedia: PendingMedia{FileID: "f1", Kind: storage.KindVideo},
	})

	// Uniqueness is checked against the canonical lower-cased code.
	c := newFakeCtx(1, "  ABC ")
	if err := b.stepItemCode(c); err != nil {
		t.Fatal(err)
	}

	if len(c.sent) != 1 || c.sent[0] != msgCodeTaken {
		t.Fatalf("sent = %q, want code-taken reply", c.sent)
	}
	if got := b.sessions.Step(1); got != StepItemCode {
		t.Fatalf("step = %s, want %s", got, StepItemCode)
	}
	pm, _ := pendingMediaFrom(b.sessions, 1)
	if pm.Code != "" {
		t.Fatalf("taken code stored: %q", pm.Code)
	}
}

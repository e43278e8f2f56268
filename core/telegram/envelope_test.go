package telegram

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

type envelopeCtx struct {
	tele.Context
	upd tele.Update
}

func (e envelopeCtx) Update() tele.Update { return e.upd }

func TestValidateEnvelope(t *testing.T) {
	res := ValidateEnvelope(tele.Update{ID: 123})
	if !res.OK || res.Error != "" {
		t.Fatalf("valid envelope rejected: %+v", res)
	}
}

func TestValidateEnvelopeMissingUpdateID(t *testing.T) {
	res := ValidateEnvelope(tele.Update{})
	if res.OK {
		t.Fatal("envelope without update_id accepted")
	}
	if res.Error == "" {
		t.Fatal("expected structured error")
	}
}

func TestEnvelopeMiddlewareDropsInvalidUpdates(t *testing.T) {
	calls := 0
	next := func(tele.Context) error {
		calls++
		return nil
	}
	h := EnvelopeMiddleware(next)

	if err := h(envelopeCtx{upd: tele.Update{}}); err != nil {
		t.Fatalf("rejected envelope returned error: %v", err)
	}
	if calls != 0 {
		t.Fatal("handler ran for an envelope without update_id")
	}

	if err := h(envelopeCtx{upd: tele.Update{ID: 7}}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
}

package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

func testBroadcaster(gw Gateway) *Broadcaster {
	b := NewBroadcaster(gw)
	b.delay = time.Millisecond
	return b
}

func TestBroadcastCountsAndContinuesPastFailures(t *testing.T) {
	gw := &fakeGateway{failWith: map[int64]error{2: errors.New("blocked")}}
	caster := testBroadcaster(gw)

	tally := caster.Text(context.Background(), []int64{1, 2, 3}, "hi")
	if tally.Sent != 2 || tally.Failed != 1 {
		t.Fatalf("tally = %+v, want {Sent:2 Failed:1}", tally)
	}
	// The loop must still have attempted the 3rd recipient.
	if len(gw.sent) != 2 || gw.sent[0] != 1 || gw.sent[1] != 3 {
		t.Fatalf("delivered to %v, want [1 3]", gw.sent)
	}
}

func TestBroadcastAdUsesMediaSend(t *testing.T) {
	gw := &fakeGateway{}
	caster := testBroadcaster(gw)

	ad := AdPayload{FileID: "f1", Kind: storage.KindPhoto, Caption: "promo", Button: &AdButton{Label: "Batafsil", URL: "https://t.me/x"}}
	tally := caster.Ad(context.Background(), []int64{10, 20}, ad)
	if tally.Sent != 2 || tally.Failed != 0 {
		t.Fatalf("tally = %+v", tally)
	}
	if len(gw.sent) != 2 {
		t.Fatalf("delivered to %v", gw.sent)
	}
}

func TestBroadcastStopsOnCancelledContext(t *testing.T) {
	gw := &fakeGateway{}
	caster := testBroadcaster(gw)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tally := caster.Text(ctx, []int64{1, 2, 3}, "hi")
	if tally.Sent != 0 || tally.Failed != 0 {
		t.Fatalf("cancelled broadcast must not send, got %+v", tally)
	}
	if len(gw.sent) != 0 {
		t.Fatalf("delivered to %v after cancellation", gw.sent)
	}
}

// cancellingGateway cancels its context after the first successful send, so
// the abort-between-sends path is hit deterministically.
type cancellingGateway struct {
	fakeGateway
	cancel context.CancelFunc
}

func (g *cancellingGateway) SendText(ctx context.Context, recipient int64, text string, markup *tele.ReplyMarkup) error {
	err := g.fakeGateway.SendText(ctx, recipient, text, markup)
	g.cancel()
	return err
}

func TestBroadcastAbortsBetweenSends(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gw := &cancellingGateway{cancel: cancel}
	caster := testBroadcaster(gw)

	tally := caster.Text(ctx, []int64{1, 2, 3, 4, 5}, "hi")
	if tally.Sent != 1 || tally.Failed != 0 {
		t.Fatalf("tally = %+v, want exactly one send before the abort", tally)
	}
	if len(gw.sent) != 1 || gw.sent[0] != 1 {
		t.Fatalf("delivered to %v, want [1]", gw.sent)
	}
}

package bot

import (
	"context"
	"errors"
	"testing"

	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

type fakeChannels struct {
	channels []storage.Channel
	err      error
}

func (f *fakeChannels) Create(_ context.Context, ch storage.Channel) (storage.Channel, error) {
	return ch, nil
}

func (f *fakeChannels) Active(context.Context) ([]storage.Channel, error) {
	return f.channels, f.err
}

func (f *fakeChannels) Delete(context.Context, string) error { return nil }

type fakeGateway struct {
	statuses map[string]string
	errs     map[string]error

	sent     []int64
	failWith map[int64]error
}

func (f *fakeGateway) SendText(_ context.Context, recipient int64, _ string, _ *tele.ReplyMarkup) error {
	if err := f.failWith[recipient]; err != nil {
		return err
	}
	f.sent = append(f.sent, recipient)
	return nil
}

func (f *fakeGateway) SendMedia(ctx context.Context, recipient int64, _, _, _ string, _ *tele.ReplyMarkup) error {
	return f.SendText(ctx, recipient, "", nil)
}

func (f *fakeGateway) ChatMemberStatus(_ context.Context, channelID string, _ int64) (string, error) {
	if err := f.errs[channelID]; err != nil {
		return "", err
	}
	return f.statuses[channelID], nil
}

func (f *fakeGateway) Username() string { return "testbot" }

func chans(ids ...string) []storage.Channel {
	out := make([]storage.Channel, 0, len(ids))
	for _, id := range ids {
		out = append(out, storage.Channel{ChannelID: id, Name: "ch" + id, InviteLink: "https://t.me/" + id})
	}
	return out
}

func TestIsFullyJoinedEmptySet(t *testing.T) {
	gate := NewGate(&fakeChannels{}, &fakeGateway{})
	if !gate.IsFullyJoined(context.Background(), 1) {
		t.Fatal("empty channel set must be trivially joined")
	}
}

func TestIsFullyJoinedAllMember(t *testing.T) {
	gw := &fakeGateway{statuses: map[string]string{
		"-1": "member",
		"-2": "administrator",
		"-3": "creator",
	}}
	gate := NewGate(&fakeChannels{channels: chans("-1", "-2", "-3")}, gw)
	if !gate.IsFullyJoined(context.Background(), 1) {
		t.Fatal("member/administrator/creator must all count as joined")
	}
}

func TestIsFullyJoinedNonMemberStatus(t *testing.T) {
	gw := &fakeGateway{statuses: map[string]string{"-1": "member", "-2": "left"}}
	gate := NewGate(&fakeChannels{channels: chans("-1", "-2")}, gw)
	if gate.IsFullyJoined(context.Background(), 1) {
		t.Fatal("a left channel must fail the gate")
	}
}

func TestIsFullyJoinedLookupErrorFailsClosed(t *testing.T) {
	gw := &fakeGateway{
		statuses: map[string]string{"-1": "member"},
		errs:     map[string]error{"-2": errors.New("boom")},
	}
	gate := NewGate(&fakeChannels{channels: chans("-1", "-2")}, gw)
	if gate.IsFullyJoined(context.Background(), 1) {
		t.Fatal("membership lookup error must fail closed")
	}
}

func TestIsFullyJoinedStoreErrorFailsClosed(t *testing.T) {
	gate := NewGate(&fakeChannels{err: errors.New("db down")}, &fakeGateway{})
	if gate.IsFullyJoined(context.Background(), 1) {
		t.Fatal("channel store error must fail closed")
	}
}

func TestUnjoinedChannels(t *testing.T) {
	gw := &fakeGateway{
		statuses: map[string]string{"-1": "member", "-2": "kicked"},
		errs:     map[string]error{"-3": errors.New("boom")},
	}
	gate := NewGate(&fakeChannels{channels: chans("-1", "-2", "-3")}, gw)

	unjoined, err := gate.UnjoinedChannels(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(unjoined) != 2 {
		t.Fatalf("got %d unjoined channels, want 2", len(unjoined))
	}
	if unjoined[0].ChannelID != "-2" || unjoined[1].ChannelID != "-3" {
		t.Fatalf("unexpected unjoined set: %+v", unjoined)
	}
}

package bot

import (
	"context"
	"testing"

	"kinobot/core/telegram/state"
	"kinobot/internal/apperrors"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// fakeTeleCtx implements the slice of tele.Context the handlers touch.
// Unimplemented methods panic via the embedded nil interface, which makes an
// unexpected call fail loudly.
type fakeTeleCtx struct {
	tele.Context
	sender *tele.User
	text   string
	store  map[string]interface{}
	sent   []string
}

func newFakeCtx(userID int64, text string) *fakeTeleCtx {
	return &fakeTeleCtx{
		sender: &tele.User{ID: userID, FirstName: "Tester"},
		text:   text,
		store:  map[string]interface{}{},
	}
}

func (f *fakeTeleCtx) Update() tele.Update {
	return tele.Update{ID: 1, Message: f.Message()}
}

func (f *fakeTeleCtx) Message() *tele.Message {
	return &tele.Message{Text: f.text, Sender: f.sender}
}

func (f *fakeTeleCtx) Sender() *tele.User { return f.sender }

func (f *fakeTeleCtx) Chat() *tele.Chat { return &tele.Chat{ID: f.sender.ID} }

func (f *fakeTeleCtx) Text() string { return f.text }

func (f *fakeTeleCtx) Callback() *tele.Callback { return nil }

func (f *fakeTeleCtx) Set(key string, val interface{}) { f.store[key] = val }

func (f *fakeTeleCtx) Get(key string) interface{} { return f.store[key] }

func (f *fakeTeleCtx) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	return nil
}

type fakeUsers struct {
	roles    map[int64]string
	promoted []int64
	demoted  []int64
}

func (f *fakeUsers) roleOf(id int64) string {
	if r, ok := f.roles[id]; ok {
		return r
	}
	return storage.RoleUser
}

func (f *fakeUsers) FindOrCreate(_ context.Context, p storage.Profile) (storage.User, error) {
	return storage.User{TelegramID: p.TelegramID, Role: f.roleOf(p.TelegramID)}, nil
}

func (f *fakeUsers) GetUserByTelegramID(_ context.Context, id int64) (storage.User, error) {
	if _, ok := f.roles[id]; !ok {
		return storage.User{}, apperrors.NotFound("user not registered")
	}
	return storage.User{TelegramID: id, Role: f.roleOf(id)}, nil
}

func (f *fakeUsers) IsAdmin(_ context.Context, id int64) bool {
	r := f.roleOf(id)
	return r == storage.RoleAdmin || r == storage.RoleSuperAdmin
}

func (f *fakeUsers) IsSuperAdmin(_ context.Context, id int64) bool {
	return f.roleOf(id) == storage.RoleSuperAdmin
}

func (f *fakeUsers) CountActive(context.Context) (int, error) { return len(f.roles), nil }

func (f *fakeUsers) Recipients(context.Context) ([]int64, error) { return nil, nil }

func (f *fakeUsers) Admins(context.Context) ([]storage.User, error) { return nil, nil }

func (f *fakeUsers) Promote(_ context.Context, id int64) error {
	f.promoted = append(f.promoted, id)
	return nil
}

func (f *fakeUsers) Demote(_ context.Context, id int64) error {
	f.demoted = append(f.demoted, id)
	return nil
}

type fakeCatalog struct {
	movies map[string]storage.Movie
}

func (f *fakeCatalog) Exists(_ context.Context, code string) (bool, error) {
	_, ok := f.movies[code]
	return ok, nil
}

func (f *fakeCatalog) Create(_ context.Context, m storage.Movie) (storage.Movie, error) {
	if f.movies == nil {
		f.movies = map[string]storage.Movie{}
	}
	f.movies[m.Code] = m
	return m, nil
}

func (f *fakeCatalog) Get(_ context.Context, code string) (storage.Movie, error) {
	m, ok := f.movies[code]
	if !ok {
		return storage.Movie{}, apperrors.NotFound("movie not found")
	}
	return m, nil
}

func (f *fakeCatalog) Delete(_ context.Context, code string) error {
	if _, ok := f.movies[code]; !ok {
		return apperrors.NotFound("movie not found")
	}
	delete(f.movies, code)
	return nil
}

func (f *fakeCatalog) Page(context.Context, int, int) ([]storage.Movie, int, error) {
	return nil, 0, nil
}

func (f *fakeCatalog) RecordDownload(context.Context, int64, string) error { return nil }

func newTestBot(users *fakeUsers, catalog *fakeCatalog) *Bot {
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	return New(context.Background(), Deps{
		Users:    users,
		Catalog:  catalog,
		Channels: &fakeChannels{},
		Sessions: state.NewMemoryManager(0),
		Gateway:  &fakeGateway{},
	})
}

// textRoute extracts the assembled text dispatch handler.
func textRoute(t *testing.T, b *Bot) tele.HandlerFunc {
	t.Helper()
	for _, r := range b.Routes() {
		if r.Endpoint == tele.OnText {
			return r.Handler
		}
	}
	t.Fatal("text route not registered")
	return nil
}

func TestMenuLabelPreemptsActiveFlow(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{1: storage.RoleAdmin}}
	b := newTestBot(users, nil)
	handle := textRoute(t, b)

	// Mid-flow: the admin is being asked for a catalog code.
	b.sessions.SetStep(1, StepItemCode)

	c := newFakeCtx(1, LabelAddChannel)
	if err := handle(c); err != nil {
		t.Fatal(err)
	}

	// The menu label must execute as a command, not be captured as the code.
	if got := b.sessions.Step(1); got != StepChannelInfo {
		t.Fatalf("step = %s, want %s", got, StepChannelInfo)
	}
	if len(c.sent) != 1 || c.sent[0] != msgChannelFormat {
		t.Fatalf("sent = %q, want channel format prompt", c.sent)
	}
}

func TestChoiceLabelOutsideItsStepIsSwallowed(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{1: storage.RoleAdmin}}
	b := newTestBot(users, nil)
	handle := textRoute(t, b)

	b.sessions.SetStep(1, StepItemCode)
	b.sessions.MergeScratch(1, map[string]interface{}{
		keyPendingMedia: PendingMedia{FileID: "f1", Kind: storage.KindVideo},
	})

	c := newFakeCtx(1, LabelCaptionKeep)
	if err := handle(c); err != nil {
		t.Fatal(err)
	}

	// The choice label is not valid here: it must neither run its handler
	// nor reach the step handler as a catalog code.
	if got := b.sessions.Step(1); got != StepItemCode {
		t.Fatalf("step = %s, want %s", got, StepItemCode)
	}
	pm, _ := pendingMediaFrom(b.sessions, 1)
	if pm.Code != "" {
		t.Fatalf("label text captured as code: %q", pm.Code)
	}
	if len(c.sent) != 0 {
		t.Fatalf("unexpected replies: %q", c.sent)
	}
}

func TestFlowInputReachesStepHandler(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{1: storage.RoleSuperAdmin, 55: storage.RoleUser}}
	b := newTestBot(users, nil)
	handle := textRoute(t, b)

	b.sessions.SetStep(1, StepAdminAdd)

	c := newFakeCtx(1, "55")
	if err := handle(c); err != nil {
		t.Fatal(err)
	}

	if len(users.promoted) != 1 || users.promoted[0] != 55 {
		t.Fatalf("promoted = %v, want [55]", users.promoted)
	}
	if got := b.sessions.Step(1); got != state.StateIdle {
		t.Fatalf("step after terminal action = %s, want idle", got)
	}
	if len(c.sent) == 0 || c.sent[0] != msgAdminAdded {
		t.Fatalf("sent = %q, want admin-added confirmation first", c.sent)
	}
}

func TestUserTextFallsThroughToCodeLookup(t *testing.T) {
	users := &fakeUsers{roles: map[int64]string{9: storage.RoleUser}}
	b := newTestBot(users, &fakeCatalog{})
	handle := textRoute(t, b)

	// Menu vocabulary means nothing to a regular user; with no gate
	// channels the text is treated as a catalog code.
	c := newFakeCtx(9, LabelAddMovie)
	if err := handle(c); err != nil {
		t.Fatal(err)
	}
	if len(c.sent) != 1 || c.sent[0] != msgMovieNotFound {
		t.Fatalf("sent = %q, want movie-not-found reply", c.sent)
	}
}

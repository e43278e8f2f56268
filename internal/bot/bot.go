// Package bot implements the conversational state machine driving the admin
// console and the user-facing catalog flow.
package bot

import (
	"context"

	tg "kinobot/core/telegram"
	"kinobot/core/telegram/commands"
	tghelpers "kinobot/core/telegram/helpers"
	"kinobot/core/telegram/middleware"
	"kinobot/core/telegram/router"
	"kinobot/core/telegram/state"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// UserDirectory is the user-store surface the router consults for identity
// and role resolution.
type UserDirectory interface {
	FindOrCreate(ctx context.Context, p storage.Profile) (storage.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (storage.User, error)
	IsAdmin(ctx context.Context, telegramID int64) bool
	IsSuperAdmin(ctx context.Context, telegramID int64) bool
	CountActive(ctx context.Context) (int, error)
	Recipients(ctx context.Context) ([]int64, error)
	Admins(ctx context.Context) ([]storage.User, error)
	Promote(ctx context.Context, telegramID int64) error
	Demote(ctx context.Context, telegramID int64) error
}

// CatalogStore is the movie-store surface consumed by the catalog flows.
type CatalogStore interface {
	Exists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, m storage.Movie) (storage.Movie, error)
	Get(ctx context.Context, code string) (storage.Movie, error)
	Delete(ctx context.Context, code string) error
	Page(ctx context.Context, page, pageSize int) ([]storage.Movie, int, error)
	RecordDownload(ctx context.Context, userID int64, code string) error
}

// Deps collects everything the bot needs from the outside.
type Deps struct {
	Users    UserDirectory
	Catalog  CatalogStore
	Channels ChannelDirectory
	Sessions state.Manager
	Gateway  Gateway
}

type labelEntry struct {
	name    string
	handler tele.HandlerFunc
}

// Bot owns the step router: menu label dispatch, FSM step handlers, media
// intake, callbacks and the user-facing code lookup.
type Bot struct {
	ctx      context.Context
	users    UserDirectory
	catalog  CatalogStore
	channels ChannelDirectory
	sessions state.Manager
	gate     *Gate
	caster   *Broadcaster
	gw       Gateway
	reg      *tg.Registry
	labels   map[string]labelEntry
}

// New wires the step router. ctx is the process context; an in-flight
// broadcast aborts between sends once it is cancelled.
func New(ctx context.Context, deps Deps) *Bot {
	if ctx == nil {
		ctx = context.Background()
	}
	b := &Bot{
		ctx:      ctx,
		users:    deps.Users,
		catalog:  deps.Catalog,
		channels: deps.Channels,
		sessions: deps.Sessions,
		gate:     NewGate(deps.Channels, deps.Gateway),
		caster:   NewBroadcaster(deps.Gateway),
		gw:       deps.Gateway,
		reg:      tg.NewRegistry(),
	}
	b.registerLabels()
	b.registerSteps()
	b.registerCommands()
	b.registerCallbacks()
	return b
}

// Registry exposes the command/callback registry for runtime wiring.
func (b *Bot) Registry() *tg.Registry { return b.reg }

// Routes assembles every bot route: slash commands, the text/media router
// and the callback router.
func (b *Bot) Routes() []tg.Route {
	routes := router.CommandRoutes(b.reg, router.CommandRouteOptions{
		AdminAllowed:  b.adminRole,
		OnAdminReject: func(tele.Context) error { return nil },
	})
	routes = append(routes, router.TextRoutes(b.sessions, b.reg, router.TextOptions{
		Labels:   b.lookupLabel,
		Fallback: b.onUnmatchedText,
		MediaKinds: map[string]tele.HandlerFunc{
			tele.OnPhoto:     b.onMedia(storage.KindPhoto),
			tele.OnVideo:     b.onMedia(storage.KindVideo),
			tele.OnAnimation: b.onMedia(storage.KindAnimation),
		},
	})...)
	routes = append(routes, router.CallbackRoute(b.reg, router.CallbackOptions{}))
	return routes
}

func (b *Bot) registerCommands() {
	b.reg.RegisterCommand("/start", commands.Command{
		Handler:     b.onStart,
		Description: "Botni ishga tushirish",
	})
}

func (b *Bot) registerCallbacks() {
	_ = b.reg.RegisterCallback(cbCheckSubscription, b.onCheckSubscription)
	_ = b.reg.RegisterCallback(cbCatalogPage, b.onCatalogPage)
}

// registerLabels builds the exact-match menu vocabulary. Choice labels run
// behind a step guard so they fire only inside their flow; everything else
// is available from any step, which means menu text typed mid-flow executes
// the menu action rather than being captured as flow input.
func (b *Bot) registerLabels() {
	guarded := func(st state.State, h tele.HandlerFunc) tele.HandlerFunc {
		return middleware.Step(stepStrings{b.sessions}, string(st))(h)
	}

	b.labels = map[string]labelEntry{
		LabelUserCount:     {"user_count", b.onUserCount},
		LabelAddMovie:      {"add_movie", b.onAddMovie},
		LabelDeleteMovie:   {"delete_movie", b.onDeleteMovie},
		LabelAddChannel:    {"add_channel", b.onAddChannel},
		LabelDeleteChannel: {"delete_channel", b.onDeleteChannel},
		LabelSendAd:        {"send_ad", b.onSendAd},
		LabelBroadcast:     {"broadcast", b.onBroadcast},
		LabelAddAdmin:      {"add_admin", b.onAddAdmin},
		LabelRemoveAdmin:   {"remove_admin", b.onRemoveAdmin},
		LabelListMovies:    {"list_movies", b.onListMovies},
		LabelListChannels:  {"list_channels", b.onListChannels},

		LabelCaptionKeep: {"caption_keep", guarded(StepCaptionChoice, b.onCaptionKeep)},
		LabelCaptionNew:  {"caption_new", guarded(StepCaptionChoice, b.onCaptionNew)},
		LabelCaptionNone: {"caption_none", guarded(StepCaptionChoice, b.onCaptionNone)},

		LabelButtonYes: {"button_yes", guarded(StepButtonChoice, b.onButtonYes)},
		LabelButtonNo:  {"button_no", guarded(StepButtonChoice, b.onButtonNo)},

		LabelAdPhoto: {"ad_photo", guarded(StepAdType, b.onAdType(storage.KindPhoto))},
		LabelAdVideo: {"ad_video", guarded(StepAdType, b.onAdType(storage.KindVideo))},
		LabelAdGIF:   {"ad_gif", guarded(StepAdType, b.onAdType(storage.KindAnimation))},
	}
}

func (b *Bot) registerSteps() {
	state.RegisterHandler(StepNewCaption, b.stepNewCaption)
	state.RegisterHandler(StepItemCode, b.stepItemCode)
	state.RegisterHandler(StepItemTitle, b.stepItemTitle)
	state.RegisterHandler(StepDeleteCode, b.stepDeleteCode)
	state.RegisterHandler(StepChannelInfo, b.stepChannelInfo)
	state.RegisterHandler(StepChannelDelete, b.stepChannelDelete)
	state.RegisterHandler(StepButtonLabel, b.stepButtonLabel)
	state.RegisterHandler(StepButtonURL, b.stepButtonURL)
	state.RegisterHandler(StepAdText, b.stepAdText)
	state.RegisterHandler(StepBroadcastText, b.stepBroadcastText)
	state.RegisterHandler(StepAdminAdd, b.stepAdminAdd)
	state.RegisterHandler(StepAdminRemove, b.stepAdminRemove)
}

// lookupLabel resolves exact menu text for the sending user. Labels are
// admin-only vocabulary; regular users never match.
func (b *Bot) lookupLabel(c tele.Context, text string) (string, tele.HandlerFunc, bool) {
	entry, ok := b.labels[text]
	if !ok {
		return "", nil, false
	}
	ctx := tghelpers.BuildContext(c)
	if !b.users.IsAdmin(ctx, c.Sender().ID) {
		return "", nil, false
	}
	return entry.name, entry.handler, true
}

// adminRole backs RequireRole for admin-only slash commands.
func (b *Bot) adminRole(ctx context.Context, userID int64) bool {
	u, err := tghelpers.CurrentUser[storage.User](ctx, b.users, userID)
	if err != nil {
		return false
	}
	return u.Role == storage.RoleAdmin || u.Role == storage.RoleSuperAdmin
}

// stepStrings adapts the session manager to the step-guard middleware.
type stepStrings struct {
	mgr state.Manager
}

func (s stepStrings) Step(userID int64) string {
	return string(s.mgr.Step(userID))
}

// replyMenu shows the role-appropriate main menu.
func (b *Bot) replyMenu(c tele.Context, isSuper bool) error {
	if isSuper {
		return tghelpers.SendText(c, msgChooseAction, &tele.SendOptions{ReplyMarkup: SuperAdminKeyboard()})
	}
	return tghelpers.SendText(c, msgChooseAction, &tele.SendOptions{ReplyMarkup: AdminKeyboard()})
}

// finishFlow resets the session and returns the admin to the main menu.
func (b *Bot) finishFlow(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	b.sessions.Reset(userID)
	return b.replyMenu(c, b.users.IsSuperAdmin(ctx, userID))
}

// failFlow surfaces a generic failure, resets the session and propagates the
// error for summary logging. A session is never left stuck mid-flow.
func (b *Bot) failFlow(c tele.Context, err error) error {
	_ = tghelpers.SendText(c, msgGenericError)
	if ferr := b.finishFlow(c); ferr != nil && err == nil {
		return ferr
	}
	return err
}

// broadcastCtx derives a context that carries the update's RID but is also
// cancelled when the process shuts down, so in-flight broadcasts abort.
func (b *Bot) broadcastCtx(c tele.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(tghelpers.BuildContext(c))
	stop := context.AfterFunc(b.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

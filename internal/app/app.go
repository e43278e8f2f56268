package app

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kinobot/core/bootstrap"
	coretelegram "kinobot/core/telegram"
	"kinobot/core/telegram/state"
	"kinobot/internal/bot"
	"kinobot/internal/service"
	"kinobot/internal/storage"
)

// App holds the wired application: database, services, session store and the
// step router.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	sessions state.Manager
	gw       *bot.TelebotGateway
	bot      *bot.Bot

	sweepDone chan struct{}
}

// Bootstrap initializes the logger, database and migrations, then wires the
// services and the bot. ctx cancellation aborts in-flight broadcasts.
func Bootstrap(ctx context.Context, cfg *Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	users := service.NewUsers(storage.NewUsersRepo(res.DB), cfg.Telegram.SuperAdminID)
	catalog := service.NewCatalog(storage.NewMoviesRepo(res.DB))
	channels := service.NewChannels(storage.NewChannelsRepo(res.DB))

	sessions := state.NewMemoryManager(cfg.SessionIdleTTL())
	gw := bot.NewGateway()

	b := bot.New(ctx, bot.Deps{
		Users:    users,
		Catalog:  catalog,
		Channels: channels,
		Sessions: sessions,
		Gateway:  gw,
	})

	return &App{
		cfg:       cfg,
		db:        res.DB,
		sessions:  sessions,
		gw:        gw,
		bot:       b,
		sweepDone: make(chan struct{}),
	}, nil
}

// TelegramRunOptions builds the runtime options for RunTelegram: routes,
// middleware chain and lifecycle hooks binding the gateway and the session
// sweeper.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    a.bot.Registry(),
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      a.bot.Routes(),
		OnStart: func(_ context.Context, rt coretelegram.Runtime) error {
			a.gw.Bind(rt.Bot)
			go a.sessions.Run(a.sweepDone)
			return nil
		},
		OnStop: func(context.Context, coretelegram.Runtime) error {
			close(a.sweepDone)
			return a.db.Close()
		},
	}, nil
}

package router

import (
	"time"

	tg "kinobot/core/telegram"
	"kinobot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// FSM defines the minimal interface for an FSM manager.
type FSM interface {
	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error
}

// LabelLookup resolves an exact-match menu label to its handler for the
// sending user. The lookup decides role visibility itself: a label that the
// sender may not execute resolves to false.
type LabelLookup func(c tele.Context, text string) (name string, h tele.HandlerFunc, ok bool)

// TextOptions controls dispatch behaviour for text and media updates.
type TextOptions struct {
	// Labels is consulted before the FSM even while a flow is in progress, so
	// exact menu text typed mid-flow executes the command, not the flow input.
	Labels      LabelLookup
	Fallback    tele.HandlerFunc
	MediaKinds  map[string]tele.HandlerFunc
	UnknownText tele.HandlerFunc
}

// TextRoutes builds handlers for text and media routing.
func TextRoutes(fsmMgr FSM, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if opts.Labels != nil {
			if name, h, ok := opts.Labels(c, text); ok && h != nil {
				return handleWithSummary(c, normalizeHandlerName(name), start, "", "", func() error {
					return h(c)
				})
			}
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if fsmMgr != nil && fsmMgr.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "fsm", start, "", "", func() error {
				return fsmMgr.ManagerHandler(c)
			})
		}

		if opts.Fallback != nil {
			return handleWithSummary(c, "fallback", start, "", "", func() error {
				return opts.Fallback(c)
			})
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	routes := []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}

	for kind, h := range opts.MediaKinds {
		if h == nil {
			continue
		}
		endpoint, name := kind, "media_"+kind
		mediaHandler := h
		routes = append(routes, tg.Route{
			Endpoint: endpoint,
			Handler: middleware.RecoverMiddleware(middleware.LoggerMiddleware(func(c tele.Context) error {
				start := time.Now()
				return handleWithSummary(c, name, start, "", "", func() error {
					return mediaHandler(c)
				})
			})),
		})
	}

	return routes
}

package router

import (
	"time"

	tg "github.com/m3rciful/demobot/core/telegram"
	"github.com/m3rciful/demobot/core/telegram/middleware"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CallbackOptions customises guard and fallback behaviour for callbacks.
type CallbackOptions struct {
	NotFound tele.HandlerFunc
	Admin    middleware.AdminOptions
	Usage    UsageRecorder
}

// CallbackRoute returns a handler that routes callbacks through the registry.
// Tokens resolve by exact key first, then by the single matching registered
// prefix. Admin-flagged callbacks pass the admin gate before the usage
// sample is recorded and the handler body runs.
func CallbackRoute(reg *tg.Registry, opts CallbackOptions) tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		if c.Callback() == nil {
			return nil
		}

		key, _ := parseCallback(c.Callback())
		name := "callback." + normalizeHandlerName(key)
		extras := []slog.Attr{slog.String("cb_key", key)}

		var err error
		cb, ok := reg.ResolveCallback(key)
		if !ok || cb.Handler == nil {
			fallback := reg.CallbackNotFound()
			if fallback == nil {
				fallback = opts.NotFound
			}
			extras = append(extras, slog.String("reason", "not_found"))
			err = handleWithSummary(c, name, start, "", "", func() error {
				if fallback != nil {
					return fallback(c)
				}
				return nil
			}, extras...)
		} else {
			h := withUsage(opts.Usage, cb.Handler)
			if cb.AdminOnly {
				h = middleware.AdminOnlyMiddleware(opts.Admin)(h)
			}
			err = handleWithSummary(c, name, start, "", "", func() error {
				return h(c)
			}, extras...)
		}

		// Ack the query only after the handler ran: a callback query takes
		// a single answer, and a handler's own CallbackResponse (an alert,
		// a notice) must be it. The trailing ack is a no-op for queries
		// already answered.
		_ = c.Respond()
		if err != nil {
			_ = middleware.Apologize(c)
		}
		return err
	}
	return tg.Route{
		Endpoint: tele.OnCallback,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}

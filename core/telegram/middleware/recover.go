package middleware

import (
	"runtime/debug"

	"github.com/m3rciful/demobot/core/logger"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// apologyText is sent to the user when a handler fails unexpectedly.
const apologyText = "⚠️ Something went wrong on our side. We are already looking into it!"

// RecoverMiddleware catches panics in handlers and prevents the bot from
// crashing. The user receives a generic apology; the process keeps serving
// subsequent updates.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.TG.Error("panic recovered",
					slog.String("event", "tg.panic"),
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
				_ = c.Send(apologyText)
			}
		}()
		return next(c)
	}
}

// Apologize sends the generic apology notice for a failed handler.
func Apologize(c tele.Context) error {
	return c.Send(apologyText)
}

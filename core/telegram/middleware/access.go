package middleware

import (
	"github.com/m3rciful/demobot/core/logger"
	tghelpers "github.com/m3rciful/demobot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// AdminOptions defines how admin-only checks should behave.
type AdminOptions struct {
	// AdminIDs is the fixed allow-list of administrator user ids.
	AdminIDs []int64
	// OnReject is invoked instead of the guarded handler when access is
	// denied. The app supplies the notice (alert for callbacks, reply for
	// commands).
	OnReject tele.HandlerFunc
}

// Allowed reports whether the user id is on the allow-list.
func (o AdminOptions) Allowed(userID int64) bool {
	for _, id := range o.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AdminOnlyMiddleware ensures that only allow-listed users can invoke
// downstream handlers. Unauthorized attempts are logged and answered via
// the reject hook; the wrapped handler is never reached.
func AdminOnlyMiddleware(opts AdminOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || !opts.Allowed(user.ID) {
				ctx := tghelpers.BuildContext(c)
				attrs := []slog.Attr{
					slog.String("status", "skip"),
				}
				if user != nil {
					attrs = append(attrs, slog.Int64("user_id", user.ID))
				}
				logger.LogEvent(ctx, logger.Component("tg"), slog.LevelWarn, "access.denied", attrs...)
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}

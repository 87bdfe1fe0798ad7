package router

import (
	"time"

	tele "gopkg.in/telebot.v4"
)

// UsageRecorder receives a sample for every dispatch that reaches a handler.
// The admin statistics view consumes the aggregate later.
type UsageRecorder interface {
	RecordDispatch(userID int64, at time.Time)
}

func withUsage(usage UsageRecorder, next tele.HandlerFunc) tele.HandlerFunc {
	if usage == nil {
		return next
	}
	return func(c tele.Context) error {
		if user := c.Sender(); user != nil {
			usage.RecordDispatch(user.ID, time.Now())
		}
		return next(c)
	}
}

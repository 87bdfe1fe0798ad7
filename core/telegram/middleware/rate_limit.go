package middleware

import (
	"sync"
	"time"

	"github.com/m3rciful/demobot/core/logger"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// RateLimiter admits at most Limit requests per user within a trailing
// Window. Timestamps older than the window are evicted lazily on each check,
// so a user's recorded slice always holds exactly the admitted requests of
// the most recent window, in ascending order, never longer than Limit.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	requests map[int64][]time.Time

	// now is swappable in tests.
	now func() time.Time
}

// NewRateLimiter builds a sliding-window limiter. Non-positive limit or
// window disables limiting: Allow always admits.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		window:   window,
		requests: make(map[int64][]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether the user may issue a request now. An admitted
// request is recorded; a rejected one is not.
func (rl *RateLimiter) Allow(userID int64) bool {
	if rl == nil || rl.limit <= 0 || rl.window <= 0 {
		return true
	}
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := rl.requests[userID][:0]
	for _, ts := range rl.requests[userID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	if len(recent) >= rl.limit {
		rl.requests[userID] = recent
		return false
	}
	rl.requests[userID] = append(recent, now)
	return true
}

// RateLimitOptions configures behaviour of the rate limit middleware.
type RateLimitOptions struct {
	Limit     int
	Window    time.Duration
	Exclude   map[string]struct{}
	OnLimited tele.HandlerFunc
}

// RateLimitMiddleware returns a middleware that throttles per-user traffic
// with a sliding window. A rejected update never reaches downstream handlers.
func RateLimitMiddleware(opts RateLimitOptions) tele.MiddlewareFunc {
	limiter := NewRateLimiter(opts.Limit, opts.Window)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || opts.Limit <= 0 || opts.Window <= 0 {
				return next(c)
			}

			// Determine update kind and apply configured exclusions
			upd := c.Update()
			kind := "other"
			switch {
			case upd.Callback != nil:
				kind = "callback"
			case upd.Message != nil:
				kind = "message"
			case upd.Query != nil:
				kind = "inline_query"
			}
			if _, skip := opts.Exclude[kind]; skip {
				return next(c)
			}

			if limiter.Allow(user.ID) {
				return next(c)
			}

			chat := c.Chat()
			if chat != nil {
				logger.TG.Warn("rate limit",
					slog.String("event", "tg.rate_limit"),
					slog.Int64("chat_id", chat.ID),
					slog.Int64("user_id", user.ID),
				)
			} else {
				logger.TG.Warn("rate limit",
					slog.String("event", "tg.rate_limit"),
					slog.Int64("user_id", user.ID),
				)
			}
			if opts.OnLimited != nil {
				_ = opts.OnLimited(c)
			}
			return nil
		}
	}
}

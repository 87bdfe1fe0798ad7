package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterSlidingWindow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiter(5, 60*time.Second)
	rl.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		require.True(t, rl.Allow(42), "request %d should be admitted", i+1)
	}
	require.False(t, rl.Allow(42), "6th request within the window must be rejected")

	// A rejected request is not recorded: still rejected a second later.
	now = now.Add(time.Second)
	require.False(t, rl.Allow(42))

	// After the window passes the user is admitted again.
	now = now.Add(61 * time.Second)
	require.True(t, rl.Allow(42))
}

func TestRateLimiterEvictsOnlyExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiter(3, 60*time.Second)
	rl.now = func() time.Time { return now }

	require.True(t, rl.Allow(7))
	now = now.Add(30 * time.Second)
	require.True(t, rl.Allow(7))
	require.True(t, rl.Allow(7))
	require.False(t, rl.Allow(7))

	// 31s later the first timestamp is out of the window, the two
	// younger ones are retained.
	now = now.Add(31 * time.Second)
	require.True(t, rl.Allow(7))
	require.False(t, rl.Allow(7))
}

func TestRateLimiterPerUserIsolation(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	require.True(t, rl.Allow(1))
	require.False(t, rl.Allow(1))
	require.True(t, rl.Allow(2), "one user's throttle must not affect another")
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, rl.Allow(9))
	}
}

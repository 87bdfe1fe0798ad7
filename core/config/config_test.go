package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func valid() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := valid()
	cfg.Telegram.Token = ""
	require.Error(t, Normalize(cfg))
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := valid()
	require.NoError(t, Normalize(cfg))
	require.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
	require.Equal(t, 10, cfg.RateLimit.MaxRequests)
	require.Equal(t, 60, cfg.RateLimit.WindowSeconds)
}

func TestNormalizeRunModeAlias(t *testing.T) {
	cfg := valid()
	cfg.Telegram.RunMode = "polling"
	require.NoError(t, Normalize(cfg))
	require.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeWebhookRequiresEndpoint(t *testing.T) {
	cfg := valid()
	cfg.Telegram.RunMode = RunModeWebhook
	require.Error(t, Normalize(cfg))

	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com", Listen: "0.0.0.0", Port: 8443}
	require.NoError(t, Normalize(cfg))
}

func TestNormalizeAdminIDs(t *testing.T) {
	cfg := valid()
	cfg.Telegram.AdminIDs = []int64{100, 200}
	require.NoError(t, Normalize(cfg))
	require.True(t, cfg.Telegram.IsAdmin(100))
	require.False(t, cfg.Telegram.IsAdmin(300))

	cfg.Telegram.AdminIDs = []int64{-5}
	require.Error(t, Normalize(cfg))
}

func TestNormalizeExcludeUpdates(t *testing.T) {
	cfg := valid()
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	require.NoError(t, Normalize(cfg))
	require.Equal(t, []string{"callback", "message"}, cfg.RateLimit.ExcludeUpdates)

	cfg.RateLimit.ExcludeUpdates = []string{"webhook"}
	require.Error(t, Normalize(cfg))
}

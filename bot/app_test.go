package bot

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/demobot/bot/catalog"
	coreconfig "github.com/m3rciful/demobot/core/config"
	"github.com/m3rciful/demobot/core/logger"
	coretelegram "github.com/m3rciful/demobot/core/telegram"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := &coreconfig.Config{
		Telegram: coreconfig.TelegramConfig{
			Token:    "123:abc",
			AdminIDs: []int64{100},
		},
	}
	require.NoError(t, coreconfig.Normalize(cfg))
	app, err := New(Options{Name: "Test Bot", Config: cfg, Catalog: catalog.Showcase()})
	require.NoError(t, err)
	return app
}

func TestRegisterHandlersWiring(t *testing.T) {
	app := testApp(t)
	reg := coretelegram.NewRegistry()
	require.NoError(t, app.registerHandlers(reg), "registered prefixes must be disjoint")

	// Every menu token resolves.
	for _, key := range []string{
		cbMain, cbShop, cbCart, cbCheckout, cbClearCart, cbBooking,
		cbQuiz, cbQuizStart, cbCurrency, cbAbout, cbContact,
	} {
		cb, ok := reg.ResolveCallback(key)
		require.True(t, ok, "token %s", key)
		require.False(t, cb.AdminOnly, "token %s", key)
	}

	for _, key := range []string{cbAdmin, cbAdminStats} {
		cb, ok := reg.ResolveCallback(key)
		require.True(t, ok, "token %s", key)
		require.True(t, cb.AdminOnly, "token %s must be admin-gated", key)
	}

	// Prefix tokens with variable suffixes resolve too.
	for _, token := range []string{"category_Electronics", "add_3", "book_1", "time_10:00", "quizans_a"} {
		_, ok := reg.ResolveCallback(token)
		require.True(t, ok, "token %s", token)
	}

	_, ok := reg.ResolveCallback("bogus_token")
	require.False(t, ok)
}

func TestWarmupValidatesCatalog(t *testing.T) {
	app := testApp(t)
	for _, w := range app.Warmups() {
		require.NoError(t, w.Run(context.Background()))
	}

	broken := testApp(t)
	broken.catalog = &catalog.Catalog{}
	require.Error(t, broken.validateCatalog(context.Background()))
}

func TestNewRejectsMissingParts(t *testing.T) {
	_, err := New(Options{Catalog: catalog.Showcase()})
	require.Error(t, err)
	_, err = New(Options{Config: &coreconfig.Config{}})
	require.Error(t, err)
}

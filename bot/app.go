// Package bot implements the demonstration bot shared by the showcase and
// salon entrypoints: storefront with a cart, service booking, a quiz, a
// currency board, and an admin statistics panel. The two binaries differ
// only in branding and catalog data supplied via Options.
package bot

import (
	"errors"
	"fmt"
	"time"

	"github.com/m3rciful/demobot/bot/catalog"
	"github.com/m3rciful/demobot/bot/store"
	coreconfig "github.com/m3rciful/demobot/core/config"
	coretelegram "github.com/m3rciful/demobot/core/telegram"
	"github.com/m3rciful/demobot/core/telegram/middleware"
	"github.com/m3rciful/demobot/core/telegram/router"
	"github.com/m3rciful/demobot/core/telegram/state"
	"github.com/m3rciful/demobot/core/telegram/ui"

	tele "gopkg.in/telebot.v4"
)

var _ ui.FallbackProvider = (*App)(nil)

// nowFn is swappable in tests.
var nowFn = time.Now

// Config wraps the core configuration for the cmd runner.
type Config struct {
	Core *coreconfig.Config
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return c.Core
}

// Options select the variant a binary runs.
type Options struct {
	Name    string
	Config  *coreconfig.Config
	Catalog *catalog.Catalog
}

// App is one assembled demo bot.
type App struct {
	name     string
	cfg      *coreconfig.Config
	catalog  *catalog.Catalog
	store    *store.Store
	sessions state.Manager
}

// New assembles an App from the given options.
func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("bot: nil config")
	}
	if opts.Catalog == nil {
		return nil, errors.New("bot: nil catalog")
	}
	name := opts.Name
	if name == "" {
		name = "Demo Bot"
	}
	return &App{
		name:     name,
		cfg:      opts.Config,
		catalog:  opts.Catalog,
		store:    store.New(),
		sessions: state.NewMemoryManager(),
	}, nil
}

// Store exposes the state store (used by tests and warmups).
func (a *App) Store() *store.Store {
	return a.store
}

// TelegramRunOptions wires registry, routes and middleware for the runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	if err := a.registerHandlers(reg); err != nil {
		return coretelegram.RunOptions{}, fmt.Errorf("bot: handler wiring failed: %w", err)
	}
	reg.SetCallbackNotFound(a.UnknownCallback())
	reg.SetTextFallback(a.UnknownText())

	adminOpts := middleware.AdminOptions{
		AdminIDs: a.cfg.Telegram.AdminIDs,
		OnReject: a.accessDenied,
	}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		Admin: adminOpts,
		Usage: a.store,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		Admin: adminOpts,
		Usage: a.store,
	}))
	routes = append(routes, router.TextRoutes(a.sessions, reg, router.TextOptions{
		UnknownText:     a.UnknownText(),
		UnknownDocument: a.UnknownDocument(),
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, a.rateLimited),
		Routes:      routes,
	}, nil
}

// registerHandlers builds the handler table. Exact keys and disjoint
// prefixes only; an overlap is a configuration error surfaced here.
func (a *App) registerHandlers(reg *coretelegram.Registry) error {
	a.registerCommands(reg)

	exact := map[string]tele.HandlerFunc{
		cbMain:      a.mainMenu,
		cbShop:      a.shop,
		cbCart:      a.viewCart,
		cbCheckout:  a.checkout,
		cbClearCart: a.clearCart,
		cbBooking:   a.booking,
		cbQuiz:      a.quiz,
		cbQuizStart: a.quizStart,
		cbCurrency:  a.currency,
		cbAbout:     a.about,
		cbContact:   a.contact,
	}
	for key, h := range exact {
		if err := reg.RegisterCallback(key, h); err != nil {
			return err
		}
	}

	if err := reg.RegisterAdminCallback(cbAdmin, a.adminPanel); err != nil {
		return err
	}
	if err := reg.RegisterAdminCallback(cbAdminStats, a.adminStats); err != nil {
		return err
	}

	prefixes := map[string]tele.HandlerFunc{
		prefCategory: a.category,
		prefAdd:      a.addToCart,
		prefBook:     a.bookService,
		prefTime:     a.bookTime,
		prefQuizAns:  a.quizAnswer,
	}
	for pref, h := range prefixes {
		if err := reg.RegisterCallbackPrefix(pref, h); err != nil {
			return err
		}
	}
	return nil
}

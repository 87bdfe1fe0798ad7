package telegram

import (
	"os"
	"testing"

	"github.com/m3rciful/demobot/core/logger"
	"github.com/m3rciful/demobot/core/telegram/commands"
	"github.com/stretchr/testify/require"

	tele "gopkg.in/telebot.v4"
)

func TestMain(m *testing.M) {
	// Registration warnings go through the shared logger.
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

func noopHandler(tele.Context) error { return nil }

func TestResolveCallbackExactWinsOverPrefix(t *testing.T) {
	reg := NewRegistry()
	var hits []string
	require.NoError(t, reg.RegisterCallback("catalog", func(tele.Context) error {
		hits = append(hits, "exact")
		return nil
	}))
	require.NoError(t, reg.RegisterCallbackPrefix("cat", func(tele.Context) error {
		hits = append(hits, "prefix")
		return nil
	}))

	cb, ok := reg.ResolveCallback("catalog")
	require.True(t, ok)
	require.NoError(t, cb.Handler(nil))
	require.Equal(t, []string{"exact"}, hits, "exact key must win over a matching prefix")
}

func TestResolveCallbackPrefix(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterCallback("catalog", noopHandler))
	matched := 0
	require.NoError(t, reg.RegisterCallbackPrefix("category_", func(tele.Context) error {
		matched++
		return nil
	}))

	cb, ok := reg.ResolveCallback("category_Electronics")
	require.True(t, ok)
	require.NoError(t, cb.Handler(nil))
	require.Equal(t, 1, matched)

	_, ok = reg.ResolveCallback("cate")
	require.False(t, ok)
}

func TestRegisterCallbackPrefixRejectsOverlap(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterCallbackPrefix("book_", noopHandler))

	require.Error(t, reg.RegisterCallbackPrefix("book_svc_", noopHandler),
		"a prefix extending an existing prefix must be rejected")
	require.Error(t, reg.RegisterCallbackPrefix("boo", noopHandler),
		"a prefix shortening an existing prefix must be rejected")
	require.Error(t, reg.RegisterCallbackPrefix("book_", noopHandler))

	require.NoError(t, reg.RegisterCallbackPrefix("time_", noopHandler),
		"disjoint prefixes coexist")
}

func TestRegisterCallbackDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterCallback("main", noopHandler))
	require.Error(t, reg.RegisterCallback("main", noopHandler))
}

func TestRegisterAdminCallbackFlag(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterAdminCallback("admin_stats", noopHandler))
	require.NoError(t, reg.RegisterCallback("main", noopHandler))

	cb, ok := reg.ResolveCallback("admin_stats")
	require.True(t, ok)
	require.True(t, cb.AdminOnly)

	cb, ok = reg.ResolveCallback("main")
	require.True(t, ok)
	require.False(t, cb.AdminOnly)
}

func TestLookupCommandAliases(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commandsFixture())

	key, _, ok := reg.LookupCommand("start")
	require.True(t, ok)
	require.Equal(t, "/start", key)

	key, _, ok = reg.LookupCommand("/menu")
	require.True(t, ok)
	require.Equal(t, "/start", key)

	_, _, ok = reg.LookupCommand("/missing")
	require.False(t, ok)
}

func commandsFixture() commands.Command {
	return commands.Command{
		Handler:     noopHandler,
		Description: "Open the main menu",
		Aliases:     []string{"menu"},
	}
}

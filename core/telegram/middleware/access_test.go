package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"

	tele "gopkg.in/telebot.v4"
)

// guardCtx is a minimal tele.Context for exercising guards. Methods the
// middleware does not touch panic via the embedded nil interface.
type guardCtx struct {
	tele.Context
	user  *tele.User
	store map[string]any
}

func newGuardCtx(user *tele.User) *guardCtx {
	return &guardCtx{user: user, store: make(map[string]any)}
}

func (g *guardCtx) Sender() *tele.User       { return g.user }
func (g *guardCtx) Chat() *tele.Chat         { return nil }
func (g *guardCtx) Callback() *tele.Callback { return nil }
func (g *guardCtx) Update() tele.Update      { return tele.Update{} }
func (g *guardCtx) Get(key string) any       { return g.store[key] }
func (g *guardCtx) Set(key string, v any)    { g.store[key] = v }

func TestAdminGateBlocksNonAdmin(t *testing.T) {
	invoked := 0
	rejected := 0
	gate := AdminOnlyMiddleware(AdminOptions{
		AdminIDs: []int64{100, 200},
		OnReject: func(c tele.Context) error {
			rejected++
			return nil
		},
	})
	handler := gate(func(c tele.Context) error {
		invoked++
		return nil
	})

	require.NoError(t, handler(newGuardCtx(&tele.User{ID: 999})))
	require.Zero(t, invoked, "handler body must never run for a non-admin")
	require.Equal(t, 1, rejected)
}

func TestAdminGatePassesAllowListed(t *testing.T) {
	invoked := 0
	gate := AdminOnlyMiddleware(AdminOptions{AdminIDs: []int64{100}})
	handler := gate(func(c tele.Context) error {
		invoked++
		return nil
	})

	require.NoError(t, handler(newGuardCtx(&tele.User{ID: 100})))
	require.Equal(t, 1, invoked)
}

func TestAdminGateNilSender(t *testing.T) {
	invoked := 0
	gate := AdminOnlyMiddleware(AdminOptions{AdminIDs: []int64{100}})
	handler := gate(func(c tele.Context) error {
		invoked++
		return nil
	})

	require.NoError(t, handler(newGuardCtx(nil)))
	require.Zero(t, invoked)
}

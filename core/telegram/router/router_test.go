package router

import (
	"os"
	"testing"

	"github.com/m3rciful/demobot/core/logger"
	tg "github.com/m3rciful/demobot/core/telegram"
	"github.com/m3rciful/demobot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(nil); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// routeCtx is a minimal tele.Context for driving routes end to end. It
// records every answer and message so tests can assert ordering.
type routeCtx struct {
	tele.Context
	user     *tele.User
	callback *tele.Callback
	text     string
	store    map[string]any

	responses []*tele.CallbackResponse
	sent      []any
}

func newRouteCtx(user *tele.User) *routeCtx {
	return &routeCtx{user: user, store: make(map[string]any)}
}

func (r *routeCtx) Sender() *tele.User       { return r.user }
func (r *routeCtx) Chat() *tele.Chat         { return nil }
func (r *routeCtx) Callback() *tele.Callback { return r.callback }
func (r *routeCtx) Text() string             { return r.text }
func (r *routeCtx) Get(key string) any       { return r.store[key] }
func (r *routeCtx) Set(key string, v any)    { r.store[key] = v }

func (r *routeCtx) Update() tele.Update {
	return tele.Update{ID: 1, Callback: r.callback}
}

func (r *routeCtx) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		r.responses = append(r.responses, &tele.CallbackResponse{})
		return nil
	}
	r.responses = append(r.responses, resp...)
	return nil
}

func (r *routeCtx) Send(what any, _ ...any) error {
	r.sent = append(r.sent, what)
	return nil
}

// A handler that answers its own callback query with an alert must produce
// the first answer; the route's trailing ack comes after it.
func TestCallbackRouteHandlerAlertAnswersFirst(t *testing.T) {
	reg := tg.NewRegistry()
	if err := reg.RegisterCallback("checkout", func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "cart is empty", ShowAlert: true})
	}); err != nil {
		t.Fatalf("RegisterCallback: %v", err)
	}

	route := CallbackRoute(reg, CallbackOptions{})
	ctx := newRouteCtx(&tele.User{ID: 42})
	ctx.callback = &tele.Callback{Unique: "checkout"}

	if err := route.Handler(ctx); err != nil {
		t.Fatalf("route handler: %v", err)
	}
	if len(ctx.responses) == 0 {
		t.Fatalf("callback query was never answered")
	}
	first := ctx.responses[0]
	if !first.ShowAlert || first.Text != "cart is empty" {
		t.Fatalf("first answer = %+v, want the handler's alert", first)
	}
}

func TestCallbackRouteAcksPlainHandlers(t *testing.T) {
	reg := tg.NewRegistry()
	if err := reg.RegisterCallback("main", func(c tele.Context) error {
		return nil
	}); err != nil {
		t.Fatalf("RegisterCallback: %v", err)
	}

	route := CallbackRoute(reg, CallbackOptions{})
	ctx := newRouteCtx(&tele.User{ID: 42})
	ctx.callback = &tele.Callback{Unique: "main"}

	if err := route.Handler(ctx); err != nil {
		t.Fatalf("route handler: %v", err)
	}
	if len(ctx.responses) != 1 {
		t.Fatalf("answers = %d, want exactly one trailing ack", len(ctx.responses))
	}
}

// Temp data stored for a pending flow must not capture the user's free
// text: with no active state the text route falls through to the fallback.
func TestTextRouteFallsBackAfterTempData(t *testing.T) {
	sessions := state.NewMemoryManager()
	sessions.SetTemp(42, "booking_service", int64(3))

	reg := tg.NewRegistry()
	fallbacks := 0
	reg.SetTextFallback(func(c tele.Context) error {
		fallbacks++
		return nil
	})

	routes := TextRoutes(sessions, reg, TextOptions{})
	ctx := newRouteCtx(&tele.User{ID: 42})
	ctx.text = "hello?"

	if err := routes[0].Handler(ctx); err != nil {
		t.Fatalf("text route: %v", err)
	}
	if fallbacks != 1 {
		t.Fatalf("fallback invocations = %d, want 1", fallbacks)
	}
}

package bot

import (
	"fmt"

	"github.com/m3rciful/demobot/bot/store"
	"github.com/m3rciful/demobot/core/logger"
	"github.com/m3rciful/demobot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/demobot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// bookingServiceKey stores the chosen service id in the user session
// between the service pick and the time slot pick.
const bookingServiceKey = "booking_service"

func (a *App) booking(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, "📅 *Service booking*\n\nPick a service:", a.bookingKeyboard())
}

func (a *App) bookService(c tele.Context) error {
	serviceID, err := callbacks.SuffixInt(c, prefBook)
	if err != nil {
		return a.booking(c)
	}
	svc, ok := a.catalog.Services[serviceID]
	if !ok {
		return a.booking(c)
	}

	a.sessions.SetTemp(c.Sender().ID, bookingServiceKey, int64(serviceID))

	text := fmt.Sprintf(`📅 *%s*

💰 Price: $%d
⏱ Duration: %s

Pick a convenient time:`, svc.Name, svc.Price, svc.Duration)

	return tghelpers.EditOrSendMD(c, text, a.slotsKeyboard())
}

func (a *App) bookTime(c tele.Context) error {
	slot, ok := callbacks.TokenSuffix(c, prefTime)
	if !ok || slot == "" {
		return a.booking(c)
	}

	user := c.Sender()
	serviceID, found := a.sessions.GetTempInt64(user.ID, bookingServiceKey)
	if !found {
		return tghelpers.EditOrSendMD(c, "❌ No service selected. Start over, please.", a.bookingKeyboard())
	}
	svc, ok := a.catalog.Services[int(serviceID)]
	if !ok {
		return tghelpers.EditOrSendMD(c, "❌ No service selected. Start over, please.", a.bookingKeyboard())
	}
	a.sessions.ClearTemp(user.ID, bookingServiceKey)

	now := nowFn()
	a.store.AddBooking(user.ID, store.Booking{
		Service: svc.Name,
		Slot:    slot,
		Date:    now,
		Price:   svc.Price,
	})

	ctx := tghelpers.BuildContext(c)
	logger.SVCBooking.LogAttrs(ctx, slog.LevelInfo, "booking.confirmed",
		slog.Int64("user_id", user.ID),
		slog.Int("service_id", int(serviceID)),
		slog.String("slot", slot),
	)

	text := fmt.Sprintf(`✅ *Booking confirmed!*

👤 *Customer:* %s
📋 *Service:* %s
⏰ *Time:* %s
💰 *Price:* $%d
⏱ *Duration:* %s

📞 An administrator will contact you to confirm the appointment.

✨ *This is a demo of an in-chat booking flow!*`,
		mdSafe(fullName(user)), svc.Name, slot, svc.Price, svc.Duration)

	return tghelpers.EditOrSendMD(c, text, a.mainMenuKeyboard())
}

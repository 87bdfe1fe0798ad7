package bot

import (
	"fmt"
	"time"

	"github.com/m3rciful/demobot/core/logger"
	tghelpers "github.com/m3rciful/demobot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// activeUserWindow is the trailing period over which a user counts as
// active in the statistics panel.
const activeUserWindow = 7 * 24 * time.Hour

func (a *App) adminPanel(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, "🛠️ *Admin panel*", a.adminKeyboard())
}

func (a *App) adminStats(c tele.Context) error {
	now := nowFn()
	snap := a.store.Aggregate(now, activeUserWindow)

	ctx := tghelpers.BuildContext(c)
	logger.SVCStats.LogAttrs(ctx, slog.LevelDebug, "stats.render",
		slog.Int("count", snap.TotalUsers),
		slog.Int("bookings", snap.TotalBookings),
	)

	text := fmt.Sprintf(`📊 *Bot statistics*

👥 *Total users:* %d
🟢 *Active (7 days):* %d
🛒 *Open carts:* %d
📅 *Total bookings:* %d

📈 *Activity:*
• Dispatches: %d
• Sessions: %d

🕐 *Updated:* %s`,
		snap.TotalUsers, snap.ActiveUsers, snap.ActiveCarts, snap.TotalBookings,
		snap.Dispatches, snap.Sessions, now.Format("15:04:05"))

	return tghelpers.EditOrSendMD(c, text, keyboardBack(cbAdmin, "🔄 Refresh", cbAdminStats))
}

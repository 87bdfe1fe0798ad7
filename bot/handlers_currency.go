package bot

import (
	"fmt"
	"strings"

	tghelpers "github.com/m3rciful/demobot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// currency renders the static demo rate board; the refresh button simply
// re-renders it with a fresh timestamp.
func (a *App) currency(c tele.Context) error {
	var b strings.Builder
	b.WriteString("💱 *Currency rates vs RUB*\n\n")
	for _, r := range a.catalog.Rates {
		fmt.Fprintf(&b, "*%s*: %.1f ₽ (%s%%)\n", r.Code, r.Value, r.Change)
	}
	fmt.Fprintf(&b, "\n📈 *Updated:* %s", nowFn().Format("15:04"))
	b.WriteString("\n\n✨ *Demo of a financial info module*")

	return tghelpers.EditOrSendMD(c, b.String(), keyboardBack(cbMain, "🔄 Refresh", cbCurrency))
}

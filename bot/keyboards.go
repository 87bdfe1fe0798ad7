package bot

import (
	"fmt"

	"github.com/m3rciful/demobot/bot/catalog"
	"github.com/m3rciful/demobot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Callback tokens. Exact keys route by equality; pref* tokens carry a
// variable suffix and route by prefix. All prefixes are pairwise disjoint.
const (
	cbMain       = "main"
	cbShop       = "shop"
	cbCart       = "cart"
	cbCheckout   = "checkout"
	cbClearCart  = "clear_cart"
	cbBooking    = "booking"
	cbQuiz       = "quiz"
	cbQuizStart  = "quiz_start"
	cbCurrency   = "currency"
	cbAbout      = "about"
	cbContact    = "contact"
	cbAdmin      = "admin"
	cbAdminStats = "admin_stats"

	prefCategory = "category_"
	prefAdd      = "add_"
	prefBook     = "book_"
	prefTime     = "time_"
	prefQuizAns  = "quizans_"
)

func (a *App) mainMenuKeyboard() *tele.ReplyMarkup {
	rows := [][]keyboard.InlineBtn{
		{
			{Text: "🛍️ Shop", Unique: cbShop},
			{Text: "📅 Booking", Unique: cbBooking},
		},
		{
			{Text: "📊 Quiz", Unique: cbQuiz},
			{Text: "💰 Rates", Unique: cbCurrency},
		},
		{
			{Text: "ℹ️ About", Unique: cbAbout},
			{Text: "📞 Contact", Unique: cbContact},
		},
	}
	// The admin entry shows up only when an allow-list is configured.
	if len(a.cfg.Telegram.AdminIDs) > 0 {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: "🛠️ Admin panel", Unique: cbAdmin},
		})
	}
	return keyboard.InlineButtonsRows(rows...)
}

func (a *App) shopKeyboard() *tele.ReplyMarkup {
	var rows [][]keyboard.InlineBtn
	for _, cat := range a.catalog.Categories() {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: "📂 " + cat, Unique: prefCategory + cat},
		})
	}
	rows = append(rows,
		[]keyboard.InlineBtn{{Text: "🛒 My cart", Unique: cbCart}},
		[]keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbMain}},
	)
	return keyboard.InlineButtonsRows(rows...)
}

func (a *App) categoryKeyboard(products []catalog.Product) *tele.ReplyMarkup {
	var rows [][]keyboard.InlineBtn
	for _, p := range products {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: fmt.Sprintf("➕ %s - $%d", p.Name, p.Price), Unique: fmt.Sprintf("%s%d", prefAdd, p.ID)},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbShop}})
	return keyboard.InlineButtonsRows(rows...)
}

func (a *App) cartKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "✅ Checkout", Unique: cbCheckout},
			{Text: "🗑️ Clear cart", Unique: cbClearCart},
		},
		[]keyboard.InlineBtn{{Text: "🔙 Keep shopping", Unique: cbShop}},
	)
}

func (a *App) bookingKeyboard() *tele.ReplyMarkup {
	var rows [][]keyboard.InlineBtn
	for _, svc := range a.catalog.ServicesSorted() {
		rows = append(rows, []keyboard.InlineBtn{
			{
				Text:   fmt.Sprintf("%s - $%d (%s)", svc.Name, svc.Price, svc.Duration),
				Unique: fmt.Sprintf("%s%d", prefBook, svc.ID),
			},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbMain}})
	return keyboard.InlineButtonsRows(rows...)
}

func (a *App) slotsKeyboard() *tele.ReplyMarkup {
	slots := make([]keyboard.InlineBtn, 0, len(a.catalog.Slots))
	for _, slot := range a.catalog.Slots {
		slots = append(slots, keyboard.InlineBtn{Text: slot, Unique: prefTime + slot})
	}
	markup := keyboard.InlineButtonsNPerRow(slots, 3)
	back := keyboard.InlineButtonsRows([]keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbBooking}})
	markup.InlineKeyboard = append(markup.InlineKeyboard, back.InlineKeyboard...)
	return markup
}

func (a *App) adminKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "📊 Statistics", Unique: cbAdminStats}},
		[]keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbMain}},
	)
}

// keyboardBack builds an inline keyboard with optional extra (label, token)
// pairs followed by a back button targeting backTo.
func keyboardBack(backTo string, extraPairs ...string) *tele.ReplyMarkup {
	var rows [][]keyboard.InlineBtn
	for i := 0; i+1 < len(extraPairs); i += 2 {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: extraPairs[i], Unique: extraPairs[i+1]},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "🔙 Back", Unique: backTo}})
	return keyboard.InlineButtonsRows(rows...)
}

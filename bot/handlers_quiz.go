package bot

import (
	tghelpers "github.com/m3rciful/demobot/core/telegram/helpers"
	"github.com/m3rciful/demobot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

func (a *App) quiz(c tele.Context) error {
	text := `❓ *Quiz: which bot does your business need?*

Answer 3 questions and get a personalized recommendation!

Ready to start?`

	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "✅ Start the quiz", Unique: cbQuizStart}},
		[]keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbMain}},
	)
	return tghelpers.EditOrSendMD(c, text, markup)
}

func (a *App) quizStart(c tele.Context) error {
	text := `*Question 1/3*

🎯 What is the main goal of a bot for your business?

A) 🛍️ Selling products/services
B) 📅 Client scheduling
C) 👨‍💼 Customer support
D) 📢 Broadcasting to an audience`

	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "A) Sales", Unique: prefQuizAns + "a"},
			{Text: "B) Scheduling", Unique: prefQuizAns + "b"},
		},
		[]keyboard.InlineBtn{
			{Text: "C) Support", Unique: prefQuizAns + "c"},
			{Text: "D) Broadcasting", Unique: prefQuizAns + "d"},
		},
		[]keyboard.InlineBtn{{Text: "🔙 Cancel", Unique: cbMain}},
	)
	return tghelpers.EditOrSendMD(c, text, markup)
}

func (a *App) quizAnswer(c tele.Context) error {
	// The demo keeps the outcome identical for every answer.
	text := `🎉 *Thanks for taking the quiz!*

📊 *Based on your answers, you would benefit from:*

🤖 *A turnkey multi-purpose bot*

✨ *Recommended modules:*
• Storefront with a cart
• Booking system
• CRM integration
• Automatic notifications
• Analytics and reporting

💡 *Want a free consultation?*`

	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "📞 Get a consultation", Unique: cbContact}},
		[]keyboard.InlineBtn{{Text: "🛠️ Order a bot like this", Unique: cbAbout}},
		[]keyboard.InlineBtn{{Text: "🔙 Main menu", Unique: cbMain}},
	)
	return tghelpers.EditOrSendMD(c, text, markup)
}

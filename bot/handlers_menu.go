package bot

import (
	"fmt"

	"github.com/m3rciful/demobot/core/logger"
	coretelegram "github.com/m3rciful/demobot/core/telegram"
	"github.com/m3rciful/demobot/core/telegram/commands"
	"github.com/m3rciful/demobot/core/telegram/format"
	tghelpers "github.com/m3rciful/demobot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.startCmd,
		Description: "Open the main menu",
	})
	reg.RegisterCommand("/admin", commands.Command{
		Handler:     a.adminPanel,
		Description: "Open the admin panel",
		AdminOnly:   true,
		Hidden:      true,
	})
}

func (a *App) startCmd(c tele.Context) error {
	user := c.Sender()
	if user == nil {
		return nil
	}
	a.store.RecordSession(user.ID, nowFn())

	text := fmt.Sprintf(`👋 Hi, %s!

🤖 I am *%s*, built to show off what Telegram bots can do.

✨ *What I can do:*
• 🛍️ A full store with a shopping cart
• 📅 Service booking
• 📊 Interactive quizzes
• 💰 Currency rate board
• 🛠️ Admin panel

👇 Pick a section below to see it in action!`, mdSafe(user.FirstName), a.name)

	ctx := tghelpers.BuildContext(c)
	logger.Info(ctx, "tg", "user.start",
		slog.Int64("user_id", user.ID),
		slog.String("username", logger.SanitizeLimit(user.Username, 64)),
	)
	return tghelpers.SendMD(c, text, a.mainMenuKeyboard())
}

func (a *App) mainMenu(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, "🏠 *Main menu*", a.mainMenuKeyboard())
}

func (a *App) about(c tele.Context) error {
	text := `👨‍💻 *About the developer*

🚀 I build turnkey Telegram bots for businesses of any size.

🛠️ *The stack:*
• Go + long polling / webhooks
• In-memory and SQL-backed state
• Docker for deployment
• REST API integrations

🎯 *What you get:*
1. 📊 Process analysis and automation points
2. 🎨 A friendly conversational UX
3. 💻 Clean, maintainable code
4. 🚀 Hosting setup and rollout
5. 🔧 Warranty support`

	return tghelpers.EditOrSendMD(c, text, keyboardBack(cbMain, "📞 Get in touch", cbContact))
}

func (a *App) contact(c tele.Context) error {
	text := `📞 *Contact*

💬 *Telegram:* @demobot_dev
📧 *Email:* hello@demobot.dev

🕐 *Office hours:*
Mon-Fri: 9:00-18:00
Sat-Sun: by arrangement

⏱️ *Typical delivery:*
• Simple bot: 3-5 days
• Medium: 1-2 weeks
• Complex project: 3-4 weeks`

	return tghelpers.EditOrSendMD(c, text, keyboardBack(cbMain))
}

// accessDenied answers an unauthorized attempt on the same channel the
// event arrived on: an ephemeral alert for button presses, a plain reply
// for commands.
func (a *App) accessDenied(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "⛔ You don't have access to this function!",
			ShowAlert: true,
		})
	}
	return c.Send("⛔ You don't have access to this command!")
}

// rateLimited notifies a throttled user.
func (a *App) rateLimited(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{
			Text: "⏳ Too many requests, slow down a little.",
		})
	}
	return c.Send("⏳ Too many requests, slow down a little.")
}

// UnknownText handles free text that matches no command and no active flow.
func (a *App) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Send("🤔 I did not get that. Try /start to open the menu.")
	}
}

// UnknownDocument handles unexpected document uploads.
func (a *App) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Send("📄 I cannot process files. Try /start to open the menu.")
	}
}

// UnknownCallback handles button presses with no registered handler.
func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}
}

// mdSafe escapes user-controlled text interpolated into Markdown bodies.
func mdSafe(s string) string {
	out, err := format.EscapeMarkdown(s, format.MarkdownV1, "")
	if err != nil {
		return s
	}
	return out
}

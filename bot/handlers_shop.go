package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m3rciful/demobot/core/logger"
	"github.com/m3rciful/demobot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/demobot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

func (a *App) shop(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, "🛍️ *Our shop*\n\nPick a product category:", a.shopKeyboard())
}

func (a *App) category(c tele.Context) error {
	name, ok := callbacks.TokenSuffix(c, prefCategory)
	if !ok || name == "" {
		return a.shop(c)
	}

	products := a.catalog.ProductsByCategory(name)
	if len(products) == 0 {
		return tghelpers.EditOrSendMD(c, fmt.Sprintf("📂 *%s*\n\nNothing here yet.", name), a.shopKeyboard())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📂 *%s*\n\n", name)
	for _, p := range products {
		fmt.Fprintf(&b, "• *%s* - $%d\n  _%s_\n\n", p.Name, p.Price, p.Description)
	}
	return tghelpers.EditOrSendMD(c, b.String(), a.categoryKeyboard(products))
}

func (a *App) addToCart(c tele.Context) error {
	productID, err := callbacks.SuffixInt(c, prefAdd)
	if err != nil {
		return c.Send("❌ Product not found!")
	}
	product, ok := a.catalog.Products[productID]
	if !ok {
		return c.Send("❌ Product not found!")
	}

	user := c.Sender()
	a.store.AddToCart(user.ID, productID, 1)

	ctx := tghelpers.BuildContext(c)
	logger.SVCStore.LogAttrs(ctx, slog.LevelDebug, "cart.add",
		slog.Int64("user_id", user.ID),
		slog.Int("product_id", productID),
	)

	return tghelpers.SendMD(c, fmt.Sprintf("✅ *%s* added to your cart!\n💵 Price: $%d", product.Name, product.Price))
}

func (a *App) viewCart(c tele.Context) error {
	user := c.Sender()
	cart := a.store.CartItems(user.ID)
	if len(cart) == 0 {
		return tghelpers.EditOrSendMD(c, "🛒 Your cart is empty!", a.shopKeyboard())
	}

	ids := make([]int, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	b.WriteString("🛒 *Your cart*\n\n")
	total := 0
	for _, id := range ids {
		p, ok := a.catalog.Products[id]
		if !ok {
			continue
		}
		qty := cart[id]
		itemTotal := p.Price * qty
		total += itemTotal
		fmt.Fprintf(&b, "• %s\n  Qty: %d × $%d = $%d\n\n", p.Name, qty, p.Price, itemTotal)
	}
	fmt.Fprintf(&b, "💵 *Total: $%d*\n", total)

	return tghelpers.EditOrSendMD(c, b.String(), a.cartKeyboard())
}

func (a *App) checkout(c tele.Context) error {
	user := c.Sender()

	total := a.store.Checkout(user.ID, a.catalog)
	if total == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Your cart is empty!", ShowAlert: true})
	}

	ctx := tghelpers.BuildContext(c)
	logger.SVCStore.LogAttrs(ctx, slog.LevelInfo, "order.checkout",
		slog.Int64("user_id", user.ID),
		slog.Int("total", total),
	)

	text := fmt.Sprintf(`✅ *Order placed!*

👤 *Customer:* %s
💰 *Order total:* $%d
📅 *Date:* %s

📞 Our manager will contact you within 15 minutes to confirm the order.

✨ *This is a demo of an in-chat storefront!*`,
		mdSafe(fullName(user)), total, nowFn().Format("02.01.2006 15:04"))

	return tghelpers.EditOrSendMD(c, text, a.mainMenuKeyboard())
}

func (a *App) clearCart(c tele.Context) error {
	user := c.Sender()
	a.store.ClearCart(user.ID)
	return tghelpers.EditOrSendMD(c, "🗑️ Cart cleared!", a.shopKeyboard())
}

func fullName(u *tele.User) string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

package bot

import (
	coretelegram "shopbot/core/telegram"
	"shopbot/core/telegram/callbacks"
	"shopbot/flow"

	tele "gopkg.in/telebot.v4"
)

const (
	cbMenu = "menu"

	menuCreate = "create_product"
	menuEdit   = "edit_product"
	menuLink   = "link_products"
	menuHelp   = "show_help"
)

func (a *App) registerCallbacks(reg *coretelegram.Registry) error {
	wiring := []struct {
		key     string
		handler tele.HandlerFunc
	}{
		{cbMenu, a.handleMenu},
		{flow.CbColor, a.engine.HandleColorSelected},
		{flow.CbColorNew, a.engine.HandleColorNew},
		{flow.CbUpper, a.engine.HandleUpperSelected},
		{flow.CbUpperNew, a.engine.HandleUpperNew},
		{flow.CbSole, a.engine.HandleSoleSelected},
		{flow.CbSoleNew, a.engine.HandleSoleNew},
		{flow.CbUsage, a.engine.HandleUsageToggled},
		{flow.CbUsageNew, a.engine.HandleUsageNew},
		{flow.CbUsageNone, a.engine.HandleUsageClosed},
		{flow.CbUsageDone, a.engine.HandleUsageClosed},
		{flow.CbEditWhat, a.engine.HandleEditChoice},
		{flow.CbStockMode, a.engine.HandleStockMode},
	}
	for _, w := range wiring {
		if err := reg.RegisterCallback(w.key, w.handler); err != nil {
			return err
		}
	}
	return nil
}

// handleMenu dispatches the /start menu taps. The menu message is edited in
// place so stale menus cannot fire twice.
func (a *App) handleMenu(c tele.Context) error {
	switch callbacks.CallbackPayload(c) {
	case menuCreate:
		if err := c.Edit("🆕 Creating a new product."); err != nil {
			return err
		}
		return a.engine.StartCreate(c)
	case menuEdit:
		if err := c.Edit("✏️ Editing a product."); err != nil {
			return err
		}
		return a.engine.StartEdit(c)
	case menuLink:
		if err := c.Edit("🔗 Linking products."); err != nil {
			return err
		}
		return a.engine.StartLink(c)
	case menuHelp:
		return c.Edit(helpText)
	default:
		return nil
	}
}

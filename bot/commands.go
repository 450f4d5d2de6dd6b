package bot

import (
	coretelegram "shopbot/core/telegram"
	"shopbot/core/telegram/commands"
	tghelpers "shopbot/core/telegram/helpers"
	"shopbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

const helpText = "ℹ️ Bot commands:\n" +
	"/create - create a new product 🆕\n" +
	"/update - edit an existing product ✏️\n" +
	"/link - link related products 🔗\n" +
	"/cancel - abandon the current operation ❌\n" +
	"/help - show this message 📜"

const menuGreeting = "👋 Hi! What would you like to do?"

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Show the action menu",
	})
	reg.RegisterCommand("/create", commands.Command{
		Handler:     a.engine.StartCreate,
		Description: "Create a new product",
	})
	reg.RegisterCommand("/update", commands.Command{
		Handler:     a.engine.StartEdit,
		Description: "Edit an existing product",
		Aliases:     []string{"edit"},
	})
	reg.RegisterCommand("/link", commands.Command{
		Handler:     a.engine.StartLink,
		Description: "Link related products",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.engine.Cancel,
		Description: "Abandon the current operation",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Show available commands",
	})
}

func (a *App) handleStart(c tele.Context) error {
	markup := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Create a new product", Unique: cbMenu, Data: menuCreate},
		{Text: "Edit a product", Unique: cbMenu, Data: menuEdit},
		{Text: "Link products", Unique: cbMenu, Data: menuLink},
		{Text: "Help", Unique: cbMenu, Data: menuHelp},
	})
	_, err := c.Bot().Send(c.Recipient(), menuGreeting, markup)
	return err
}

func (a *App) handleHelp(c tele.Context) error {
	return tghelpers.SendText(c, helpText)
}

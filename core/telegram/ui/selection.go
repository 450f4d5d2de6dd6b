package ui

import (
	"shopbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// SelectionItem is one selectable entry in an inline selection menu.
type SelectionItem struct {
	Label   string
	Payload string
	Checked bool
}

// SelectionMenu describes an inline keyboard of selectable items plus
// optional action rows (done, add new, cancel) appended at the bottom.
type SelectionMenu struct {
	Unique  string
	Items   []SelectionItem
	PerRow  int
	Actions []keyboard.InlineBtn
}

const checkedPrefix = "✅ "

// Markup renders the menu as a reply markup. Checked items are prefixed
// with a checkmark so multi-select menus show current state in place.
func (m SelectionMenu) Markup() *tele.ReplyMarkup {
	perRow := m.PerRow
	if perRow <= 0 {
		perRow = 2
	}

	buttons := make([]keyboard.InlineBtn, 0, len(m.Items))
	for _, item := range m.Items {
		label := item.Label
		if item.Checked {
			label = checkedPrefix + label
		}
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   label,
			Unique: m.Unique,
			Data:   item.Payload,
		})
	}

	markup := keyboard.InlineButtonsNPerRow(buttons, perRow)
	for _, action := range m.Actions {
		btn := markup.Data(action.Text, action.Unique, action.Data)
		markup.InlineKeyboard = append(markup.InlineKeyboard, []tele.InlineButton{*btn.Inline()})
	}
	return markup
}

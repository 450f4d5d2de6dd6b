package bot

import (
	tghelpers "shopbot/core/telegram/helpers"
	"shopbot/core/telegram/ui"

	tele "gopkg.in/telebot.v4"
)

const (
	msgUnknownText     = "🤔 I don't recognize that. Send /help to see what I can do."
	msgUnexpectedPhoto = "🖼️ No flow is waiting for a photo. Send /create to start a product."
	msgAccessDenied    = "⛔ You are not allowed to use this bot. Contact an administrator."
)

// accessDenied answers updates from senders outside the allow-list.
func accessDenied(c tele.Context) error {
	if c.Callback() != nil {
		_ = c.Respond(&tele.CallbackResponse{})
	}
	return tghelpers.SendText(c, msgAccessDenied)
}

// fallbacks answers updates that match no command, callback, or active flow.
type fallbacks struct{}

var _ ui.FallbackProvider = fallbacks{}

func (fallbacks) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, msgUnknownText)
	}
}

func (fallbacks) UnknownPhoto() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, msgUnexpectedPhoto)
	}
}

func (fallbacks) UnknownCallback() tele.HandlerFunc {
	// stale menu taps are already answered by the callback router
	return func(tele.Context) error { return nil }
}

package helpers

import (
	"errors"
	"log/slog"
	"strconv"
	"sync/atomic"

	"shopbot/core/logger"
	"shopbot/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

var globalDispatcher atomic.Pointer[sender.Dispatcher]

// SetDispatcher wires the asynchronous sender used by helper functions.
func SetDispatcher(d *sender.Dispatcher) {
	globalDispatcher.Store(d)
}

func currentDispatcher() *sender.Dispatcher {
	return globalDispatcher.Load()
}

func sendAsync(c tele.Context, action, endpoint string, run func() error) error {
	disp := currentDispatcher()
	if disp == nil {
		return run()
	}

	ctx := BuildContext(c)
	if err := disp.Enqueue(ctx, action, endpoint, run); err != nil {
		if errors.Is(err, sender.ErrQueueFull) || errors.Is(err, sender.ErrQueueClosed) {
			logger.Warn(ctx, "tg.sender", "queue.fallback",
				slog.String("action", action),
				slog.String("endpoint", endpoint),
				slog.String("err", err.Error()),
			)
			return run()
		}
		return err
	}
	return nil
}

// SendText sends raw text (no parse mode) to the current recipient.
func SendText(c tele.Context, text string, opts ...*tele.SendOptions) error {
	var sendOpts *tele.SendOptions
	if len(opts) > 0 {
		sendOpts = opts[0]
	}
	return sendAsync(c, "send.text", "sendMessage", func() error {
		if sendOpts != nil {
			return c.Send(text, sendOpts)
		}
		return c.Send(text)
	})
}

// DeleteMessage removes a previously sent message by id, best effort.
// Failures (already deleted, too old) are logged at DEBUG and swallowed
// so flow progression never depends on UI cleanup.
func DeleteMessage(c tele.Context, messageID int) {
	if messageID == 0 {
		return
	}
	chat := c.Chat()
	if chat == nil {
		return
	}
	msg := tele.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chat.ID}
	if err := c.Bot().Delete(msg); err != nil {
		ctx := BuildContext(c)
		logger.Debug(ctx, "tg", "cleanup.delete_failed",
			slog.Int("message_id", messageID),
			slog.String("err", err.Error()),
		)
	}
}

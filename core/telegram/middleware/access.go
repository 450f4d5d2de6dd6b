package middleware

import (
	"context"

	"shopbot/core/logger"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Guard answers allow-list membership checks. An empty allow-list permits
// nobody.
type Guard struct {
	allowed map[int64]struct{}
}

// NewGuard builds a guard over the configured operator IDs.
func NewGuard(ids []int64) *Guard {
	allowed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	return &Guard{allowed: allowed}
}

// Permitted reports whether the operator is on the allow-list.
func (g *Guard) Permitted(operatorID int64) bool {
	_, ok := g.allowed[operatorID]
	return ok
}

// AccessOptions defines how the allow-list guard behaves.
type AccessOptions struct {
	AllowedUsers []int64
	OnReject     tele.HandlerFunc
}

// AccessMiddleware drops every update whose sender is not on the allow-list,
// including updates that carry no sender at all. Every check is audited:
// grants at DEBUG, denials at WARN with the sender identity. Denied updates
// never reach downstream handlers or mutate session state.
func AccessMiddleware(opts AccessOptions) tele.MiddlewareFunc {
	guard := NewGuard(opts.AllowedUsers)

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				logger.Warn(context.Background(), "tg", "access.denied",
					slog.String("outcome", "denied"),
					slog.String("reason", "no_sender"),
					slog.Int("update_id", c.Update().ID),
				)
				return nil
			}
			if guard.Permitted(sender.ID) {
				logger.Debug(context.Background(), "tg", "access.granted",
					slog.Int64("user_id", sender.ID),
				)
				return next(c)
			}

			logger.Warn(context.Background(), "tg", "access.denied",
				slog.String("outcome", "denied"),
				slog.Int64("user_id", sender.ID),
				slog.String("username", sender.Username),
				slog.Int("update_id", c.Update().ID),
			)

			if opts.OnReject != nil {
				return opts.OnReject(c)
			}
			if cb := c.Callback(); cb != nil {
				_ = c.Respond(&tele.CallbackResponse{})
			}
			return nil
		}
	}
}

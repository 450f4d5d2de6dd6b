package telegram

import (
	coreconfig "shopbot/core/config"
	"shopbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// DefaultMiddlewares builds the shared middleware chain: panic recovery first,
// then the allow-list guard, then receipt logging and message metrics.
// The guard sits before logging handlers so denied updates produce only the
// access audit line.
func DefaultMiddlewares(cfg *coreconfig.Config, onRejected tele.HandlerFunc) []Middleware {
	mws := []Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
	}

	if cfg != nil {
		mws = append(mws, Middleware{
			Name: "access",
			Use: middleware.AccessMiddleware(middleware.AccessOptions{
				AllowedUsers: cfg.Access.AllowedUsers,
				OnReject:     onRejected,
			}),
		})
	}

	mws = append(mws,
		Middleware{Name: "logger", Use: middleware.LoggerMiddleware},
		Middleware{Name: "metrics", Use: middleware.MessageMetricsMiddleware},
	)

	return mws
}

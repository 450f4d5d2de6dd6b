// Package bot wires the flow engine, command registry, and transport into a
// runnable Telegram application.
package bot

import (
	"context"
	"fmt"
	"strings"

	coreconfig "shopbot/core/config"
	coretelegram "shopbot/core/telegram"
	"shopbot/core/telegram/health"
	"shopbot/core/telegram/router"
	"shopbot/flow"
)

// App is the assembled bot application.
type App struct {
	cfg    *coreconfig.Config
	engine *flow.Engine
	store  flow.Store
	health *health.Server
}

// New builds the application over the given catalog.
func New(cfg *coreconfig.Config, cat flow.Catalog) *App {
	store := flow.NewMemoryStore()
	return &App{
		cfg:    cfg,
		engine: flow.NewEngine(store, cat),
		store:  store,
	}
}

// CoreConfig exposes the embedded configuration to the runner.
func (a *App) CoreConfig() *coreconfig.Config { return a.cfg }

// Engine exposes the flow engine, mainly for tests.
func (a *App) Engine() *flow.Engine { return a.engine }

// TelegramRunOptions assembles the full bot runtime: registry, middleware
// chain, and routes.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.registerCommands(reg)
	if err := a.registerCallbacks(reg); err != nil {
		return coretelegram.RunOptions{}, fmt.Errorf("bot: callback wiring failed: %w", err)
	}

	fb := fallbacks{}
	routes := router.CommandRoutes(reg)
	routes = append(routes, router.TextRoutes(a.engine, reg, router.TextOptions{
		UnknownText:  fb.UnknownText(),
		UnknownPhoto: fb.UnknownPhoto(),
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{NotFound: fb.UnknownCallback()}))

	opts := coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, accessDenied),
		Routes:      routes,
	}

	if strings.EqualFold(a.cfg.Telegram.RunMode, coreconfig.RunModeWebhook) {
		opts.OnStart = func(ctx context.Context, rt coretelegram.Runtime) error {
			a.health = health.New(a.cfg.Webhook.HealthListen)
			a.health.Start()
			return nil
		}
		opts.OnStop = func(ctx context.Context, rt coretelegram.Runtime) error {
			return a.health.Stop(ctx)
		}
	}

	return opts, nil
}

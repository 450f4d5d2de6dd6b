// Package health runs a minimal liveness listener alongside the bot.
// Telebot's webhook poller owns the request mux on its own listener, so
// the /ping probe gets a dedicated server.
package health

import (
	"context"
	"net/http"
	"time"

	"shopbot/core/logger"
	"log/slog"
)

// Server is a liveness probe endpoint bound to its own listener.
type Server struct {
	srv *http.Server
}

// New builds a health server listening on addr (host:port).
func New(addr string) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.TG.Error("health listener failed",
				slog.String("event", "health"),
				slog.String("listen", s.srv.Addr),
				slog.String("err", err.Error()),
			)
		}
	}()
	logger.TG.Info("health listener started",
		slog.String("event", "health"),
		slog.String("listen", s.srv.Addr),
	)
}

// Stop shuts the listener down, waiting up to the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

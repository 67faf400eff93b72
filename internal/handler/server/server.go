package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bagdasarian/octofit-tracker/internal/config"
)

type Server struct {
	server *http.Server
	logger *slog.Logger
}

func NewServer(handler http.Handler, cfg config.HTTPConfig, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Start блокируется до остановки сервера. После Shutdown возвращает nil
func (s *Server) Start() error {
	s.logger.Info("server starting", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

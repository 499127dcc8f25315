package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/a11ykit/achecker-client/internal/checker"
	"github.com/a11ykit/achecker-client/internal/config"
	"github.com/a11ykit/achecker-client/internal/observability"
)

type Server struct {
	cfg     *config.Config
	logger  *observability.Logger
	checker *checker.Checker
	handler http.Handler
	http    *http.Server
}

func NewServer(cfg *config.Config, logger *observability.Logger, c *checker.Checker) *Server {

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		checker: c,
	}

	s.handler = s.routes()

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Timeout*time.Duration(max(cfg.Retries, 1)) + 10*time.Second,
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.http.Shutdown(context.Background())
	}()

	s.logger.Info("starting server",
		"port", s.cfg.Port,
		"env", s.cfg.Env,
		"auth", s.cfg.JWTSecret != "",
	)

	if err := s.http.ListenAndServe(); err != nil &&
		err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"

	"github.com/stratus-hq/site/config"
	h "github.com/stratus-hq/site/handlers"
)

const shutdownTimeout = 10 * time.Second

// Server is the fiber application with the site's handlers mounted.
type Server struct {
	App  *fiber.App
	cfg  *config.Config
	site *h.Site
}

// New builds the application for cfg. Call Close when done with a server
// that was never started.
func New(cfg *config.Config) (*Server, error) {
	site, err := h.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          h.CustomErrorHandler,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(h.RequestLogger)
	app.Use(h.RateLimiter(cfg))

	s := &Server{App: app, cfg: cfg, site: site}
	s.registerRoutes()
	return s, nil
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", s.cfg.Port).Msg("starting server")
		errCh <- s.App.Listen(":" + s.cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		s.Close()
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.Close()
	if err := s.App.ShutdownWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close releases resources held by the handlers.
func (s *Server) Close() {
	s.site.Close()
}

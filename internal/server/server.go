// Package server provides the HTTP REST API for the extraction engine.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/db"
	"github.com/jonathan/resume-intel/internal/extractor"
	"github.com/jonathan/resume-intel/internal/server/middleware"
	"github.com/jonathan/resume-intel/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	engine      *extractor.Cached
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string            // empty disables persistence endpoints
	Engine      *extractor.Engine // required
	JWT         *config.JWTConfig // nil disables authentication
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("extraction engine is required")
	}

	s := &Server{
		engine:      extractor.NewCached(cfg.Engine),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(context.Background()); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	if cfg.JWT != nil {
		s.jwtService = NewJWTService(cfg.JWT)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.rateLimiter.Middleware(s.router()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// router builds the route table. The health endpoint is always open;
// everything else requires a token when authentication is configured.
func (s *Server) router() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /extract", s.handleExtract)
	api.HandleFunc("GET /extractions", s.handleListExtractions)
	api.HandleFunc("GET /extractions/{id}", s.handleGetExtraction)

	var protected http.Handler = api
	if s.jwtService != nil {
		protected = middleware.Auth(s.jwtService.AsTokenValidator())(api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/", protected)
	return mux
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	return nil
}

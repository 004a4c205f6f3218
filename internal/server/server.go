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

	"github.com/mlaurier/doccheck/internal/analysis"
	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/config"
	"github.com/mlaurier/doccheck/internal/db"
	"github.com/mlaurier/doccheck/internal/llm"
	"github.com/mlaurier/doccheck/internal/server/middleware"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	SchemaDir   string
	Summarizer  llm.Summarizer // nil disables summaries
}

// Server is the HTTP API around the compliance engine. The engine itself
// is pure; everything stateful (storage, auth) lives here.
type Server struct {
	httpServer *http.Server
	engine     *analysis.Engine
	cat        *catalog.Catalog
	db         *db.DB
	schemaDir  string
	summarizer llm.Summarizer
	jwtService *JWTService
	passwords  *config.PasswordConfig
}

// New creates a server instance. The catalog is loaded once here; a load
// failure (empty catalog) is fatal, per the engine's error contract.
func New(cfg Config) (*Server, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule catalog: %w", err)
	}

	s := &Server{
		engine:     analysis.NewEngine(cat),
		cat:        cat,
		schemaDir:  cfg.SchemaDir,
		summarizer: cfg.Summarizer,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database

		passwords, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		s.passwords = passwords

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Persistence endpoints only exist when a
// database is configured, and then require authentication.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /requirements/{document_type}", s.handleRequirements)

	if s.db == nil {
		mux.HandleFunc("POST /analyze", s.handleAnalyze)
		return mux
	}

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("POST /analyze", auth(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("GET /analyses", auth(http.HandlerFunc(s.handleListAnalyses)))
	mux.Handle("GET /analyses/{id}", auth(http.HandlerFunc(s.handleGetAnalysis)))

	return mux
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Printf("[SERVER] received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nopickles/nopickles/internal/agent"
	"github.com/nopickles/nopickles/internal/config"
	"github.com/nopickles/nopickles/internal/handlers"
	"github.com/nopickles/nopickles/internal/menu"
	"github.com/nopickles/nopickles/internal/metrics"
	"github.com/nopickles/nopickles/internal/middleware"
	"github.com/nopickles/nopickles/internal/session"
	"github.com/nopickles/nopickles/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting order-taking api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize the menu catalog and session store
	catalog := menu.NewCatalog()
	log.Info("menu catalog loaded",
		"items", len(catalog.Items()),
		"categories", len(catalog.Categories()),
	)

	store := session.NewStore(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		func() *agent.Agent { return agent.New(catalog) },
	)
	store.StartJanitor(time.Duration(cfg.Session.JanitorIntervalSecs) * time.Second)
	defer store.Close()

	// Initialize metrics
	reg := metrics.NewRegistry(func() float64 { return float64(store.Len()) })

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, log)
	menuHandler := handlers.NewMenuHandler(catalog, log)
	sessionHandler := handlers.NewSessionHandler(store, reg, log)
	chatHandler := handlers.NewChatHandler(store, reg, log)
	orderHandler := handlers.NewOrderHandler(store, reg, log)
	adminHandler := handlers.NewAdminHandler(store, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health and metrics endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", reg.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuHandler.GetMenu)

		r.Post("/session/start", sessionHandler.Start)
		r.Delete("/session/{sessionID}", sessionHandler.End)

		r.Post("/chat", chatHandler.Chat)
		r.Post("/order/complete", orderHandler.Complete)

		// Admin endpoints require an API key
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Get("/sessions", adminHandler.GetSessionStats)
		})
	})

	// Kiosk page and static assets
	staticDir := cfg.Server.StaticDir
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mahmoodhamdi/scraper-api/internal/api"
	"github.com/mahmoodhamdi/scraper-api/internal/cache"
	"github.com/mahmoodhamdi/scraper-api/internal/config"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/mahmoodhamdi/scraper-api/internal/repository/postgres"
	"github.com/mahmoodhamdi/scraper-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize scrape cache
	store, err := cache.NewFileStore(cfg.CacheDir)
	if err != nil {
		log.Fatalf("failed to open cache dir: %v", err)
	}
	scrapeCache := cache.New(store, cfg.CacheTTL)

	// Initialize Liquipedia client
	client := liquipedia.NewClient(cfg.LiquipediaBase, cfg.FetchTimeout)

	// Initialize services
	services := service.NewServices(repos, client, scrapeCache, cfg)

	// Make sure the upload dir exists before the first thumbnail arrives
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	// Initialize router
	router := api.NewRouter(services, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hauts/exhibition/api"
	dbfiles "github.com/hauts/exhibition/db"
	"github.com/hauts/exhibition/internal/config"
	"github.com/hauts/exhibition/internal/content"
	"github.com/hauts/exhibition/internal/db"
	"github.com/hauts/exhibition/internal/repository/sqlite"
	"github.com/hauts/exhibition/pkg/mailer"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Starting exhibition server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection and apply migrations
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Migrate(ctx, database, dbfiles.Migrations); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	// Load and validate the bundled content datasets
	catalog, err := content.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load content catalog: %v", err)
	}

	// Email relay client
	mail, err := mailer.NewClient(mailer.Config{
		APIKey:  cfg.Mail.APIKey,
		From:    cfg.Mail.From,
		To:      cfg.Mail.To,
		Timeout: cfg.Mail.Timeout,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to create mail client: %v", err)
	}

	repo := sqlite.New(database, nil)
	handler := api.SetupRoutes(cfg, version, buildTime, repo, mail, catalog)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close external resources
	if err := mail.Close(); err != nil {
		log.Printf("Error closing mail client: %v", err)
	}
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}

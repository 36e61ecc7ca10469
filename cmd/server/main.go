package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luxenails/nail-booking-backend/internal/app"
	"github.com/luxenails/nail-booking-backend/internal/booking"
	"github.com/luxenails/nail-booking-backend/internal/config"
	"github.com/luxenails/nail-booking-backend/internal/db"
	"github.com/luxenails/nail-booking-backend/internal/notify"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Ledger backend: Postgres when DB_DSN is set, JSON file otherwise.
	appCfg := app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		BookingsFile: cfg.BookingsFile,
		Notifier:     newNotifier(cfg),
	}
	if cfg.DBDSN != "" {
		pool, err := db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			log.Fatalf("failed to connect to db: %v", err)
		}
		defer pool.Close()
		appCfg.DBPool = pool
	} else {
		log.Printf("bookings file: %s", cfg.BookingsFile)
	}

	container := app.NewContainer(appCfg)

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}

// newNotifier picks the confirmation transport from config: MailerSend first,
// then SMTP, then the log-only fallback.
func newNotifier(cfg *config.Config) booking.Notifier {
	switch {
	case cfg.MailerSendAPIKey != "":
		return notify.NewMailerSendNotifier(cfg.MailerSendAPIKey, cfg.MailFromName, cfg.MailFromEmail)
	case cfg.SMTPHost != "":
		return notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFromEmail, cfg.SMTPUser, cfg.SMTPPass)
	default:
		return notify.NewLogNotifier()
	}
}

package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/YapBingYen/salesdesk-chat/internal/chat"
	"github.com/YapBingYen/salesdesk-chat/internal/config"
	"github.com/YapBingYen/salesdesk-chat/internal/intent"
	"github.com/YapBingYen/salesdesk-chat/internal/notify"
)

func main() {
	cfg := config.New()
	logger := slog.Default()

	if cfg.MockMode {
		// Recognized but inert; documented for parity with the widget.
		logger.Info("MOCK_MODE is set but has no effect on control flow")
	}

	classifier, err := intent.NewClassifier()
	if err != nil {
		log.Fatalf("classifier build error: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Chat module wiring ---
	store := chat.SeedStore()
	notifier := notify.NewClient(
		cfg.IntentWebhookURL,
		cfg.BookingWebhookURL,
		cfg.WebhookTimeout,
		classifier,
		logger,
	)
	service := chat.NewService(store, notifier, logger)
	handler := chat.NewHandler(store, service)

	chat.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

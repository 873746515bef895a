package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YapBingYen/salesdesk-chat/internal/config"
	"github.com/YapBingYen/salesdesk-chat/internal/intent"
	"github.com/YapBingYen/salesdesk-chat/internal/sim"
)

// intent-sim stands in for the two n8n webhooks during local development:
// point INTENT_WEBHOOK_URL and BOOKING_WEBHOOK_URL at it and the widget
// works without a live workflow instance.
func main() {
	cfg := config.NewSim()
	logger := slog.Default()

	classifier, err := intent.NewClassifier()
	if err != nil {
		log.Fatalf("classifier build error: %v", err)
	}

	var responder sim.Responder = sim.NewKeywordResponder(classifier)
	if cfg.OpenAIAPIKey != "" {
		responder = sim.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.OpenAIModel, responder, logger)
		logger.Info("openai responder enabled", "model", cfg.OpenAIModel)
	}

	r := chi.NewRouter()
	sim.RegisterRoutes(r, sim.NewHandler(responder, cfg.FailRate, logger))

	log.Printf("intent-sim listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

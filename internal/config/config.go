package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Outbound webhook endpoints
	IntentWebhookURL  string        `env:"INTENT_WEBHOOK_URL" envDefault:"https://yapbingyen.app.n8n.cloud/webhook/intent"`
	BookingWebhookURL string        `env:"BOOKING_WEBHOOK_URL" envDefault:"https://yapbingyen.app.n8n.cloud/webhook/send-appointment"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`

	// Recognized but not wired into control flow; kept for parity with the
	// widget's original config surface.
	MockMode bool `env:"MOCK_MODE" envDefault:"false"`
}

func New() *Config {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// SimConfig configures the local webhook simulator.
type SimConfig struct {
	Port         string  `env:"SIM_PORT" envDefault:"8090"`
	OpenAIAPIKey string  `env:"OPENAI_API_KEY"`
	OpenAIModel  string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	FailRate     float64 `env:"SIM_FAIL_RATE" envDefault:"0"`
}

func NewSim() *SimConfig {
	_ = godotenv.Load()
	cfg := &SimConfig{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse sim config: %v", err)
	}
	return cfg
}

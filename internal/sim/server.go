package sim

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler mimics the two n8n webhook endpoints the widget posts to, shapes
// included: the intent endpoint answers with an array wrapping a stringified
// JSON object, which is what a default "respond to webhook" node emits. That
// exercises the full normalization precedence on the consuming side.
type Handler struct {
	responder Responder
	failRate  float64
	log       *slog.Logger
}

func NewHandler(responder Responder, failRate float64, log *slog.Logger) *Handler {
	return &Handler{responder: responder, failRate: failRate, log: log}
}

func (h *Handler) HandleIntent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if h.failRate > 0 && rand.Float64() < h.failRate {
		http.Error(w, "simulated outage", http.StatusBadGateway)
		return
	}

	resp, err := h.responder.Respond(r.Context(), payload.Message)
	if err != nil {
		http.Error(w, "responder error", http.StatusInternalServerError)
		return
	}

	inner, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "encoding error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode([]any{string(inner)})
}

func (h *Handler) HandleBooking(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerName string `json:"customerName"`
		Customer     string `json:"customer"`
		Email        string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	name := payload.CustomerName
	if name == "" {
		name = payload.Customer
	}
	if name == "" {
		http.Error(w, "missing customer name", http.StatusBadRequest)
		return
	}

	h.log.Info("booking received", "customer", name, "email", payload.Email)
	w.WriteHeader(http.StatusOK)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/webhook/intent", h.HandleIntent)
	r.Post("/webhook/send-appointment", h.HandleBooking)
}

package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	store *Store
	svc   *Service
}

func NewHandler(store *Store, svc *Service) *Handler {
	return &Handler{store: store, svc: svc}
}

func (h *Handler) ListConversations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"conversations": h.store.Summaries(),
		"isLoading":     h.store.Loading(),
	})
}

func (h *Handler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	if !h.store.Select(chi.URLParam(r, "id")) {
		http.Error(w, "unknown conversation", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, ok := h.store.Messages(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "unknown conversation", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	msg, err := h.svc.SendUserMessage(r.Context(), payload.Text)
	switch {
	case errors.Is(err, ErrEmptyMessage):
		// Silent no-op, mirroring the widget's disabled send button.
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, ErrSendInFlight):
		http.Error(w, "send already in flight", http.StatusConflict)
	case errors.Is(err, ErrNoActiveUser):
		http.Error(w, "no active conversation", http.StatusConflict)
	case err != nil:
		http.Error(w, "processing error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, msg)
	}
}

func (h *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	msg, err := h.svc.ConfirmBooking(r.Context(), payload.Email)
	switch {
	case errors.Is(err, ErrNoActiveUser):
		http.Error(w, "no active conversation", http.StatusConflict)
	case err != nil:
		http.Error(w, "booking failed", http.StatusBadGateway)
	default:
		writeJSON(w, http.StatusOK, msg)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

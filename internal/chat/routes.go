package chat

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/conversations", h.ListConversations)
	r.Post("/api/conversations/{id}/select", h.SelectConversation)
	r.Get("/api/conversations/{id}/messages", h.ListMessages)
	r.Post("/api/messages", h.SendMessage)
	r.Post("/api/booking", h.ConfirmBooking)
}

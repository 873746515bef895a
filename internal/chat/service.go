package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YapBingYen/salesdesk-chat/internal/intent"
)

const (
	connectTroubleReply = "Sorry, I'm having trouble connecting right now. Please try again."
	bookingConfirmed    = "Booking Confirmed – A confirmation email has been sent."
)

// Service orchestrates store mutations around the outbound webhook calls.
type Service struct {
	store    *Store
	notifier Notifier
	log      *slog.Logger
}

func NewService(store *Store, notifier Notifier, log *slog.Logger) *Service {
	return &Service{store: store, notifier: notifier, log: log}
}

// SendUserMessage runs one user→ai round trip against the conversation that
// is active when the call starts. The target conversation id is captured
// here, so the reply always lands in that conversation even if the active
// selection changes while the webhook call is in flight.
func (s *Service) SendUserMessage(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	user, ok := s.store.Active()
	if !ok {
		return Message{}, ErrNoActiveUser
	}
	targetID := user.ID

	if err := s.store.BeginSend(); err != nil {
		return Message{}, err
	}
	defer s.store.EndSend()

	if err := s.store.Append(targetID, NewMessage(text, SenderUser)); err != nil {
		return Message{}, err
	}

	resp, err := s.notifier.SendMessage(ctx, text)
	if err != nil {
		// The notifier already falls back locally, so landing here means
		// even the fallback path broke. The conversation still gets a reply.
		s.log.Error("send round trip failed past the fallback", "err", err)
		apology := NewMessage(connectTroubleReply, SenderAI)
		_ = s.store.Append(targetID, apology)
		return apology, nil
	}

	reply := NewMessage(resp.Reply, SenderAI)
	reply.Intent = resp.Intent
	reply.IsHotLead = intent.IsHotLead(text)
	if err := s.store.Append(targetID, reply); err != nil {
		return Message{}, err
	}

	s.log.Info("ai reply appended",
		"conversation", targetID,
		"intent", reply.Intent,
		"hotLead", reply.IsHotLead)
	return reply, nil
}

// ConfirmBooking posts the active customer's booking. A failed webhook call
// surfaces as an error and no confirmation is appended.
func (s *Service) ConfirmBooking(ctx context.Context, email string) (Message, error) {
	user, ok := s.store.Active()
	if !ok {
		return Message{}, ErrNoActiveUser
	}

	if err := s.notifier.BookAppointment(ctx, user.Name, email); err != nil {
		return Message{}, err
	}

	text := bookingConfirmed
	if email != "" {
		text = fmt.Sprintf("I've sent the meeting details to %s. Check your inbox!", email)
	}
	conf := NewMessage(text, SenderAI)
	if err := s.store.Append(user.ID, conf); err != nil {
		return Message{}, err
	}
	return conf, nil
}

package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/YapBingYen/salesdesk-chat/internal/intent"
	"github.com/YapBingYen/salesdesk-chat/internal/notify"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Status string `json:"status,omitempty"`
}

// Message is immutable once appended to a conversation.
type Message struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Sender    Sender       `json:"sender"`
	Timestamp time.Time    `json:"timestamp"`
	Intent    intent.Label `json:"intent,omitempty"`
	IsHotLead bool         `json:"isHotLead,omitempty"`
}

func NewMessage(text string, sender Sender) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}
}

// Summary is what the conversation sidebar renders per customer.
type Summary struct {
	User         User      `json:"user"`
	LastMessage  string    `json:"lastMessage,omitempty"`
	LastActivity time.Time `json:"lastActivity"`
	Active       bool      `json:"active"`
}

// Notifier is the outbound boundary to the external webhook endpoints.
type Notifier interface {
	SendMessage(ctx context.Context, text string) (notify.IntentResponse, error)
	BookAppointment(ctx context.Context, customerName, email string) error
}

var (
	ErrUnknownUser  = errors.New("unknown user id")
	ErrNoActiveUser = errors.New("no active user selected")
	ErrEmptyMessage = errors.New("empty message")
	ErrSendInFlight = errors.New("a send is already in flight")
)

package chat

import (
	"sync"
	"time"

	"github.com/samber/lo"
)

type conversation struct {
	messages     []Message
	lastMessage  string
	lastActivity time.Time
}

// Store is the single source of truth for users, the active selection and
// the per-customer message logs. All mutation goes through it; accessors
// hand out copies. Safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	users         []User
	conversations map[string]*conversation
	activeUserID  string
	sending       bool
}

// NewStore seeds a conversation entry for every user, so any id the store
// knows always has a (possibly empty) log.
func NewStore(users []User) *Store {
	s := &Store{conversations: make(map[string]*conversation, len(users))}
	for _, u := range users {
		s.users = append(s.users, u)
		s.conversations[u.ID] = &conversation{}
	}
	return s
}

// Select activates the given customer. Unknown ids are ignored and reported
// via the return value; re-selecting the active id is a no-op.
func (s *Store) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[id]; !ok {
		return false
	}
	s.activeUserID = id
	return true
}

func (s *Store) Active() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.users, func(u User) bool { return u.ID == s.activeUserID })
}

// Append adds a message to the given conversation and refreshes the sidebar
// preview metadata.
func (s *Store) Append(userID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[userID]
	if !ok {
		return ErrUnknownUser
	}
	conv.messages = append(conv.messages, msg)
	conv.lastMessage = msg.Text
	conv.lastActivity = msg.Timestamp
	return nil
}

func (s *Store) Messages(userID string) ([]Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[userID]
	if !ok {
		return nil, false
	}
	out := make([]Message, len(conv.messages))
	copy(out, conv.messages)
	return out, true
}

func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Summaries() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.users, func(u User, _ int) Summary {
		conv := s.conversations[u.ID]
		return Summary{
			User:         u,
			LastMessage:  conv.lastMessage,
			LastActivity: conv.lastActivity,
			Active:       u.ID == s.activeUserID,
		}
	})
}

// BeginSend gates the single outstanding round trip. A second send while one
// is pending is rejected, never queued.
func (s *Store) BeginSend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sending {
		return ErrSendInFlight
	}
	s.sending = true
	return nil
}

func (s *Store) EndSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false
}

// Loading reports whether a send round trip is outstanding.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sending
}

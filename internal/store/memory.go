package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"message-api/internal/domain"
)

// MemoryStore implements Store with an in-memory map. A single mutex covers
// every operation end to end, so the collection is never observed in a
// partially-updated state and concurrent identical inserts resolve to
// exactly one winner. State is volatile; nothing survives a restart.
type MemoryStore struct {
	mu       sync.Mutex
	messages map[string]domain.Message
	order    []string          // message ids in insertion order
	byText   map[string]string // case-folded text -> message id
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		messages: make(map[string]domain.Message),
		byText:   make(map[string]string),
	}
}

func (s *MemoryStore) Insert(_ context.Context, text string) (domain.Message, error) {
	folded := strings.ToLower(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byText[folded]; exists {
		return domain.Message{}, ErrDuplicate
	}

	msg := domain.Message{
		ID:        newMessageID(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	s.messages[msg.ID] = msg
	s.order = append(s.order, msg.ID)
	s.byText[folded] = msg.ID
	return msg, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return domain.Message{}, ErrNotFound
	}
	return msg, nil
}

func (s *MemoryStore) ListAll(_ context.Context) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.order, func(id string, _ int) domain.Message {
		return s.messages[id]
	})
}

func (s *MemoryStore) DeleteOne(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.messages, id)
	delete(s.byText, strings.ToLower(msg.Text))
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

func (s *MemoryStore) DeleteAll(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.messages)
	s.messages = make(map[string]domain.Message)
	s.byText = make(map[string]string)
	s.order = nil
	return count
}

func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.messages)
}

// newMessageID generates an identifier of the form msg_<10 hex chars> from
// a random UUID. Uniqueness is best-effort: collisions are treated as
// non-occurring and not re-checked.
func newMessageID() string {
	return "msg_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
}

// Package store defines the message storage interface and implementations.
package store

import (
	"context"
	"errors"

	"message-api/internal/domain"
)

var (
	// ErrDuplicate is returned by Insert when a message with
	// case-insensitively equal text is already stored.
	ErrDuplicate = errors.New("message already exists")

	// ErrNotFound is returned when no message has the given id.
	ErrNotFound = errors.New("message not found")
)

// Store is the interface for message persistence. Implementations must be
// safe for concurrent use: each operation is atomic, and Insert performs
// its duplicate check and the insert as a single unit.
type Store interface {
	// Insert stores a new message with the given text. The text must
	// already be validated and trimmed. Fails with ErrDuplicate if a
	// stored message has case-insensitively equal text.
	Insert(ctx context.Context, text string) (domain.Message, error)

	// GetByID returns the message with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Message, error)

	// ListAll returns a snapshot copy of all messages in insertion order.
	// Mutations after the call do not affect the returned slice.
	ListAll(ctx context.Context) []domain.Message

	// DeleteOne removes the message with the given id, or ErrNotFound.
	DeleteOne(ctx context.Context, id string) error

	// DeleteAll removes every message and returns the number removed.
	DeleteAll(ctx context.Context) int

	// Count returns the number of stored messages.
	Count(ctx context.Context) int
}

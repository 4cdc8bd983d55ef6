package service

import (
	"context"

	"message-api/internal/domain"
	"message-api/internal/validation"
)

// CreateMessage validates text and stores the trimmed form. Returns a
// *validation.Error if a rule fails, or store.ErrDuplicate if an equal
// message already exists.
func (s *Service) CreateMessage(ctx context.Context, text string) (domain.Message, error) {
	trimmed, err := validation.Validate(text)
	if err != nil {
		return domain.Message{}, err
	}
	return s.store.Insert(ctx, trimmed)
}

// GetMessage returns the message with the given id, or store.ErrNotFound.
func (s *Service) GetMessage(ctx context.Context, id string) (domain.Message, error) {
	return s.store.GetByID(ctx, id)
}

// ListMessages returns all messages in insertion order.
func (s *Service) ListMessages(ctx context.Context) []domain.Message {
	return s.store.ListAll(ctx)
}

// DeleteMessage removes the message with the given id, or store.ErrNotFound.
func (s *Service) DeleteMessage(ctx context.Context, id string) error {
	return s.store.DeleteOne(ctx, id)
}

// DeleteAllMessages removes every message and returns the removed count.
func (s *Service) DeleteAllMessages(ctx context.Context) int {
	return s.store.DeleteAll(ctx)
}

// MessageCount returns the number of stored messages.
func (s *Service) MessageCount(ctx context.Context) int {
	return s.store.Count(ctx)
}

// Package domain defines the core domain models for the message API.
package domain

import "time"

// Message is a stored text message. Messages are immutable once created:
// there is no update operation, only create and delete.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageCreateRequest is the body of POST /messages.
type MessageCreateRequest struct {
	Text string `json:"text"`
}

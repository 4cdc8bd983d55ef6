// Package service orchestrates validation and storage for the transport
// layer. It returns typed errors and never logs; mapping outcomes to HTTP
// statuses and recording metrics are transport concerns.
package service

import (
	"message-api/internal/store"
)

type Service struct {
	store store.Store
}

func New(store store.Store) *Service {
	return &Service{store: store}
}

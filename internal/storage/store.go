// Package storage provides abstractions for persisting bill documents.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/billsplit/internal/models"
)

// ErrNotFound is returned when no document is stored under a key.
var ErrNotFound = errors.New("bill not found")

// Store defines the interface for bill document storage.
// A document is the whole bill, saved and loaded under a session key.
// This abstraction allows swapping backends (SQLite, Redis) without changing
// the service layer.
type Store interface {
	// SaveBill stores the bill under key, replacing any previous document.
	SaveBill(ctx context.Context, key string, bill *models.Bill) error

	// LoadBill retrieves the bill stored under key.
	// Returns ErrNotFound if nothing is stored.
	LoadBill(ctx context.Context, key string) (*models.Bill, error)

	// DeleteBill removes the document stored under key.
	// Returns ErrNotFound if nothing is stored.
	DeleteBill(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

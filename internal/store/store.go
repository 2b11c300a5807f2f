// Package store persists lead records and serves the dashboard's bulk
// fetch.
package store

import (
	"context"

	"github.com/jocross/leadboard/internal/model"
)

// MaxInsertBatch is the largest batch a single InsertLeads call accepts.
// Callers must split bigger inputs; the drivers reject oversized batches
// so the payload limit fails loudly.
const MaxInsertBatch = 50

// Store defines the persistence interface for the lead dashboard.
type Store interface {
	// FetchAll returns every lead ordered by creation time descending.
	FetchAll(ctx context.Context) ([]model.Lead, error)
	// CountLeads returns the number of stored leads.
	CountLeads(ctx context.Context) (int, error)
	// DeleteAll removes every lead unconditionally.
	DeleteAll(ctx context.Context) error
	// InsertLeads inserts a batch of at most MaxInsertBatch leads.
	InsertLeads(ctx context.Context, leads []model.Lead) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Package catalog provides the interface for catalog snapshot persistence
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-item-converter/internal/repositories/catalog Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

// Repository stores a snapshot of the base item and class catalogs
type Repository interface {
	// Save replaces the stored snapshot with the given catalogs
	// Returns errors.InvalidArgument when both catalogs are empty
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the stored snapshot
	// Returns errors.NotFound if no snapshot has been saved
	// Returns errors.Internal for storage or decoding failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	BaseItems []*item.BaseItem
	Classes   []*item.Class
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	BaseItemCount int
	ClassCount    int
	SyncedAt      time.Time
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct{}

// LoadOutput defines the output for loading a snapshot.
// Entries are ordered by ID.
type LoadOutput struct {
	BaseItems []*item.BaseItem
	Classes   []*item.Class
	SyncedAt  time.Time
}

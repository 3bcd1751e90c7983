package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockItemRepository defines the interface for stock record persistence
type StockItemRepository interface {
	// FindByID finds a stock record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockItem, error)

	// FindAll finds all stock records in insertion order
	FindAll(ctx context.Context) ([]StockItem, error)

	// Save creates or updates a stock record
	Save(ctx context.Context, item *StockItem) error

	// Delete removes a stock record
	Delete(ctx context.Context, id uuid.UUID) error
}

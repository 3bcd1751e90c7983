package menu

import (
	"context"

	"github.com/google/uuid"
)

// MenuItemRepository defines the interface for menu item persistence
type MenuItemRepository interface {
	// FindByID finds a menu item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)

	// FindAll finds all menu items in insertion order
	FindAll(ctx context.Context) ([]MenuItem, error)

	// FindActive finds all active menu items
	FindActive(ctx context.Context) ([]MenuItem, error)

	// FindByCategory finds all menu items in a category
	FindByCategory(ctx context.Context, category Category) ([]MenuItem, error)

	// Save creates or updates a menu item
	Save(ctx context.Context, item *MenuItem) error

	// Delete removes a menu item
	Delete(ctx context.Context, id uuid.UUID) error
}

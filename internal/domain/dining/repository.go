package dining

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order ledger persistence.
// Orders are append-and-update only; the ledger never deletes.
type OrderRepository interface {
	// NextOrderNumber issues the next human-readable order number
	NextOrderNumber(ctx context.Context) (string, error)

	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders in creation order
	FindAll(ctx context.Context) ([]Order, error)

	// FindActive finds all orders not yet Served
	FindActive(ctx context.Context) ([]Order, error)

	// FindByStatus finds all orders in the given status
	FindByStatus(ctx context.Context, status OrderStatus) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error
}

// TableRepository defines the interface for the table registry
type TableRepository interface {
	// FindByID finds a table by its number
	FindByID(ctx context.Context, id int) (*Table, error)

	// FindAll finds all tables ordered by number
	FindAll(ctx context.Context) ([]Table, error)

	// FindByOrderID finds the table currently bound to an order, or
	// shared.ErrNotFound when no table references it
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*Table, error)

	// Save creates or updates a table
	Save(ctx context.Context, table *Table) error
}

// Repositories bundles the stores touched by compound dining writes
type Repositories struct {
	Orders OrderRepository
	Tables TableRepository
}

// TxManager serializes writes that span an order and its table. Fn runs
// with exclusive access to the store, so readers never observe an order
// without its table binding or a Served order still holding a table.
type TxManager interface {
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}

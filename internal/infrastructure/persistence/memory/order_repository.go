package memory

import (
	"context"
	"fmt"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository implements dining.OrderRepository on the shared
// store. Inside a Store.Transaction the write lock is already held and
// inTx repositories skip locking.
type OrderRepository struct {
	store *Store
	inTx  bool
}

func (r *OrderRepository) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *OrderRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

// NextOrderNumber issues the next human-readable order number
func (r *OrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	defer r.lock()()

	r.store.orderSeq++
	return fmt.Sprintf("ORD-%05d", r.store.orderSeq), nil
}

// FindByID finds an order by its ID
func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Order, error) {
	defer r.rlock()()

	order, ok := r.store.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cloneOrder(order), nil
}

// FindAll finds all orders in creation order
func (r *OrderRepository) FindAll(ctx context.Context) ([]dining.Order, error) {
	defer r.rlock()()

	orders := make([]dining.Order, 0, len(r.store.orderIDs))
	for _, id := range r.store.orderIDs {
		orders = append(orders, *cloneOrder(r.store.orders[id]))
	}
	return orders, nil
}

// FindActive finds all orders not yet Served
func (r *OrderRepository) FindActive(ctx context.Context) ([]dining.Order, error) {
	defer r.rlock()()

	orders := make([]dining.Order, 0)
	for _, id := range r.store.orderIDs {
		if order := r.store.orders[id]; order.IsActive() {
			orders = append(orders, *cloneOrder(order))
		}
	}
	return orders, nil
}

// FindByStatus finds all orders in the given status
func (r *OrderRepository) FindByStatus(ctx context.Context, status dining.OrderStatus) ([]dining.Order, error) {
	defer r.rlock()()

	orders := make([]dining.Order, 0)
	for _, id := range r.store.orderIDs {
		if order := r.store.orders[id]; order.Status == status {
			orders = append(orders, *cloneOrder(order))
		}
	}
	return orders, nil
}

// Save creates or updates an order. The ledger never deletes.
func (r *OrderRepository) Save(ctx context.Context, order *dining.Order) error {
	defer r.lock()()

	if _, ok := r.store.orders[order.ID]; !ok {
		r.store.orderIDs = append(r.store.orderIDs, order.ID)
	}
	r.store.orders[order.ID] = cloneOrder(order)
	return nil
}

// cloneOrder deep-copies an order including its line slice
func cloneOrder(order *dining.Order) *dining.Order {
	clone := *order
	clone.Items = make([]dining.OrderLine, len(order.Items))
	copy(clone.Items, order.Items)
	return &clone
}

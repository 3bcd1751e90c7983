package memory

import (
	"context"
	"sort"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/google/uuid"
)

// TableRepository implements dining.TableRepository on the shared store
type TableRepository struct {
	store *Store
	inTx  bool
}

func (r *TableRepository) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *TableRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

// FindByID finds a table by its number
func (r *TableRepository) FindByID(ctx context.Context, id int) (*dining.Table, error) {
	defer r.rlock()()

	table, ok := r.store.tables[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cloneTable(table), nil
}

// FindAll finds all tables ordered by number
func (r *TableRepository) FindAll(ctx context.Context) ([]dining.Table, error) {
	defer r.rlock()()

	tables := make([]dining.Table, 0, len(r.store.tables))
	for _, table := range r.store.tables {
		tables = append(tables, *cloneTable(table))
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].ID < tables[j].ID })
	return tables, nil
}

// FindByOrderID scans for the table currently bound to an order
func (r *TableRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*dining.Table, error) {
	defer r.rlock()()

	for _, table := range r.store.tables {
		if table.CurrentOrderID != nil && *table.CurrentOrderID == orderID {
			return cloneTable(table), nil
		}
	}
	return nil, shared.ErrNotFound
}

// Save creates or updates a table
func (r *TableRepository) Save(ctx context.Context, table *dining.Table) error {
	defer r.lock()()

	r.store.tables[table.ID] = cloneTable(table)
	return nil
}

// cloneTable copies a table including its order reference
func cloneTable(table *dining.Table) *dining.Table {
	clone := *table
	if table.CurrentOrderID != nil {
		id := *table.CurrentOrderID
		clone.CurrentOrderID = &id
	}
	return &clone
}

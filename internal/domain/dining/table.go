package dining

import (
	"time"

	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/google/uuid"
)

// TableStatus represents whether a table currently hosts an order
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
)

// IsValid checks if the status is a valid TableStatus
func (s TableStatus) IsValid() bool {
	switch s {
	case TableStatusAvailable, TableStatusOccupied:
		return true
	}
	return false
}

// String returns the string representation of TableStatus
func (s TableStatus) String() string {
	return string(s)
}

// Table represents a physical table in the dining room. Its identity is
// the restaurant-wide table number. Status and CurrentOrderID always
// change together: a table is occupied exactly while it references the
// one active order it hosts.
type Table struct {
	ID             int
	Seats          int
	Status         TableStatus
	CurrentOrderID *uuid.UUID
	UpdatedAt      time.Time
}

// NewTable creates a new available table
func NewTable(id, seats int) (*Table, error) {
	if id <= 0 {
		return nil, shared.NewDomainError("INVALID_TABLE", "Table number must be positive")
	}
	if seats <= 0 {
		return nil, shared.NewDomainError("INVALID_SEATS", "Seat count must be positive")
	}

	return &Table{
		ID:        id,
		Seats:     seats,
		Status:    TableStatusAvailable,
		UpdatedAt: time.Now(),
	}, nil
}

// Bind marks the table occupied by the given order. Any prior binding
// is overwritten; callers that need an occupancy check perform it
// before binding.
func (t *Table) Bind(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	id := orderID
	t.Status = TableStatusOccupied
	t.CurrentOrderID = &id
	t.UpdatedAt = time.Now()

	return nil
}

// Release frees the table, clearing the order reference and the
// occupied status in one step
func (t *Table) Release() {
	t.Status = TableStatusAvailable
	t.CurrentOrderID = nil
	t.UpdatedAt = time.Now()
}

// IsOccupied returns true while the table hosts an active order
func (t *Table) IsOccupied() bool {
	return t.Status == TableStatusOccupied
}

package inventory

import (
	"strings"

	"github.com/RayLight-369/rms/internal/domain/shared"
)

// StockItem represents a tracked ingredient or supply. Quantities are
// whole units of the record's own unit of measure; there is no link to
// menu items and placing orders never consumes stock.
type StockItem struct {
	shared.BaseEntity
	Name     string
	Quantity int64
	Unit     string
	MinLevel int64
}

// NewStockItem creates a new stock record
func NewStockItem(name string, quantity int64, unit string, minLevel int64) (*StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if strings.TrimSpace(unit) == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if minLevel < 0 {
		return nil, shared.NewDomainError("INVALID_MIN_LEVEL", "Minimum level cannot be negative")
	}

	return &StockItem{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Quantity:   quantity,
		Unit:       strings.TrimSpace(unit),
		MinLevel:   minLevel,
	}, nil
}

// SetQuantity overwrites the on-hand quantity after a manual count
func (s *StockItem) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	s.Quantity = quantity
	s.Touch()

	return nil
}

// SetMinLevel changes the reorder threshold
func (s *StockItem) SetMinLevel(minLevel int64) error {
	if minLevel < 0 {
		return shared.NewDomainError("INVALID_MIN_LEVEL", "Minimum level cannot be negative")
	}

	s.MinLevel = minLevel
	s.Touch()

	return nil
}

// IsLowStock reports whether the on-hand quantity has fallen strictly
// below the minimum level. A record sitting exactly at its minimum is
// not low.
func (s *StockItem) IsLowStock() bool {
	return s.Quantity < s.MinLevel
}

package dining

import (
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Cart is the transient working set a waiter assembles before
// submission: at most one line per menu item, plus the selected table.
// It is not persisted and is discarded once an order is created from it.
type Cart struct {
	lines         []OrderLine
	selectedTable *int
}

// NewCart creates an empty cart with no table selected
func NewCart() *Cart {
	return &Cart{lines: make([]OrderLine, 0)}
}

// SelectTable sets the working table. Selecting an occupied table is
// allowed here; the submission flow decides whether to accept it.
func (c *Cart) SelectTable(tableID int) error {
	if tableID <= 0 {
		return shared.NewDomainError("INVALID_TABLE", "Table number must be positive")
	}

	id := tableID
	c.selectedTable = &id
	return nil
}

// SelectedTable returns the working table number, if one is selected
func (c *Cart) SelectedTable() (int, bool) {
	if c.selectedTable == nil {
		return 0, false
	}
	return *c.selectedTable, true
}

// AddLine adds one unit of a menu item, snapshotting its name and
// current price. If a line for the item already exists its quantity is
// incremented instead of appending a duplicate line.
func (c *Cart) AddLine(menuItemID uuid.UUID, name string, unitPrice valueobject.Money) error {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity++
			return nil
		}
	}

	line, err := NewOrderLine(menuItemID, name, 1, unitPrice)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine deletes the line for a menu item entirely, regardless of
// its quantity
func (c *Cart) RemoveLine(menuItemID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) SetQuantity(menuItemID uuid.UUID, quantity int64) error {
	if quantity <= 0 {
		c.RemoveLine(menuItemID)
		return nil
	}

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}

	return shared.ErrNotFound
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty returns true when the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Totals prices the current cart contents
func (c *Cart) Totals() Totals {
	return ComputeTotals(c.lines)
}

// Clear empties the lines and deselects the table
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
	c.selectedTable = nil
}

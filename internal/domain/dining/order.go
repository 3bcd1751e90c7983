package dining

import (
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OrderStatus represents where an order is in the kitchen workflow
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusReady      OrderStatus = "Ready"
	OrderStatusServed     OrderStatus = "Served"
)

// statusRank orders the statuses along the workflow. Higher rank is later.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusInProgress: 1,
	OrderStatusReady:      2,
	OrderStatusServed:     3,
}

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal returns true for the final status in the workflow
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusServed
}

// Next returns the following status in the workflow, or false when terminal
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusInProgress, true
	case OrderStatusInProgress:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusServed, true
	}
	return s, false
}

// CanTransitionTo checks if the status can move to the target status.
// The workflow only moves forward; jumps over intermediate statuses are
// allowed (billing closes an order straight to Served).
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[target]
	if !ok {
		return false
	}
	return to > from
}

// OrderLine is one menu item on an order. Name and unit price are
// snapshots taken when the line was added; later catalog edits do not
// reach back into placed orders.
type OrderLine struct {
	MenuItemID uuid.UUID
	Name       string
	Quantity   int64
	UnitPrice  valueobject.Money
}

// NewOrderLine creates a new order line
func NewOrderLine(menuItemID uuid.UUID, name string, quantity int64, unitPrice valueobject.Money) (OrderLine, error) {
	if menuItemID == uuid.Nil {
		return OrderLine{}, shared.NewDomainError("INVALID_MENU_ITEM", "Menu item ID cannot be empty")
	}
	if name == "" {
		return OrderLine{}, shared.NewDomainError("INVALID_NAME", "Line name cannot be empty")
	}
	if quantity <= 0 {
		return OrderLine{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return OrderLine{}, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return OrderLine{
		MenuItemID: menuItemID,
		Name:       name,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	}, nil
}

// Subtotal returns unit price times quantity
func (l OrderLine) Subtotal() valueobject.Money {
	return l.UnitPrice.MultiplyByInt(l.Quantity)
}

// Order represents a single table's request moving from the kitchen to
// payment. It is the aggregate root of the order ledger: created once
// from a submitted cart, advanced through statuses, never deleted.
type Order struct {
	shared.BaseEntity
	Number     string // human-readable, e.g. ORD-00042
	TableNo    int
	WaiterName string
	Status     OrderStatus
	Items      []OrderLine
	Total      valueobject.Money // subtotal plus tax, fixed at creation
}

// NewOrder creates a new order in Pending status from snapshot lines.
// The total is computed here and never recomputed: lines are immutable
// once the order exists.
func NewOrder(number string, tableNo int, waiterName string, lines []OrderLine) (*Order, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if tableNo <= 0 {
		return nil, shared.NewDomainError("INVALID_TABLE", "Table number must be positive")
	}
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	items := make([]OrderLine, len(lines))
	copy(items, lines)

	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		Number:     number,
		TableNo:    tableNo,
		WaiterName: waiterName,
		Status:     OrderStatusPending,
		Items:      items,
		Total:      ComputeTotals(items).Total,
	}, nil
}

// Advance moves the order one step along the workflow and reports
// whether anything changed. Advancing a Served order is a silent no-op,
// so repeated calls are safe.
func (o *Order) Advance() bool {
	next, ok := o.Status.Next()
	if !ok {
		return false
	}
	o.Status = next
	o.Touch()
	return true
}

// SetStatus moves the order directly to the target status and reports
// whether anything changed. Forward jumps are allowed (billing goes
// straight to Served); moving backwards is rejected. Setting the
// current status, or any status on a Served order, is a no-op.
func (o *Order) SetStatus(target OrderStatus) (bool, error) {
	if !target.IsValid() {
		return false, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if o.Status == target || o.Status.IsTerminal() {
		return false, nil
	}
	if !o.Status.CanTransitionTo(target) {
		return false, shared.NewDomainError("INVALID_STATE", "Order status can only move forward")
	}

	o.Status = target
	o.Touch()
	return true, nil
}

// IsServed returns true once the order has been paid and closed out
func (o *Order) IsServed() bool {
	return o.Status == OrderStatusServed
}

// IsActive returns true while the order still occupies its table
func (o *Order) IsActive() bool {
	return !o.IsServed()
}

// ItemCount returns the number of lines on the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

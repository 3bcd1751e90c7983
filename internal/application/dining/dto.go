package dining

import (
	"time"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SelectTableRequest represents the waiter picking a working table
type SelectTableRequest struct {
	TableNo int `json:"table_no" binding:"required,min=1"`
}

// AddCartItemRequest represents adding one unit of a menu item to the cart
type AddCartItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
}

// SetCartQuantityRequest represents overwriting a cart line's quantity.
// Zero removes the line.
type SetCartQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"min=0"`
}

// SubmitCartRequest represents turning the cart into an order
type SubmitCartRequest struct {
	WaiterName string `json:"waiter_name" binding:"required,min=1,max=100"`
}

// SetOrderStatusRequest represents an explicit status change
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	Status     string `form:"status"`
	ActiveOnly bool   `form:"active"`
}

// OrderLineResponse represents one snapshot line of a cart or order
type OrderLineResponse struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CartResponse represents the waiter's working cart
type CartResponse struct {
	TableNo  *int                `json:"table_no"`
	Items    []OrderLineResponse `json:"items"`
	Subtotal decimal.Decimal     `json:"subtotal"`
	Tax      decimal.Decimal     `json:"tax"`
	Total    decimal.Decimal     `json:"total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	Number     string              `json:"number"`
	TableNo    int                 `json:"table_no"`
	WaiterName string              `json:"waiter_name"`
	Status     string              `json:"status"`
	Items      []OrderLineResponse `json:"items"`
	ItemCount  int                 `json:"item_count"`
	Total      decimal.Decimal     `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// BoardResponse groups active orders into the three kitchen columns.
// Served orders never appear.
type BoardResponse struct {
	Pending    []OrderResponse `json:"pending"`
	InProgress []OrderResponse `json:"in_progress"`
	Ready      []OrderResponse `json:"ready"`
}

// ReceiptResponse represents the billing breakdown of an order,
// reconstructed from its stored total
type ReceiptResponse struct {
	OrderID    uuid.UUID           `json:"order_id"`
	Number     string              `json:"number"`
	TableNo    int                 `json:"table_no"`
	WaiterName string              `json:"waiter_name"`
	Items      []OrderLineResponse `json:"items"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Tax        decimal.Decimal     `json:"tax"`
	Total      decimal.Decimal     `json:"total"`
	IssuedAt   time.Time           `json:"issued_at"`
}

// TableResponse represents a table in API responses
type TableResponse struct {
	ID             int        `json:"id"`
	Seats          int        `json:"seats"`
	Status         string     `json:"status"`
	CurrentOrderID *uuid.UUID `json:"current_order_id,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToOrderLineResponse converts a domain order line
func ToOrderLineResponse(line dining.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		MenuItemID: line.MenuItemID,
		Name:       line.Name,
		Quantity:   line.Quantity,
		UnitPrice:  line.UnitPrice.Round(2).Amount(),
		Subtotal:   line.Subtotal().Round(2).Amount(),
	}
}

// ToOrderLineResponses converts a slice of domain order lines
func ToOrderLineResponses(lines []dining.OrderLine) []OrderLineResponse {
	responses := make([]OrderLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToOrderLineResponse(line)
	}
	return responses
}

// ToOrderResponse converts a domain order to its API representation
func ToOrderResponse(order *dining.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID,
		Number:     order.Number,
		TableNo:    order.TableNo,
		WaiterName: order.WaiterName,
		Status:     order.Status.String(),
		Items:      ToOrderLineResponses(order.Items),
		ItemCount:  order.ItemCount(),
		Total:      order.Total.Round(2).Amount(),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []dining.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// ToCartResponse converts the domain cart to its API representation
func ToCartResponse(cart *dining.Cart) CartResponse {
	totals := cart.Totals()

	response := CartResponse{
		Items:    ToOrderLineResponses(cart.Lines()),
		Subtotal: totals.Subtotal.Round(2).Amount(),
		Tax:      totals.Tax.Round(2).Amount(),
		Total:    totals.Total.Round(2).Amount(),
	}
	if tableNo, ok := cart.SelectedTable(); ok {
		response.TableNo = &tableNo
	}
	return response
}

// ToReceiptResponse reconstructs the billing breakdown from the order's
// stored total
func ToReceiptResponse(order *dining.Order) ReceiptResponse {
	totals := dining.SplitTotal(order.Total)

	return ReceiptResponse{
		OrderID:    order.ID,
		Number:     order.Number,
		TableNo:    order.TableNo,
		WaiterName: order.WaiterName,
		Items:      ToOrderLineResponses(order.Items),
		Subtotal:   totals.Subtotal.Round(2).Amount(),
		Tax:        totals.Tax.Round(2).Amount(),
		Total:      totals.Total.Round(2).Amount(),
		IssuedAt:   time.Now(),
	}
}

// ToTableResponse converts a domain table to its API representation
func ToTableResponse(table *dining.Table) TableResponse {
	return TableResponse{
		ID:             table.ID,
		Seats:          table.Seats,
		Status:         string(table.Status),
		CurrentOrderID: table.CurrentOrderID,
		UpdatedAt:      table.UpdatedAt,
	}
}

// ToTableResponses converts a slice of domain tables
func ToTableResponses(tables []dining.Table) []TableResponse {
	responses := make([]TableResponse, len(tables))
	for i := range tables {
		responses[i] = ToTableResponse(&tables[i])
	}
	return responses
}

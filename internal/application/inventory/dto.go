package inventory

import (
	"time"

	"github.com/RayLight-369/rms/internal/domain/inventory"
	"github.com/google/uuid"
)

// CreateStockItemRequest represents a request to start tracking a supply
type CreateStockItemRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Quantity int64  `json:"quantity" binding:"min=0"`
	Unit     string `json:"unit" binding:"required,min=1,max=20"`
	MinLevel int64  `json:"min_level" binding:"min=0"`
}

// UpdateQuantityRequest represents a manual count correction
type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"min=0"`
}

// StockItemResponse represents a stock record in API responses
type StockItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Unit      string    `json:"unit"`
	MinLevel  int64     `json:"min_level"`
	LowStock  bool      `json:"low_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToStockItemResponse converts a domain stock record to its API representation
func ToStockItemResponse(item *inventory.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		MinLevel:  item.MinLevel,
		LowStock:  item.IsLowStock(),
		UpdatedAt: item.UpdatedAt,
	}
}

// ToStockItemResponses converts a slice of domain stock records
func ToStockItemResponses(items []inventory.StockItem) []StockItemResponse {
	responses := make([]StockItemResponse, len(items))
	for i := range items {
		responses[i] = ToStockItemResponse(&items[i])
	}
	return responses
}

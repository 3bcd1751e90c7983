package menu

import (
	"time"

	"github.com/RayLight-369/rms/internal/domain/menu"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest represents a request to add a dish to the catalog
type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=1000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=appetizer main drink dessert"`
}

// UpdateMenuItemRequest represents a partial update of a catalog item.
// Nil fields are left unchanged.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,oneof=appetizer main drink dessert"`
	IsActive    *bool            `json:"is_active"`
}

// MenuItemListFilter represents filter options for the catalog list
type MenuItemListFilter struct {
	Category   string `form:"category" binding:"omitempty,oneof=appetizer main drink dessert"`
	ActiveOnly bool   `form:"active"`
}

// MenuItemResponse represents a menu item in API responses
type MenuItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToMenuItemResponse converts a domain menu item to its API representation
func ToMenuItemResponse(item *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.Round(2).Amount(),
		Category:    item.Category.String(),
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToMenuItemResponses converts a slice of domain menu items
func ToMenuItemResponses(items []menu.MenuItem) []MenuItemResponse {
	responses := make([]MenuItemResponse, len(items))
	for i := range items {
		responses[i] = ToMenuItemResponse(&items[i])
	}
	return responses
}

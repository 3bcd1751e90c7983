package inventory

import (
	"context"

	"github.com/RayLight-369/rms/internal/domain/inventory"
	"github.com/google/uuid"
)

// InventoryService handles stock tracking operations. Stock is an
// independent ledger: placing orders never consumes it, only manual
// count corrections change quantities.
type InventoryService struct {
	stockRepo inventory.StockItemRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(stockRepo inventory.StockItemRepository) *InventoryService {
	return &InventoryService{stockRepo: stockRepo}
}

// Create starts tracking a new supply
func (s *InventoryService) Create(ctx context.Context, req CreateStockItemRequest) (*StockItemResponse, error) {
	item, err := inventory.NewStockItem(req.Name, req.Quantity, req.Unit, req.MinLevel)
	if err != nil {
		return nil, err
	}

	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToStockItemResponse(item)
	return &response, nil
}

// List retrieves all stock records
func (s *InventoryService) List(ctx context.Context) ([]StockItemResponse, error) {
	items, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToStockItemResponses(items), nil
}

// LowStock retrieves the records whose quantity has fallen below their
// minimum level, recomputed from current state on every call
func (s *InventoryService) LowStock(ctx context.Context) ([]StockItemResponse, error) {
	items, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]inventory.StockItem, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return ToStockItemResponses(low), nil
}

// UpdateQuantity overwrites a record's on-hand quantity after a count
func (s *InventoryService) UpdateQuantity(ctx context.Context, id uuid.UUID, req UpdateQuantityRequest) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToStockItemResponse(item)
	return &response, nil
}

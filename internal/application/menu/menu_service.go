package menu

import (
	"context"

	"github.com/RayLight-369/rms/internal/domain/menu"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// MenuItemService handles catalog business operations
type MenuItemService struct {
	itemRepo menu.MenuItemRepository
}

// NewMenuItemService creates a new MenuItemService
func NewMenuItemService(itemRepo menu.MenuItemRepository) *MenuItemService {
	return &MenuItemService{itemRepo: itemRepo}
}

// Create adds a new item to the catalog. New items start active.
func (s *MenuItemService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := menu.NewMenuItem(req.Name, valueobject.NewMoneyUSD(req.Price), menu.Category(req.Category))
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := item.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToMenuItemResponse(item)
	return &response, nil
}

// GetByID retrieves a single catalog item
func (s *MenuItemService) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMenuItemResponse(item)
	return &response, nil
}

// List retrieves catalog items, optionally narrowed to a category and
// to active items only
func (s *MenuItemService) List(ctx context.Context, filter MenuItemListFilter) ([]MenuItemResponse, error) {
	var (
		items []menu.MenuItem
		err   error
	)

	switch {
	case filter.Category != "":
		items, err = s.itemRepo.FindByCategory(ctx, menu.Category(filter.Category))
	case filter.ActiveOnly:
		items, err = s.itemRepo.FindActive(ctx)
	default:
		items, err = s.itemRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filter.Category != "" && filter.ActiveOnly {
		filtered := items[:0]
		for _, item := range items {
			if item.IsActive {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return ToMenuItemResponses(items), nil
}

// Update applies a partial patch to a catalog item. Price changes never
// touch orders already placed; their lines keep the snapshot taken at
// cart time.
func (s *MenuItemService) Update(ctx context.Context, id uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := item.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := item.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := item.Update(name, description); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := item.SetPrice(valueobject.NewMoneyUSD(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if err := item.SetCategory(menu.Category(*req.Category)); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToMenuItemResponse(item)
	return &response, nil
}

// Delete removes a catalog item. Existing orders and carts keep their
// line snapshots.
func (s *MenuItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, id)
}

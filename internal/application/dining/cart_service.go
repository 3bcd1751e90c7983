package dining

import (
	"context"
	"sync"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/menu"
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService manages the single shared waiter cart. The cart is an
// in-process working set guarded by its own mutex; it only touches the
// store at submission, where the order creation, table binding and cart
// reset happen as one atomic step.
type CartService struct {
	mu       sync.Mutex
	cart     *dining.Cart
	menuRepo menu.MenuItemRepository
	tx       dining.TxManager
	log      *zap.Logger
}

// NewCartService creates a CartService with an empty cart
func NewCartService(menuRepo menu.MenuItemRepository, tx dining.TxManager, log *zap.Logger) *CartService {
	return &CartService{
		cart:     dining.NewCart(),
		menuRepo: menuRepo,
		tx:       tx,
		log:      log,
	}
}

// Get returns the current cart contents with live totals
func (s *CartService) Get(ctx context.Context) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ToCartResponse(s.cart)
}

// SelectTable sets the cart's working table. The table's occupancy is
// not checked here; submission decides.
func (s *CartService) SelectTable(ctx context.Context, req SelectTableRequest) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.SelectTable(req.TableNo); err != nil {
		return nil, err
	}

	response := ToCartResponse(s.cart)
	return &response, nil
}

// AddItem adds one unit of a menu item, snapshotting its current name
// and price. Repeated adds increment the existing line. Only active
// catalog items can be added.
func (s *CartService) AddItem(ctx context.Context, req AddCartItemRequest) (*CartResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, req.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Menu item is not available for ordering")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.AddLine(item.ID, item.Name, item.Price); err != nil {
		return nil, err
	}

	response := ToCartResponse(s.cart)
	return &response, nil
}

// SetQuantity overwrites a cart line's quantity; zero removes the line
func (s *CartService) SetQuantity(ctx context.Context, menuItemID uuid.UUID, req SetCartQuantityRequest) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.SetQuantity(menuItemID, req.Quantity); err != nil {
		return nil, err
	}

	response := ToCartResponse(s.cart)
	return &response, nil
}

// RemoveItem deletes a cart line entirely, whatever its quantity
func (s *CartService) RemoveItem(ctx context.Context, menuItemID uuid.UUID) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RemoveLine(menuItemID)
	return ToCartResponse(s.cart)
}

// Clear abandons the cart: lines dropped, table deselected
func (s *CartService) Clear(ctx context.Context) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	return ToCartResponse(s.cart)
}

// Submit turns the cart into a Pending order. The order number issue,
// ledger append and table binding run inside one store transaction, and
// the cart resets only after the transaction commits. An occupied table
// rejects the submission; pick another table or serve the open order
// first.
func (s *CartService) Submit(ctx context.Context, req SubmitCartRequest) (*OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tableNo, ok := s.cart.SelectedTable()
	if !ok {
		return nil, shared.ErrNoTable
	}
	if s.cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}
	lines := s.cart.Lines()

	var order *dining.Order
	err := s.tx.Transaction(ctx, func(repos dining.Repositories) error {
		table, err := repos.Tables.FindByID(ctx, tableNo)
		if err != nil {
			return err
		}
		if table.IsOccupied() {
			return shared.ErrTableOccupied
		}

		number, err := repos.Orders.NextOrderNumber(ctx)
		if err != nil {
			return err
		}
		order, err = dining.NewOrder(number, tableNo, req.WaiterName, lines)
		if err != nil {
			return err
		}
		if err := repos.Orders.Save(ctx, order); err != nil {
			return err
		}

		if err := table.Bind(order.ID); err != nil {
			return err
		}
		return repos.Tables.Save(ctx, table)
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear()

	s.log.Info("Order submitted",
		zap.String("order_number", order.Number),
		zap.Int("table_no", order.TableNo),
		zap.Int("items", order.ItemCount()),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

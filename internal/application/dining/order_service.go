package dining

import (
	"context"
	"errors"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order lifecycle operations. Every transition to
// Served releases the bound table in the same store transaction, so the
// occupancy pairing never tears.
type OrderService struct {
	orderRepo dining.OrderRepository
	tx        dining.TxManager
	log       *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo dining.OrderRepository, tx dining.TxManager, log *zap.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, tx: tx, log: log}
}

// List retrieves orders, optionally narrowed by status or to active
// orders only
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, error) {
	var (
		orders []dining.Order
		err    error
	)

	switch {
	case filter.Status != "":
		status := dining.OrderStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Unknown order status: "+filter.Status)
		}
		orders, err = s.orderRepo.FindByStatus(ctx, status)
	case filter.ActiveOnly:
		orders, err = s.orderRepo.FindActive(ctx)
	default:
		orders, err = s.orderRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return ToOrderResponses(orders), nil
}

// GetByID retrieves a single order
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// Advance moves an order one step forward in its lifecycle. Advancing a
// Served order is a no-op, not an error, so double-taps on the kitchen
// screen stay harmless.
func (s *OrderService) Advance(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	var order *dining.Order
	var served bool
	err := s.tx.Transaction(ctx, func(repos dining.Repositories) error {
		var err error
		order, err = repos.Orders.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if !order.Advance() {
			return nil
		}
		if err := repos.Orders.Save(ctx, order); err != nil {
			return err
		}

		if order.IsServed() {
			served = true
			return releaseTable(ctx, repos.Tables, order.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if served {
		s.logServed(order)
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// SetStatus moves an order directly to a target status. Forward jumps
// are allowed (billing marks a Ready order Served in one step); moving
// backwards is rejected.
func (s *OrderService) SetStatus(ctx context.Context, id uuid.UUID, req SetOrderStatusRequest) (*OrderResponse, error) {
	status := dining.OrderStatus(req.Status)
	if !status.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unknown order status: "+req.Status)
	}

	var order *dining.Order
	var served bool
	err := s.tx.Transaction(ctx, func(repos dining.Repositories) error {
		var err error
		order, err = repos.Orders.FindByID(ctx, id)
		if err != nil {
			return err
		}

		changed, err := order.SetStatus(status)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := repos.Orders.Save(ctx, order); err != nil {
			return err
		}

		if order.IsServed() {
			served = true
			return releaseTable(ctx, repos.Tables, order.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if served {
		s.logServed(order)
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Board groups active orders into the three kitchen columns
func (s *OrderService) Board(ctx context.Context) (*BoardResponse, error) {
	orders, err := s.orderRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	board := BoardResponse{
		Pending:    make([]OrderResponse, 0),
		InProgress: make([]OrderResponse, 0),
		Ready:      make([]OrderResponse, 0),
	}
	for i := range orders {
		response := ToOrderResponse(&orders[i])
		switch orders[i].Status {
		case dining.OrderStatusPending:
			board.Pending = append(board.Pending, response)
		case dining.OrderStatusInProgress:
			board.InProgress = append(board.InProgress, response)
		case dining.OrderStatusReady:
			board.Ready = append(board.Ready, response)
		}
	}
	return &board, nil
}

// Receipt reconstructs the billing breakdown for an order from its
// stored total
func (s *OrderService) Receipt(ctx context.Context, id uuid.UUID) (*ReceiptResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToReceiptResponse(order)
	return &response, nil
}

func (s *OrderService) logServed(order *dining.Order) {
	s.log.Info("Order served, table released",
		zap.String("order_number", order.Number),
		zap.Int("table_no", order.TableNo),
	)
}

// releaseTable frees whichever table holds the order. A missing binding
// is fine; the order may have been created before its table existed or
// the table was rebound since.
func releaseTable(ctx context.Context, tables dining.TableRepository, orderID uuid.UUID) error {
	table, err := tables.FindByOrderID(ctx, orderID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	table.Release()
	return tables.Save(ctx, table)
}

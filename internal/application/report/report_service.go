package report

import (
	"context"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/inventory"
	"github.com/RayLight-369/rms/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ReportService computes the admin dashboard summary across contexts.
// Sales figures cover every order ever placed, Served included; the
// ledger never deletes.
type ReportService struct {
	orderRepo dining.OrderRepository
	tableRepo dining.TableRepository
	stockRepo inventory.StockItemRepository
}

// NewReportService creates a new ReportService
func NewReportService(orderRepo dining.OrderRepository, tableRepo dining.TableRepository, stockRepo inventory.StockItemRepository) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
		tableRepo: tableRepo,
		stockRepo: stockRepo,
	}
}

// Summary builds the dashboard snapshot
func (s *ReportService) Summary(ctx context.Context) (*SummaryResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := s.tableRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totalSales := valueobject.ZeroUSD()
	active := 0
	for i := range orders {
		totalSales = totalSales.MustAdd(orders[i].Total)
		if orders[i].IsActive() {
			active++
		}
	}

	avg := decimal.Zero
	if len(orders) > 0 {
		avg = totalSales.Amount().Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	lowStock := 0
	for i := range stock {
		if stock[i].IsLowStock() {
			lowStock++
		}
	}

	occupied := 0
	for i := range tables {
		if tables[i].IsOccupied() {
			occupied++
		}
	}

	return &SummaryResponse{
		TotalSales:      totalSales.Round(2).Amount(),
		OrderCount:      len(orders),
		ActiveOrders:    active,
		AvgOrderValue:   avg,
		LowStockItems:   lowStock,
		OccupiedTables:  occupied,
		AvailableTables: len(tables) - occupied,
	}, nil
}

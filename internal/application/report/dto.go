package report

import "github.com/shopspring/decimal"

// SummaryResponse is the admin dashboard snapshot, recomputed from
// current state on every call
type SummaryResponse struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	OrderCount      int             `json:"order_count"`
	ActiveOrders    int             `json:"active_orders"`
	AvgOrderValue   decimal.Decimal `json:"avg_order_value"`
	LowStockItems   int             `json:"low_stock_items"`
	OccupiedTables  int             `json:"occupied_tables"`
	AvailableTables int             `json:"available_tables"`
}

package service

import (
	"strings"
	"time"

	"go-hardware-pos/internal/model"
	"go-hardware-pos/internal/store"
)

type DashboardService interface {
	GetSummary() (*DashboardSummary, error)
	GetDailySummaries() ([]model.DailySummary, error)
	UpsertDailySummary(rec *model.DailySummary) error
}

// DashboardSummary mirrors the GET /api/reports/summary response shape.
type DashboardSummary struct {
	Today     TodayStats     `json:"today"`
	Inventory InventoryStats `json:"inventory"`
	Overall   OverallStats   `json:"overall"`
}

type TodayStats struct {
	TotalSales   float64 `json:"total_sales"`
	Transactions int     `json:"transactions"`
}

type InventoryStats struct {
	TotalItems        int     `json:"total_items"`
	LowStockCount     int     `json:"low_stock_count"`
	OutOfStockCount   int     `json:"out_of_stock_count"`
	TotalValueCost    float64 `json:"total_value_cost"`
	TotalValueSelling float64 `json:"total_value_selling"`
}

type OverallStats struct {
	TotalSales     float64 `json:"total_sales"`
	TotalPurchases float64 `json:"total_purchases"`
}

type dashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st}
}

// GetSummary recomputes every figure from the current cached tables on
// each call; nothing is cached at the aggregate level.
func (s *dashboardService) GetSummary() (*DashboardSummary, error) {
	items, err := s.store.Inventory()
	if err != nil {
		return nil, err
	}
	sales, err := s.store.Sales()
	if err != nil {
		return nil, err
	}
	purchases, err := s.store.Purchases()
	if err != nil {
		return nil, err
	}

	var summary DashboardSummary

	summary.Inventory.TotalItems = len(items)
	for _, it := range items {
		summary.Inventory.TotalValueCost += it.QuantityInStock * it.CostPrice
		summary.Inventory.TotalValueSelling += it.QuantityInStock * it.SellingPrice
		if it.QuantityInStock <= it.ReorderLevel {
			summary.Inventory.LowStockCount++
		}
		if it.QuantityInStock == 0 {
			summary.Inventory.OutOfStockCount++
		}
	}

	// "Today" is a date-prefix match on the formatted ledger timestamp; a
	// transaction is one distinct sale ID, not one ledger line.
	todayPrefix := time.Now().Format(dateLayout)
	todaySaleIDs := make(map[string]struct{})
	for _, line := range sales {
		summary.Overall.TotalSales += line.TotalSaleAmount
		if strings.HasPrefix(line.DateTime, todayPrefix) {
			summary.Today.TotalSales += line.TotalSaleAmount
			todaySaleIDs[line.SaleID] = struct{}{}
		}
	}
	summary.Today.Transactions = len(todaySaleIDs)

	for _, rec := range purchases {
		summary.Overall.TotalPurchases += rec.TotalPurchaseAmount
	}

	return &summary, nil
}

func (s *dashboardService) GetDailySummaries() ([]model.DailySummary, error) {
	return s.store.DailySummaries()
}

// UpsertDailySummary keeps the one-row-per-date invariant: an existing
// row for the date is overwritten in place, otherwise the row is appended.
func (s *dashboardService) UpsertDailySummary(rec *model.DailySummary) error {
	if err := validateRequest(rec); err != nil {
		return err
	}

	return s.store.MutateDailySummaries(func(rows []model.DailySummary) ([]model.DailySummary, error) {
		for i := range rows {
			if rows[i].Date == rec.Date {
				rows[i] = *rec
				return rows, nil
			}
		}
		return append(rows, *rec), nil
	})
}

package service

import (
	"fmt"
	"strings"
	"time"

	"go-hardware-pos/internal/model"
	"go-hardware-pos/internal/store"
	"go-hardware-pos/internal/ws"

	"github.com/google/uuid"
)

// Ledger timestamp formats, matching the historical workbook contents.
const (
	timestampLayout = "02/01/2006 15:04:05"
	dateLayout      = "02/01/2006"
)

type TransactionService interface {
	RecordSale(req *model.SaleTransaction) (string, error)
	RecordPurchase(req *model.PurchaseTransaction) (string, error)
	GetAllSales() ([]model.SaleLine, error)
	GetAllPurchases() ([]model.PurchaseRecord, error)
}

type transactionService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewTransactionService(st *store.Store, hub *ws.Hub) TransactionService {
	return &transactionService{store: st, hub: hub}
}

// RecordSale processes a multi-item sale. Every line is validated and
// applied against one working copy of the inventory before anything is
// written back, so a failing line leaves both cache and workbook exactly
// as they were. Lines are still processed in order: two lines selling the
// same item see each other's decrement within the same call.
func (s *transactionService) RecordSale(req *model.SaleTransaction) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	saleID := newTransactionID()
	timestamp := time.Now().Format(timestampLayout)

	lines := make([]model.SaleLine, 0, len(req.Items))
	err := s.store.MutateInventory(func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		for _, line := range req.Items {
			idx := findItem(items, line.ItemCode)
			if idx < 0 {
				return nil, notFound("Item %s not found", line.ItemCode)
			}
			if items[idx].QuantityInStock < line.Quantity {
				return nil, &InsufficientStockError{ItemName: line.ItemName}
			}
			items[idx].QuantityInStock -= line.Quantity

			lines = append(lines, model.SaleLine{
				SaleID:           saleID,
				DateTime:         timestamp,
				ItemCode:         line.ItemCode,
				ItemName:         line.ItemName,
				QuantitySold:     line.Quantity,
				UnitSellingPrice: line.UnitPrice,
				TotalSaleAmount:  line.Total,
				PaymentMethod:    req.PaymentMethod,
				CustomerName:     req.CustomerName,
				CustomerPhone:    req.CustomerPhone,
				ServedBy:         req.ServedBy,
			})
		}
		return items, nil
	})
	if err != nil {
		return "", err
	}

	if err := s.store.AppendSales(lines); err != nil {
		return "", err
	}

	s.hub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "sale_recorded",
		"sale": map[string]interface{}{
			"sale_id": saleID,
			"items":   len(lines),
		},
		"message": fmt.Sprintf("%s sold %d item(s), sale %s", req.ServedBy, len(lines), saleID),
	})
	return saleID, nil
}

// RecordPurchase restocks one existing item: stock up by the bought
// quantity, cost price overwritten with the new unit cost (last cost
// wins, no weighted average), restock date set to today.
func (s *transactionService) RecordPurchase(req *model.PurchaseTransaction) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	purchaseID := newTransactionID()
	now := time.Now()

	var newStock float64
	err := s.store.MutateInventory(func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		idx := findItem(items, req.ItemCode)
		if idx < 0 {
			return nil, notFound("Item %s not found in inventory. Please add it first.", req.ItemCode)
		}
		items[idx].QuantityInStock += req.Quantity
		items[idx].CostPrice = req.UnitCost
		restocked := now.Format(dateLayout)
		items[idx].LastRestockedDate = &restocked
		newStock = items[idx].QuantityInStock
		return items, nil
	})
	if err != nil {
		return "", err
	}

	rec := model.PurchaseRecord{
		PurchaseID:          purchaseID,
		DateTime:            now.Format(timestampLayout),
		ItemCode:            req.ItemCode,
		ItemName:            req.ItemName,
		QuantityBought:      req.Quantity,
		UnitCostPrice:       req.UnitCost,
		TotalPurchaseAmount: req.Quantity * req.UnitCost,
		SupplierName:        req.SupplierName,
		InvoiceNumber:       req.InvoiceNumber,
		PaymentMethod:       req.PaymentMethod,
		ReceivedBy:          req.ReceivedBy,
	}
	if err := s.store.AppendPurchase(rec); err != nil {
		return "", err
	}

	s.hub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "purchase_recorded",
		"purchase": map[string]interface{}{
			"purchase_id": purchaseID,
			"item_code":   req.ItemCode,
			"new_stock":   newStock,
		},
		"message": fmt.Sprintf("%s received %v x '%s' from %s", req.ReceivedBy, req.Quantity, req.ItemName, req.SupplierName),
	})
	return purchaseID, nil
}

func (s *transactionService) GetAllSales() ([]model.SaleLine, error) {
	return s.store.Sales()
}

func (s *transactionService) GetAllPurchases() ([]model.PurchaseRecord, error) {
	return s.store.Purchases()
}

// newTransactionID returns an 8-character upper-cased slice of a UUID.
// No collision check against existing ledger rows; at shop volume the
// odds are acceptable.
func newTransactionID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

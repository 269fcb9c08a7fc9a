package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go-hardware-pos/internal/model"
	"go-hardware-pos/internal/store"
)

func strPtr(s string) *string { return &s }

func seedInventory() []model.InventoryItem {
	return []model.InventoryItem{
		{
			ItemCode: "C001", ItemName: "Bamburi Cement (50kg)", Category: "Cement",
			UnitOfMeasure: "bags", QuantityInStock: 100, ReorderLevel: 20,
			CostPrice: 850, SellingPrice: 950,
			SupplierName: strPtr("Bamburi Cement Ltd"),
		},
		{
			ItemCode: "T001", ItemName: "Steel Hammer (1.5kg)", Category: "Tools",
			UnitOfMeasure: "pieces", QuantityInStock: 25, ReorderLevel: 5,
			CostPrice: 800, SellingPrice: 1100,
		},
		{
			ItemCode: "P001", ItemName: "Crown Paints High Gloss (4L)", Category: "Paint",
			UnitOfMeasure: "tins", QuantityInStock: 0, ReorderLevel: 10,
			CostPrice: 2200, SellingPrice: 2600,
		},
	}
}

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "pos.xlsx"))
	if err := st.SetInventory(seedInventory()); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	return st
}

func stockOf(t *testing.T, st *store.Store, code string) float64 {
	t.Helper()
	items, err := st.Inventory()
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	for _, it := range items {
		if it.ItemCode == code {
			return it.QuantityInStock
		}
	}
	t.Fatalf("item %s not in inventory", code)
	return 0
}

// --- inventory CRUD ---------------------------------------------------------

func TestAddItemDuplicateCodeConflicts(t *testing.T) {
	st := newSeededStore(t)
	svc := NewInventoryService(st, nil)

	dup := seedInventory()[0]
	err := svc.AddItem(&dup)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	items, _ := st.Inventory()
	if len(items) != len(seedInventory()) {
		t.Errorf("row count changed on a rejected add: %d", len(items))
	}
}

func TestAddItemValidation(t *testing.T) {
	st := newSeededStore(t)
	svc := NewInventoryService(st, nil)

	err := svc.AddItem(&model.InventoryItem{ItemCode: "X001"})

	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateItemReplacesAllFields(t *testing.T) {
	st := newSeededStore(t)
	svc := NewInventoryService(st, nil)

	err := svc.UpdateItem("T001", &model.InventoryItem{
		ItemCode: "ignored", ItemName: "Claw Hammer (1kg)", Category: "Tools",
		UnitOfMeasure: "pieces", QuantityInStock: 30, ReorderLevel: 8,
		CostPrice: 700, SellingPrice: 1000,
		LocationShelfNumber: strPtr("Shelf C4"),
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	items, _ := st.Inventory()
	var got *model.InventoryItem
	for i := range items {
		if items[i].ItemCode == "T001" {
			got = &items[i]
		}
	}
	if got == nil {
		t.Fatal("item code changed; the path key must win over the body")
	}
	if got.ItemName != "Claw Hammer (1kg)" || got.QuantityInStock != 30 || got.SupplierName != nil {
		t.Errorf("update was not wholesale: %+v", got)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	st := newSeededStore(t)
	svc := NewInventoryService(st, nil)

	item := seedInventory()[0]
	err := svc.UpdateItem("ZZZZ", &item)

	var missing *NotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	st := newSeededStore(t)
	svc := NewInventoryService(st, nil)

	if err := svc.DeleteItem("T001"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	items, _ := st.Inventory()
	if len(items) != 2 {
		t.Errorf("expected the row to be removed, got %d rows", len(items))
	}

	var missing *NotFoundError
	if err := svc.DeleteItem("T001"); !errors.As(err, &missing) {
		t.Errorf("expected NotFoundError on second delete, got %v", err)
	}
}

// --- sales ------------------------------------------------------------------

func saleOf(items ...model.CartItem) *model.SaleTransaction {
	return &model.SaleTransaction{
		Items:         items,
		PaymentMethod: "Cash",
		ServedBy:      "Alice",
	}
}

func TestRecordSaleDecrementsStockAndAppendsLedger(t *testing.T) {
	st := newSeededStore(t)
	svc := NewTransactionService(st, nil)

	saleID, err := svc.RecordSale(saleOf(model.CartItem{
		ItemCode: "C001", ItemName: "Bamburi Cement (50kg)",
		Quantity: 5, UnitPrice: 950, Total: 4750,
	}))
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if len(saleID) != 8 {
		t.Errorf("expected an 8-character sale id, got %q", saleID)
	}

	if got := stockOf(t, st, "C001"); got != 95 {
		t.Errorf("stock after sale = %v, want 95", got)
	}

	sales, _ := st.Sales()
	if len(sales) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(sales))
	}
	if sales[0].SaleID != saleID || sales[0].TotalSaleAmount != 4750 {
		t.Errorf("unexpected ledger row: %+v", sales[0])
	}
}

func TestRecordSaleMultiLineSharesIDAndTimestamp(t *testing.T) {
	st := newSeededStore(t)
	svc := NewTransactionService(st, nil)

	saleID, err := svc.RecordSale(saleOf(
		model.CartItem{ItemCode: "C001", ItemName: "Bamburi Cement (50kg)", Quantity: 2, UnitPrice: 950, Total: 1900},
		model.CartItem{ItemCode: "T001", ItemName: "Steel Hammer (1.5kg)", Quantity: 1, UnitPrice: 1100, Total: 1100},
	))
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	sales, _ := st.Sales()
	if len(sales) != 2 {
		t.Fatalf("a 2-line sale must produce exactly 2 ledger rows, got %d", len(sales))
	}
	if sales[0].SaleID != saleID || sales[1].SaleID != saleID {
		t.Errorf("lines do not share the sale id: %q vs %q", sales[0].SaleID, sales[1].SaleID)
	}
	if sales[0].DateTime != sales[1].DateTime {
		t.Errorf("lines do not share the timestamp: %q vs %q", sales[0].DateTime, sales[1].DateTime)
	}
}

func TestRecordSaleUnknownItem(t *testing.T) {
	st := newSeededStore(t)
	svc := NewTransactionService(st, nil)

	_, err := svc.RecordSale(saleOf(model.CartItem{
		ItemCode: "ZZZZ", ItemName: "Mystery", Quantity: 1, UnitPrice: 10, Total: 10,
	}))

	var missing *NotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	sales, _ := st.Sales()
	if len(sales) != 0 {
		t.Errorf("rejected sale still reached the ledger: %+v", sales)
	}
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	st := newSeededStore(t)
	svc := NewTransactionService(st, nil)

	_, err := svc.RecordSale(saleOf(model.CartItem{
		ItemCode: "C001", ItemName: "Bamburi Cement (50kg)",
		Quantity: 200, UnitPrice: 950, Total: 190000,
	}))

	var short *InsufficientStockError
	if !errors.As(err, &short) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if got := stockOf(t, st, "C001"); got != 100 {
		t.Errorf("rejected sale changed stock: %v", got)
	}
}

// A later line failing must roll back the earlier lines of the same call:
// nothing is written until the whole cart has been validated and applied.
func TestRecordSalePartialFailureLeavesNothingBehind(t *testing.T) {
	st := newSeededStore(t)
	svc := NewTransactionService(st, nil)

	_, err := svc.RecordSale(saleOf(
		model.CartItem{ItemCode: "C001", ItemName: "Bamburi Cement (50kg)", Quantity: 60, UnitPrice: 950, Total: 57000},
		model.CartItem{ItemCode: "C001", ItemName: "Bamburi Cement (50kg)", Quantity: 60, UnitPrice: 950, Total: 57000},
	))

	// 60 is fine on its own; the second 60 must see the first decrement
	// and fail against the remaining 40.
	var short *InsufficientStockError
	if !errors.As(err, &short) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if got := stockOf(t, st, "C001"); got != 100 {
		t.Errorf("failed sale left a partial decrement: %v", got)
	}
	sales, _ := st.Sales()
	if len(sales) != 0 {
		t.Errorf("failed sale left ledger rows: %+v", sales)
	}
}

// --- purchases --------------------------------------------------------------

func TestRecordPurchaseRestocks(t *testing.T) {
	st := newSeededStore(t)
	svc := NewTransactionService(st, nil)

	purchaseID, err := svc.RecordPurchase(&model.PurchaseTransaction{
		ItemCode: "C001", ItemName: "Bamburi Cement (50kg)",
		Quantity: 10, UnitCost: 900,
		SupplierName: "Bamburi Cement Ltd", InvoiceNumber: "INV-100",
		PaymentMethod: "Cash", ReceivedBy: "Alice",
	})
	if err != nil {
		t.Fatalf("RecordPurchase: %v", err)
	}
	if len(purchaseID) != 8 {
		t.Errorf("expected an 8-character purchase id, got %q", purchaseID)
	}

	items, _ := st.Inventory()
	var cement model.InventoryItem
	for _, it := range items {
		if it.ItemCode == "C001" {
			cement = it
		}
	}
	if cement.QuantityInStock != 110 {
		t.Errorf("stock after purchase = %v, want 110", cement.QuantityInStock)
	}
	if cement.CostPrice != 900 {
		t.Errorf("cost price must be overwritten with the last cost, got %v", cement.CostPrice)
	}
	today := time.Now().Format(dateLayout)
	if cement.LastRestockedDate == nil || *cement.LastRestockedDate != today {
		t.Errorf("last restocked date = %v, want %s", cement.LastRestockedDate, today)
	}

	purchases, _ := st.Purchases()
	if len(purchases) != 1 {
		t.Fatalf("expected 1 purchase row, got %d", len(purchases))
	}
	if purchases[0].PurchaseID != purchaseID || purchases[0].TotalPurchaseAmount != 9000 {
		t.Errorf("unexpected purchase row: %+v", purchases[0])
	}
}

func TestRecordPurchaseUnknownItem(t *testing.T) {
	st := newSeededStore(t)
	svc := NewTransactionService(st, nil)

	_, err := svc.RecordPurchase(&model.PurchaseTransaction{
		ItemCode: "ZZZZ", ItemName: "Mystery", Quantity: 1, UnitCost: 10,
		SupplierName: "Nobody", InvoiceNumber: "INV-0",
		PaymentMethod: "Cash", ReceivedBy: "Alice",
	})

	var missing *NotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	purchases, _ := st.Purchases()
	if len(purchases) != 0 {
		t.Errorf("rejected purchase reached the ledger: %+v", purchases)
	}
}

// --- reports ----------------------------------------------------------------

func TestSummaryOnEmptyTables(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "pos.xlsx"))
	svc := NewDashboardService(st)

	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.Overall.TotalSales != 0 || summary.Overall.TotalPurchases != 0 {
		t.Errorf("expected zero overall totals: %+v", summary.Overall)
	}
	if summary.Today.Transactions != 0 || summary.Today.TotalSales != 0 {
		t.Errorf("expected zero today stats: %+v", summary.Today)
	}
	if summary.Inventory.TotalItems != 0 {
		t.Errorf("expected empty inventory stats: %+v", summary.Inventory)
	}
}

func TestSummaryFigures(t *testing.T) {
	st := newSeededStore(t)
	txSvc := NewTransactionService(st, nil)
	dashSvc := NewDashboardService(st)

	// One 2-line sale today: figures land in both today and overall.
	if _, err := txSvc.RecordSale(saleOf(
		model.CartItem{ItemCode: "C001", ItemName: "Bamburi Cement (50kg)", Quantity: 5, UnitPrice: 950, Total: 4750},
		model.CartItem{ItemCode: "T001", ItemName: "Steel Hammer (1.5kg)", Quantity: 1, UnitPrice: 1100, Total: 1100},
	)); err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if _, err := txSvc.RecordPurchase(&model.PurchaseTransaction{
		ItemCode: "C001", ItemName: "Bamburi Cement (50kg)", Quantity: 10, UnitCost: 900,
		SupplierName: "Bamburi Cement Ltd", InvoiceNumber: "INV-100",
		PaymentMethod: "Cash", ReceivedBy: "Alice",
	}); err != nil {
		t.Fatalf("RecordPurchase: %v", err)
	}

	summary, err := dashSvc.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.Overall.TotalSales != 5850 {
		t.Errorf("overall sales = %v, want 5850", summary.Overall.TotalSales)
	}
	if summary.Overall.TotalPurchases != 9000 {
		t.Errorf("overall purchases = %v, want 9000", summary.Overall.TotalPurchases)
	}
	if summary.Today.TotalSales != 5850 {
		t.Errorf("today sales = %v, want 5850", summary.Today.TotalSales)
	}
	if summary.Today.Transactions != 1 {
		t.Errorf("a 2-line sale counts as one transaction, got %d", summary.Today.Transactions)
	}

	// Inventory after the sale and purchase: C001=105 @900/950,
	// T001=24 @800/1100, P001=0 @2200/2600.
	inv := summary.Inventory
	if inv.TotalItems != 3 {
		t.Errorf("total items = %d, want 3", inv.TotalItems)
	}
	if inv.OutOfStockCount != 1 {
		t.Errorf("out of stock count = %d, want 1", inv.OutOfStockCount)
	}
	if inv.LowStockCount != 1 {
		t.Errorf("low stock count = %d, want 1 (P001 at zero)", inv.LowStockCount)
	}
	if inv.TotalValueCost != 105*900+24*800+0 {
		t.Errorf("inventory value at cost = %v", inv.TotalValueCost)
	}
	if inv.TotalValueSelling != 105*950+24*1100+0 {
		t.Errorf("inventory value at selling = %v", inv.TotalValueSelling)
	}
}

func TestUpsertDailySummaryKeepsOneRowPerDate(t *testing.T) {
	st := newSeededStore(t)
	svc := NewDashboardService(st)

	if err := svc.UpsertDailySummary(&model.DailySummary{
		Date: "26/08/2026", TotalSales: 100, NumberOfTransactions: 1,
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := svc.UpsertDailySummary(&model.DailySummary{
		Date: "26/08/2026", TotalSales: 250, NumberOfTransactions: 3, CashInHand: 250,
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if err := svc.UpsertDailySummary(&model.DailySummary{
		Date: "27/08/2026", TotalSales: 75, NumberOfTransactions: 1,
	}); err != nil {
		t.Fatalf("third upsert: %v", err)
	}

	rows, err := svc.GetDailySummaries()
	if err != nil {
		t.Fatalf("GetDailySummaries: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (one per date), got %d", len(rows))
	}
	if rows[0].Date != "26/08/2026" || rows[0].TotalSales != 250 || rows[0].NumberOfTransactions != 3 {
		t.Errorf("second upsert did not overwrite in place: %+v", rows[0])
	}
}

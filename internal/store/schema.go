package store

import (
	"fmt"
	"strconv"
	"strings"

	"go-hardware-pos/internal/model"
	"go-hardware-pos/pkg/workbook"
)

// Sheet names. Exactly these four sections make up the workbook.
const (
	SheetInventory    = "Inventory"
	SheetSales        = "Sales"
	SheetPurchases    = "Purchases"
	SheetDailySummary = "Daily Summary"
)

var inventoryHeader = []string{
	"Item Code", "Item Name", "Category", "Unit of Measure",
	"Quantity in Stock", "Reorder Level", "Cost Price",
	"Selling Price", "Supplier Name", "Last Restocked Date", "Location/Shelf Number",
}

var salesHeader = []string{
	"Sale ID", "Date & Time", "Item Code", "Item Name",
	"Quantity Sold", "Unit Selling Price", "Total Sale Amount",
	"Payment Method", "Customer Name", "Customer Phone", "Served By",
}

var purchasesHeader = []string{
	"Purchase ID", "Date & Time", "Item Code", "Item Name",
	"Quantity Bought", "Unit Cost Price", "Total Purchase Amount",
	"Supplier Name", "Invoice Number", "Payment Method", "Received By",
}

var summaryHeader = []string{
	"Date", "Total Sales", "Total Purchases", "Daily Profit/Loss",
	"Number of Transactions", "Cash in Hand", "M-Pesa Transactions",
}

// SeedSheets is the one-time initialization layout: the four empty ledgers
// plus a handful of sample hardware stock so a fresh shop has something to
// sell against.
func SeedSheets() []workbook.Sheet {
	sampleInventory := [][]interface{}{
		{"C001", "Bamburi Cement (50kg)", "Cement", "bags", 100.0, 20.0, 850.0, 950.0, "Bamburi Cement Ltd", "2024-01-01", "Shelf A1"},
		{"P001", "Crown Paints High Gloss (4L)", "Paint", "tins", 50.0, 10.0, 2200.0, 2600.0, "Crown Paints", "2024-01-05", "Shelf B2"},
		{"T001", "Steel Hammer (1.5kg)", "Tools", "pieces", 25.0, 5.0, 800.0, 1100.0, "General Hardware Suppliers", "2024-01-10", "Shelf C3"},
		{"Pl01", "PVC Pipe 1/2 inch (6m)", "Plumbing", "pieces", 80.0, 15.0, 350.0, 480.0, "Plumbing World", "2024-01-12", "Shelf D4"},
	}

	return []workbook.Sheet{
		{Name: SheetInventory, Header: inventoryHeader, Rows: sampleInventory},
		{Name: SheetSales, Header: salesHeader},
		{Name: SheetPurchases, Header: purchasesHeader},
		{Name: SheetDailySummary, Header: summaryHeader},
	}
}

// --- row codecs -------------------------------------------------------------
//
// Excel cells come back from the mirror as strings; these map each model
// struct to and from its sheet row. Optional text columns round-trip empty
// cells as nil so JSON shows them as null, never as a NaN sentinel.

func encodeItem(it model.InventoryItem) []interface{} {
	return []interface{}{
		it.ItemCode, it.ItemName, it.Category, it.UnitOfMeasure,
		it.QuantityInStock, it.ReorderLevel, it.CostPrice, it.SellingPrice,
		optional(it.SupplierName), optional(it.LastRestockedDate), optional(it.LocationShelfNumber),
	}
}

func decodeItem(row []string) (model.InventoryItem, error) {
	var it model.InventoryItem
	var err error

	it.ItemCode = cell(row, 0)
	it.ItemName = cell(row, 1)
	it.Category = cell(row, 2)
	it.UnitOfMeasure = cell(row, 3)
	if it.QuantityInStock, err = number(row, 4); err != nil {
		return it, err
	}
	if it.ReorderLevel, err = number(row, 5); err != nil {
		return it, err
	}
	if it.CostPrice, err = number(row, 6); err != nil {
		return it, err
	}
	if it.SellingPrice, err = number(row, 7); err != nil {
		return it, err
	}
	it.SupplierName = text(row, 8)
	it.LastRestockedDate = text(row, 9)
	it.LocationShelfNumber = text(row, 10)
	return it, nil
}

func encodeSaleLine(l model.SaleLine) []interface{} {
	return []interface{}{
		l.SaleID, l.DateTime, l.ItemCode, l.ItemName,
		l.QuantitySold, l.UnitSellingPrice, l.TotalSaleAmount,
		l.PaymentMethod, optional(l.CustomerName), optional(l.CustomerPhone), l.ServedBy,
	}
}

func decodeSaleLine(row []string) (model.SaleLine, error) {
	var l model.SaleLine
	var err error

	l.SaleID = cell(row, 0)
	l.DateTime = cell(row, 1)
	l.ItemCode = cell(row, 2)
	l.ItemName = cell(row, 3)
	if l.QuantitySold, err = number(row, 4); err != nil {
		return l, err
	}
	if l.UnitSellingPrice, err = number(row, 5); err != nil {
		return l, err
	}
	if l.TotalSaleAmount, err = number(row, 6); err != nil {
		return l, err
	}
	l.PaymentMethod = cell(row, 7)
	l.CustomerName = text(row, 8)
	l.CustomerPhone = text(row, 9)
	l.ServedBy = cell(row, 10)
	return l, nil
}

func encodePurchase(p model.PurchaseRecord) []interface{} {
	return []interface{}{
		p.PurchaseID, p.DateTime, p.ItemCode, p.ItemName,
		p.QuantityBought, p.UnitCostPrice, p.TotalPurchaseAmount,
		p.SupplierName, p.InvoiceNumber, p.PaymentMethod, p.ReceivedBy,
	}
}

func decodePurchase(row []string) (model.PurchaseRecord, error) {
	var p model.PurchaseRecord
	var err error

	p.PurchaseID = cell(row, 0)
	p.DateTime = cell(row, 1)
	p.ItemCode = cell(row, 2)
	p.ItemName = cell(row, 3)
	if p.QuantityBought, err = number(row, 4); err != nil {
		return p, err
	}
	if p.UnitCostPrice, err = number(row, 5); err != nil {
		return p, err
	}
	if p.TotalPurchaseAmount, err = number(row, 6); err != nil {
		return p, err
	}
	p.SupplierName = cell(row, 7)
	p.InvoiceNumber = cell(row, 8)
	p.PaymentMethod = cell(row, 9)
	p.ReceivedBy = cell(row, 10)
	return p, nil
}

func encodeSummary(s model.DailySummary) []interface{} {
	return []interface{}{
		s.Date, s.TotalSales, s.TotalPurchases, s.DailyProfitLoss,
		s.NumberOfTransactions, s.CashInHand, s.MpesaTransactions,
	}
}

func decodeSummary(row []string) (model.DailySummary, error) {
	var s model.DailySummary
	var err error

	s.Date = cell(row, 0)
	if s.TotalSales, err = number(row, 1); err != nil {
		return s, err
	}
	if s.TotalPurchases, err = number(row, 2); err != nil {
		return s, err
	}
	if s.DailyProfitLoss, err = number(row, 3); err != nil {
		return s, err
	}
	count, err := number(row, 4)
	if err != nil {
		return s, err
	}
	s.NumberOfTransactions = int(count)
	if s.CashInHand, err = number(row, 5); err != nil {
		return s, err
	}
	if s.MpesaTransactions, err = number(row, 6); err != nil {
		return s, err
	}
	return s, nil
}

// cell tolerates short rows: excelize trims trailing empty cells.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func number(row []string, i int) (float64, error) {
	v := cell(row, i)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: bad number %q: %w", i+1, v, err)
	}
	return n, nil
}

func text(row []string, i int) *string {
	v := cell(row, i)
	if v == "" {
		return nil
	}
	return &v
}

func optional(v *string) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

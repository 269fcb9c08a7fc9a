package model

// PurchaseTransaction is the POST /api/purchases request body. Purchases
// restock a single existing item; genuinely new items go through the
// inventory endpoints instead.
type PurchaseTransaction struct {
	ItemCode      string  `json:"item_code" validate:"required"`
	ItemName      string  `json:"item_name" validate:"required"`
	Quantity      float64 `json:"quantity" validate:"required,gt=0"`
	UnitCost      float64 `json:"unit_cost" validate:"gte=0"`
	SupplierName  string  `json:"supplier_name" validate:"required"`
	InvoiceNumber string  `json:"invoice_number" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	ReceivedBy    string  `json:"received_by" validate:"required"`
}

// PurchaseRecord is one row of the Purchases ledger sheet. Append-only.
type PurchaseRecord struct {
	PurchaseID          string  `json:"purchase_id"`
	DateTime            string  `json:"date_time"`
	ItemCode            string  `json:"item_code"`
	ItemName            string  `json:"item_name"`
	QuantityBought      float64 `json:"quantity_bought"`
	UnitCostPrice       float64 `json:"unit_cost_price"`
	TotalPurchaseAmount float64 `json:"total_purchase_amount"`
	SupplierName        string  `json:"supplier_name"`
	InvoiceNumber       string  `json:"invoice_number"`
	PaymentMethod       string  `json:"payment_method"`
	ReceivedBy          string  `json:"received_by"`
}

package model

// CartItem is one line of a sale request.
type CartItem struct {
	ItemCode  string  `json:"item_code" validate:"required"`
	ItemName  string  `json:"item_name" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Total     float64 `json:"total" validate:"gte=0"`
}

// SaleTransaction is the POST /api/sales request body. A multi-item sale
// becomes one SaleLine per cart item, all sharing the same sale ID.
type SaleTransaction struct {
	Items         []CartItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string     `json:"payment_method" validate:"required"`
	CustomerName  *string    `json:"customer_name"`
	CustomerPhone *string    `json:"customer_phone"`
	ServedBy      string     `json:"served_by" validate:"required"`
	Discount      float64    `json:"discount"`
}

// SaleLine is one row of the Sales ledger sheet. Append-only.
type SaleLine struct {
	SaleID           string  `json:"sale_id"`
	DateTime         string  `json:"date_time"`
	ItemCode         string  `json:"item_code"`
	ItemName         string  `json:"item_name"`
	QuantitySold     float64 `json:"quantity_sold"`
	UnitSellingPrice float64 `json:"unit_selling_price"`
	TotalSaleAmount  float64 `json:"total_sale_amount"`
	PaymentMethod    string  `json:"payment_method"`
	CustomerName     *string `json:"customer_name"`
	CustomerPhone    *string `json:"customer_phone"`
	ServedBy         string  `json:"served_by"`
}

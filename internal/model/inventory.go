package model

// InventoryItem is one row of the Inventory sheet. ItemCode is the unique
// key and is a string by schema, so numeric-looking codes ("001") and text
// codes ("C001") never diverge in type.
type InventoryItem struct {
	ItemCode            string  `json:"item_code" validate:"required"`
	ItemName            string  `json:"item_name" validate:"required"`
	Category            string  `json:"category" validate:"required"`
	UnitOfMeasure       string  `json:"unit_of_measure" validate:"required"`
	QuantityInStock     float64 `json:"quantity_in_stock"`
	ReorderLevel        float64 `json:"reorder_level"`
	CostPrice           float64 `json:"cost_price"`
	SellingPrice        float64 `json:"selling_price"`
	SupplierName        *string `json:"supplier_name"`
	LastRestockedDate   *string `json:"last_restocked_date"`
	LocationShelfNumber *string `json:"location_shelf_number"`
}

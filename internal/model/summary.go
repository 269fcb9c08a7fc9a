package model

// DailySummary is one row of the Daily Summary sheet, keyed by Date.
// At most one row exists per date; writes go through an upsert.
type DailySummary struct {
	Date                 string  `json:"date" validate:"required"`
	TotalSales           float64 `json:"total_sales"`
	TotalPurchases       float64 `json:"total_purchases"`
	DailyProfitLoss      float64 `json:"daily_profit_loss"`
	NumberOfTransactions int     `json:"number_of_transactions"`
	CashInHand           float64 `json:"cash_in_hand"`
	MpesaTransactions    float64 `json:"m_pesa_transactions"`
}

package dto

// StockSummaryResponse resumen agregado para el panel inicial.
type StockSummaryResponse struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	TotalMovements  int `json:"total_movements"`
	EntryCount      int `json:"entry_count"`
	ExitCount       int `json:"exit_count"`
	ZeroStockCount  int `json:"zero_stock_count"`
}

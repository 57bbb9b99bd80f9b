package repository

import "context"

// StockSummaryResult resultado crudo de las consultas de resumen.
// Lo produce la DB; el use case lo convierte en DTO.
type StockSummaryResult struct {
	TotalProducts   int
	TotalCategories int
	TotalMovements  int
	EntryCount      int
	ExitCount       int
	ZeroStockCount  int // productos con stock en cero
}

// ReportRepository define las consultas de lectura para el resumen del panel.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	GetStockSummary(ctx context.Context) (*StockSummaryResult, error)
}

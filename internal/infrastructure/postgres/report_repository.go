package postgres

import (
	"context"
	"fmt"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only para el resumen del panel.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetStockSummary devuelve los totales por entidad en una sola consulta.
// La lectura no necesita ser transaccionalmente consistente con escrituras
// concurrentes (read-committed es suficiente para un panel).
func (r *ReportRepo) GetStockSummary(ctx context.Context) (*repository.StockSummaryResult, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM movements),
			(SELECT COUNT(*) FROM movements WHERE kind = 'ENTRY'),
			(SELECT COUNT(*) FROM movements WHERE kind = 'EXIT'),
			(SELECT COUNT(*) FROM products WHERE quantity = 0)`
	var s repository.StockSummaryResult
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalProducts, &s.TotalCategories, &s.TotalMovements,
		&s.EntryCount, &s.ExitCount, &s.ZeroStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	return &s, nil
}

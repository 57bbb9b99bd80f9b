package usecase

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// ReportUseCase arma el resumen agregado para el panel inicial.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// StockSummary devuelve totales por entidad y el conteo de entradas/salidas.
func (uc *ReportUseCase) StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	result, err := uc.repo.GetStockSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{
		TotalProducts:   result.TotalProducts,
		TotalCategories: result.TotalCategories,
		TotalMovements:  result.TotalMovements,
		EntryCount:      result.EntryCount,
		ExitCount:       result.ExitCount,
		ZeroStockCount:  result.ZeroStockCount,
	}, nil
}

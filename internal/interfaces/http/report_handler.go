package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// ReportHandler maneja las consultas de resumen para el panel.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockSummary devuelve totales por entidad y conteo de entradas/salidas.
func (h *ReportHandler) StockSummary(c *fiber.Ctx) error {
	resp, err := h.uc.StockSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/application/usecase"
)

// ReportHandler reportes tabulares (cualquier usuario autenticado).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Users godoc
// @Summary      Reporte de usuarios y accesos
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserReportRow
// @Router       /api/reportes/usuarios [get]
func (h *ReportHandler) Users(c *fiber.Ctx) error {
	rows, err := h.uc.UserReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al generar el reporte"})
	}
	return c.JSON(rows)
}

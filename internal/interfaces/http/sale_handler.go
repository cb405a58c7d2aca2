package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/application/sales"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
)

// SaleHandler maneja registro y consulta de ventas (protegido).
type SaleHandler struct {
	registerUC *sales.RegisterSaleUseCase
	listUC     *sales.ListSalesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(registerUC *sales.RegisterSaleUseCase, listUC *sales.ListSalesUseCase) *SaleHandler {
	return &SaleHandler{registerUC: registerUC, listUC: listUC}
}

// Register godoc
// @Summary      Registrar una venta
// @Description  Reserva stock en el servicio de inventario y persiste la venta;
// @Description  si la persistencia falla, restaura el stock reservado.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.RegisterSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	// El vendedor sale del token autenticado, nunca del cuerpo.
	result, err := h.registerUC.RegisterSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return h.registerError(c, result, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterSaleResponse{
		Mensaje: "Venta registrada exitosamente",
		Venta:   *result.Venta,
	})
}

// registerError traduce cada desenlace fallido del flujo a una respuesta estable.
func (h *SaleHandler) registerError(c *fiber.Ctx, result *sales.RegisterSaleResult, err error) error {
	var upstream *sales.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.As(err, &upstream):
		// Error de negocio del inventario (stock insuficiente, producto
		// inexistente): mismo status y mensaje que reportó el servicio.
		return c.Status(upstream.StatusCode).JSON(dto.ErrorResponse{Code: "INVENTORY", Message: upstream.Message})
	case errors.Is(err, domain.ErrInventoryDown):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "INVENTORY_UNAVAILABLE", Message: "servicio de inventario no disponible"})
	case errors.Is(err, domain.ErrSaleNotSaved):
		msg := "La venta no fue guardada; el stock reservado fue revertido."
		if result != nil && result.Outcome == sales.OutcomeRevertFailed {
			msg = "La venta no fue guardada y la reversión de stock falló; se requiere reconciliación manual."
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SALE_NOT_SAVED", Message: msg})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno del servidor al registrar la venta."})
}

// List godoc
// @Summary      Consultar ventas
// @Description  Un Vendedor solo ve sus propias ventas; Administrador y
// @Description  Consultor pueden filtrar por cualquier vendedor.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        vendedorId   query  string  false  "ID del vendedor"
// @Param        fechaInicio  query  string  false  "YYYY-MM-DD inclusivo"
// @Param        fechaFin     query  string  false  "YYYY-MM-DD inclusivo (día completo)"
// @Param        cliente      query  string  false  "Substring del nombre del cliente"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.ListSalesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	ventas, err := h.listUC.List(c.Context(), GetUserID(c), GetRol(c), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno del servidor al obtener las ventas."})
	}
	return c.JSON(ventas)
}

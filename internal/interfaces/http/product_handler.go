package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/application/sales"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
)

// productLister es el contrato mínimo que necesita el handler para leer el
// catálogo remoto. Lo implementa *inventory.Client; la interfaz permite
// sustituirlo en tests.
type productLister interface {
	ListProducts(ctx context.Context) ([]dto.Producto, error)
}

// ProductHandler lectura del catálogo de productos del servicio de
// inventario. Solo proxy de lectura: el CRUD de productos pertenece al
// servicio remoto.
type ProductHandler struct {
	lister productLister
}

// NewProductHandler construye el handler.
func NewProductHandler(lister productLister) *ProductHandler {
	return &ProductHandler{lister: lister}
}

// List godoc
// @Summary      Listar productos (servicio de inventario)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.Producto
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	productos, err := h.lister.ListProducts(c.Context())
	if err != nil {
		var upstream *sales.UpstreamError
		if errors.As(err, &upstream) {
			return c.Status(upstream.StatusCode).JSON(dto.ErrorResponse{Code: "INVENTORY", Message: upstream.Message})
		}
		if errors.Is(err, domain.ErrInventoryDown) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "INVENTORY_UNAVAILABLE", Message: "servicio de inventario no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al obtener productos"})
	}
	return c.JSON(productos)
}

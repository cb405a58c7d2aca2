package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta tal como la envía el cliente. Nombre y
// precio son instantáneas del producto al momento de la selección.
type SaleItemRequest struct {
	ID       string          `json:"id" validate:"required"`
	Nombre   string          `json:"nombre"`
	Precio   decimal.Decimal `json:"precio"`
	Cantidad int             `json:"cantidad" validate:"required,min=1"`
}

// RegisterSaleRequest entrada para registrar una venta. El vendedor NUNCA
// viene en el cuerpo: se toma del token autenticado. Total es puntero para
// distinguir "ausente" de cero. Fecha opcional en formato YYYY-MM-DD o RFC3339.
type RegisterSaleRequest struct {
	ClienteNombre string            `json:"clienteNombre" validate:"required"`
	Productos     []SaleItemRequest `json:"productosSeleccionados" validate:"required,min=1,dive"`
	Total         *decimal.Decimal  `json:"total" validate:"required"`
	Fecha         string            `json:"fecha"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ID       string          `json:"id"`
	Nombre   string          `json:"nombre"`
	Precio   decimal.Decimal `json:"precio"`
	Cantidad int             `json:"cantidad"`
}

// SaleResponse venta persistida.
type SaleResponse struct {
	ID            string             `json:"id"`
	VendedorID    string             `json:"vendedorId"`
	ClienteNombre string             `json:"clienteNombre"`
	Productos     []SaleItemResponse `json:"productosSeleccionados"`
	Total         decimal.Decimal    `json:"total"`
	Fecha         time.Time          `json:"fecha"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// RegisterSaleResponse respuesta de creación: mensaje más la venta registrada.
type RegisterSaleResponse struct {
	Mensaje string       `json:"mensaje"`
	Venta   SaleResponse `json:"venta"`
}

// ListSalesQuery filtros de consulta de ventas tal como llegan por query string.
// Para rol Vendedor, VendedorID se ignora y se fuerza al del token.
type ListSalesQuery struct {
	VendedorID  string `query:"vendedorId"`
	FechaInicio string `query:"fechaInicio"` // YYYY-MM-DD, inclusivo
	FechaFin    string `query:"fechaFin"`    // YYYY-MM-DD, inclusivo (día completo)
	Cliente     string `query:"cliente"`     // substring, case-insensitive
}

// Producto vista de solo lectura de un producto del servicio de inventario.
// El backend nunca muta esta entidad directamente.
type Producto struct {
	ID              int             `json:"id"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion"`
	PrecioCompra    decimal.Decimal `json:"precio_compra"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	CategoriaID     int             `json:"categoria_id"`
	CategoriaNombre string          `json:"categoria_nombre"`
	Stock           int             `json:"stock"`
}

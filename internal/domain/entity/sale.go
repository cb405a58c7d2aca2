package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una línea de venta embebida en Sale. Nombre y Precio son
// instantáneas tomadas al momento de la venta: ediciones posteriores del
// producto en el servicio de inventario no alteran ventas históricas.
type SaleItem struct {
	ProductID string
	Nombre    string
	Precio    decimal.Decimal
	Cantidad  int // >= 1
}

// Sale representa una venta registrada. Es inmutable después de creada:
// no existe operación de actualización ni de borrado.
type Sale struct {
	ID            string
	VendedorID    string // referencia al User autenticado que la registró
	ClienteNombre string // no vacío, sin espacios sobrantes
	Items         []SaleItem
	Total         decimal.Decimal // >= 0
	Fecha         time.Time       // fecha de la venta; por defecto el momento de creación
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

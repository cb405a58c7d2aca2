package repository

import (
	"context"
	"time"

	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
)

// SaleFilter filtros para consultar ventas. FechaHastaExcl es el límite
// superior EXCLUSIVO ya calculado (día siguiente al solicitado), de modo que
// una venta con componente horario del mismo día quede incluida.
type SaleFilter struct {
	VendedorID     string
	FechaDesde     *time.Time // inclusivo (>=)
	FechaHastaExcl *time.Time // exclusivo (<)
	Cliente        string     // substring del nombre del cliente, case-insensitive
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son registros inmutables: solo creación y consulta.
type SaleRepository interface {
	// Create persiste la venta junto con sus líneas de forma atómica.
	Create(ctx context.Context, sale *entity.Sale) error
	// List devuelve las ventas que cumplen el filtro, ordenadas por fecha descendente.
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, error)
}

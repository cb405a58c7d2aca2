package sales

import (
	"context"
	"fmt"
)

// StockItem cantidad a ajustar/restaurar por producto, ya agregada
// (un producto aparece a lo sumo una vez).
type StockItem struct {
	ProductID string
	Cantidad  int
}

// UpstreamError error de negocio reportado por el servicio de inventario
// (stock insuficiente, producto inexistente, items inválidos). Se propaga al
// cliente con el mismo status y mensaje que devolvió el servicio.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("inventario respondió %d: %s", e.StatusCode, e.Message)
}

// InventoryGateway puerto de salida hacia el servicio de inventario, dueño
// del stock. AdjustStock descuenta (reserva); RestoreStock devuelve lo
// reservado cuando la venta no pudo persistirse (compensación).
// La atomicidad de cada operación es responsabilidad del servicio remoto.
type InventoryGateway interface {
	AdjustStock(ctx context.Context, items []StockItem) error
	RestoreStock(ctx context.Context, items []StockItem) error
}

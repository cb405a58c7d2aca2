package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
	"github.com/Hannia06H/ProyectoArq/pkg/logger"
)

// Outcome resultado final del registro de una venta. Distingue explícitamente
// "revertido limpio" de "requiere reconciliación manual" en vez de tragarse
// el error de compensación.
type Outcome string

const (
	// OutcomePersisted reserva y persistencia exitosas.
	OutcomePersisted Outcome = "PERSISTED"
	// OutcomeRevertedOK la persistencia falló y el stock reservado se restauró.
	OutcomeRevertedOK Outcome = "REVERTED"
	// OutcomeRevertFailed la persistencia falló y la restauración también:
	// el stock queda descontado de más hasta reconciliación manual.
	OutcomeRevertFailed Outcome = "REVERT_FAILED"
)

// RegisterSaleResult venta creada (solo si Outcome es PERSISTED) y el
// desenlace del flujo de dos fases.
type RegisterSaleResult struct {
	Outcome Outcome
	Venta   *dto.SaleResponse
}

// RegisterSaleUseCase registra una venta en dos fases con compensación:
//  1. Reservar: descontar stock en el servicio de inventario (agregado por producto).
//  2. Persistir: guardar la venta con sus líneas originales (sin agregar).
//  3. Compensar: si persistir falla, restaurar el stock reservado (mejor esfuerzo).
type RegisterSaleUseCase struct {
	saleRepo  repository.SaleRepository
	inventory InventoryGateway
	log       *logger.Logger
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(saleRepo repository.SaleRepository, inventory InventoryGateway, log *logger.Logger) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{saleRepo: saleRepo, inventory: inventory, log: log}
}

// RegisterSale ejecuta el flujo completo. El vendedorID proviene del token
// autenticado, nunca del cuerpo de la petición.
//
// Falla rápido: cualquier error de validación se devuelve antes de tocar el
// servicio de inventario, sin estado parcial. Si la reserva falla, no se crea
// venta ni hace falta compensar. Si la persistencia falla tras reservar, se
// emite UNA llamada de restauración con las mismas cantidades agregadas.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, vendedorID string, in dto.RegisterSaleRequest) (*RegisterSaleResult, error) {
	fecha, err := validateRequest(vendedorID, in)
	if err != nil {
		return nil, err
	}

	// Reservar con cantidades agregadas: selecciones duplicadas del cliente
	// no deben descontar dos veces en la misma llamada.
	aggregated := AggregateItems(in.Productos)
	if err := uc.inventory.AdjustStock(ctx, aggregated); err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		VendedorID:    vendedorID,
		ClienteNombre: strings.TrimSpace(in.ClienteNombre),
		Items:         toEntityItems(in.Productos), // líneas originales, sin agregar
		Total:         *in.Total,
		Fecha:         fecha,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		uc.log.Error().Err(err).Str("venta_id", sale.ID).Msg("persistir venta falló, restaurando stock")
		outcome := OutcomeRevertedOK
		if restoreErr := uc.inventory.RestoreStock(ctx, aggregated); restoreErr != nil {
			outcome = OutcomeRevertFailed
			uc.log.Warn().Err(restoreErr).Str("venta_id", sale.ID).
				Msg("restaurar stock falló: requiere reconciliación manual")
		}
		return &RegisterSaleResult{Outcome: outcome}, domain.ErrSaleNotSaved
	}

	return &RegisterSaleResult{Outcome: OutcomePersisted, Venta: toSaleResponse(sale)}, nil
}

// validateRequest valida la petición completa antes de cualquier llamada
// externa y resuelve la fecha de la venta (ahora si viene vacía).
// No hay aceptación parcial: una línea inválida rechaza toda la venta.
func validateRequest(vendedorID string, in dto.RegisterSaleRequest) (time.Time, error) {
	if vendedorID == "" {
		return time.Time{}, fmt.Errorf("%w: vendedor no identificado", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ClienteNombre) == "" {
		return time.Time{}, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	if len(in.Productos) == 0 {
		return time.Time{}, fmt.Errorf("%w: debe seleccionar al menos un producto", domain.ErrInvalidInput)
	}
	if in.Total == nil {
		return time.Time{}, fmt.Errorf("%w: el total es obligatorio", domain.ErrInvalidInput)
	}
	if in.Total.LessThan(decimal.Zero) {
		return time.Time{}, fmt.Errorf("%w: el total no puede ser negativo", domain.ErrInvalidInput)
	}
	for _, p := range in.Productos {
		if p.ID == "" {
			return time.Time{}, fmt.Errorf("%w: producto sin id", domain.ErrInvalidInput)
		}
		if p.Cantidad < 1 {
			return time.Time{}, fmt.Errorf("%w: cantidad inválida para el producto %s", domain.ErrInvalidInput, p.ID)
		}
	}
	if in.Fecha == "" {
		return time.Now(), nil
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida (%s)", domain.ErrInvalidInput, in.Fecha)
	}
	return fecha, nil
}

// AggregateItems fusiona líneas que referencian el mismo producto sumando
// cantidades, preservando el orden de primera aparición. La venta persistida
// conserva las líneas originales; la agregación aplica solo a las llamadas
// por lotes al servicio de inventario.
func AggregateItems(items []dto.SaleItemRequest) []StockItem {
	index := make(map[string]int, len(items))
	out := make([]StockItem, 0, len(items))
	for _, it := range items {
		if i, ok := index[it.ID]; ok {
			out[i].Cantidad += it.Cantidad
			continue
		}
		index[it.ID] = len(out)
		out = append(out, StockItem{ProductID: it.ID, Cantidad: it.Cantidad})
	}
	return out
}

func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toEntityItems(items []dto.SaleItemRequest) []entity.SaleItem {
	out := make([]entity.SaleItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.SaleItem{
			ProductID: it.ID,
			Nombre:    it.Nombre,
			Precio:    it.Precio,
			Cantidad:  it.Cantidad,
		})
	}
	return out
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:       it.ProductID,
			Nombre:   it.Nombre,
			Precio:   it.Precio,
			Cantidad: it.Cantidad,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		VendedorID:    s.VendedorID,
		ClienteNombre: s.ClienteNombre,
		Productos:     items,
		Total:         s.Total,
		Fecha:         s.Fecha,
		CreatedAt:     s.CreatedAt,
	}
}

package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
	"github.com/Hannia06H/ProyectoArq/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway registra cada llamada al servicio de inventario y permite
// inyectar fallos en reserva y restauración por separado.
type fakeGateway struct {
	adjustCalls  [][]StockItem
	restoreCalls [][]StockItem
	adjustErr    error
	restoreErr   error
}

func (g *fakeGateway) AdjustStock(_ context.Context, items []StockItem) error {
	g.adjustCalls = append(g.adjustCalls, items)
	return g.adjustErr
}

func (g *fakeGateway) RestoreStock(_ context.Context, items []StockItem) error {
	g.restoreCalls = append(g.restoreCalls, items)
	return g.restoreErr
}

// fakeSaleRepo captura la venta persistida o falla a demanda.
type fakeSaleRepo struct {
	created   []*entity.Sale
	createErr error
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, sale)
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ repository.SaleFilter) ([]*entity.Sale, error) {
	return r.created, nil
}

func newUC(repo *fakeSaleRepo, gw *fakeGateway) *RegisterSaleUseCase {
	return NewRegisterSaleUseCase(repo, gw, logger.Nop())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validRequest() dto.RegisterSaleRequest {
	total := dec("350.00")
	return dto.RegisterSaleRequest{
		ClienteNombre: "María López",
		Productos: []dto.SaleItemRequest{
			{ID: "p1", Nombre: "Teclado", Precio: dec("100.00"), Cantidad: 2},
			{ID: "p2", Nombre: "Mouse", Precio: dec("150.00"), Cantidad: 1},
		},
		Total: &total,
		Fecha: "2026-03-10",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_ReservaYPersiste(t *testing.T) {
	repo := &fakeSaleRepo{}
	gw := &fakeGateway{}
	uc := newUC(repo, gw)

	res, err := uc.RegisterSale(context.Background(), "vendedor-1", validRequest())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, OutcomePersisted, res.Outcome)
	require.NotNil(t, res.Venta)
	assert.Equal(t, "vendedor-1", res.Venta.VendedorID)
	assert.Equal(t, "María López", res.Venta.ClienteNombre)
	assert.True(t, res.Venta.Total.Equal(dec("350.00")))

	// Una sola reserva, ninguna restauración.
	require.Len(t, gw.adjustCalls, 1)
	assert.Empty(t, gw.restoreCalls)
	assert.Equal(t, []StockItem{{ProductID: "p1", Cantidad: 2}, {ProductID: "p2", Cantidad: 1}}, gw.adjustCalls[0])

	// La venta persistida conserva las líneas originales.
	require.Len(t, repo.created, 1)
	assert.Len(t, repo.created[0].Items, 2)
	assert.NotEmpty(t, repo.created[0].ID)
}

// Líneas duplicadas del mismo producto: la reserva se agrega (2+3=5) pero la
// venta persistida conserva ambas líneas tal como llegaron.
func TestRegisterSale_AgregaDuplicadosSoloParaInventario(t *testing.T) {
	repo := &fakeSaleRepo{}
	gw := &fakeGateway{}
	uc := newUC(repo, gw)

	total := dec("500.00")
	in := dto.RegisterSaleRequest{
		ClienteNombre: "Cliente X",
		Productos: []dto.SaleItemRequest{
			{ID: "p1", Nombre: "Teclado", Precio: dec("100.00"), Cantidad: 2},
			{ID: "p1", Nombre: "Teclado", Precio: dec("100.00"), Cantidad: 3},
		},
		Total: &total,
	}

	res, err := uc.RegisterSale(context.Background(), "vendedor-1", in)
	require.NoError(t, err)
	assert.Equal(t, OutcomePersisted, res.Outcome)

	require.Len(t, gw.adjustCalls, 1)
	assert.Equal(t, []StockItem{{ProductID: "p1", Cantidad: 5}}, gw.adjustCalls[0],
		"el descuento de stock debe ir agregado por producto")

	require.Len(t, repo.created, 1)
	require.Len(t, repo.created[0].Items, 2, "la venta guarda las líneas sin agregar")
	assert.Equal(t, 2, repo.created[0].Items[0].Cantidad)
	assert.Equal(t, 3, repo.created[0].Items[1].Cantidad)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo en la reserva (fase 1)
// ──────────────────────────────────────────────────────────────────────────────

// Si el inventario rechaza la reserva no se crea venta ni se compensa nada;
// el error de negocio del servicio se propaga con su status y mensaje.
func TestRegisterSale_ReservaRechazada_NoCreaVenta(t *testing.T) {
	repo := &fakeSaleRepo{}
	gw := &fakeGateway{adjustErr: &UpstreamError{StatusCode: 409, Message: "Stock insuficiente para Teclado"}}
	uc := newUC(repo, gw)

	res, err := uc.RegisterSale(context.Background(), "vendedor-1", validRequest())
	require.Error(t, err)
	assert.Nil(t, res)

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, 409, upErr.StatusCode)
	assert.Equal(t, "Stock insuficiente para Teclado", upErr.Message)

	assert.Empty(t, repo.created, "no debe persistirse venta si la reserva falla")
	assert.Empty(t, gw.restoreCalls, "no hay nada que compensar si la reserva falla")
}

func TestRegisterSale_InventarioCaido_PropagaError(t *testing.T) {
	repo := &fakeSaleRepo{}
	gw := &fakeGateway{adjustErr: domain.ErrInventoryDown}
	uc := newUC(repo, gw)

	_, err := uc.RegisterSale(context.Background(), "vendedor-1", validRequest())
	require.ErrorIs(t, err, domain.ErrInventoryDown)
	assert.Empty(t, repo.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo en la persistencia (fase 2) → compensación
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_PersistenciaFalla_RestauraStock(t *testing.T) {
	repo := &fakeSaleRepo{createErr: errors.New("conexión perdida")}
	gw := &fakeGateway{}
	uc := newUC(repo, gw)

	res, err := uc.RegisterSale(context.Background(), "vendedor-1", validRequest())
	require.ErrorIs(t, err, domain.ErrSaleNotSaved)
	require.NotNil(t, res)
	assert.Equal(t, OutcomeRevertedOK, res.Outcome)
	assert.Nil(t, res.Venta)

	// Exactamente UNA restauración, con las mismas cantidades agregadas que la reserva.
	require.Len(t, gw.restoreCalls, 1)
	assert.Equal(t, gw.adjustCalls[0], gw.restoreCalls[0])
}

func TestRegisterSale_PersistenciaYRestauracionFallan_RevertFailed(t *testing.T) {
	repo := &fakeSaleRepo{createErr: errors.New("conexión perdida")}
	gw := &fakeGateway{restoreErr: errors.New("timeout")}
	uc := newUC(repo, gw)

	res, err := uc.RegisterSale(context.Background(), "vendedor-1", validRequest())
	require.ErrorIs(t, err, domain.ErrSaleNotSaved)
	require.NotNil(t, res)
	assert.Equal(t, OutcomeRevertFailed, res.Outcome,
		"restauración fallida debe distinguirse de revertido limpio")

	require.Len(t, gw.restoreCalls, 1, "la compensación se intenta una sola vez")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación: falla rápido, sin tocar el inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_Validacion_NoLlamaInventario(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterSaleRequest)
	}{
		{"sin cliente", func(in *dto.RegisterSaleRequest) { in.ClienteNombre = "   " }},
		{"sin productos", func(in *dto.RegisterSaleRequest) { in.Productos = nil }},
		{"sin total", func(in *dto.RegisterSaleRequest) { in.Total = nil }},
		{"total negativo", func(in *dto.RegisterSaleRequest) {
			neg := dec("-1")
			in.Total = &neg
		}},
		{"cantidad cero", func(in *dto.RegisterSaleRequest) { in.Productos[0].Cantidad = 0 }},
		{"producto sin id", func(in *dto.RegisterSaleRequest) { in.Productos[0].ID = "" }},
		{"fecha inválida", func(in *dto.RegisterSaleRequest) { in.Fecha = "10/03/2026" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeSaleRepo{}
			gw := &fakeGateway{}
			uc := newUC(repo, gw)

			in := validRequest()
			tc.mutate(&in)

			res, err := uc.RegisterSale(context.Background(), "vendedor-1", in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, res)
			assert.Empty(t, gw.adjustCalls, "la validación debe fallar antes de llamar al inventario")
			assert.Empty(t, repo.created)
		})
	}
}

func TestRegisterSale_SinVendedor_Rechaza(t *testing.T) {
	gw := &fakeGateway{}
	uc := newUC(&fakeSaleRepo{}, gw)

	_, err := uc.RegisterSale(context.Background(), "", validRequest())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gw.adjustCalls)
}

// Fecha vacía es válida: se usa la fecha actual.
func TestRegisterSale_FechaVacia_UsaAhora(t *testing.T) {
	repo := &fakeSaleRepo{}
	uc := newUC(repo, &fakeGateway{})

	in := validRequest()
	in.Fecha = ""

	res, err := uc.RegisterSale(context.Background(), "vendedor-1", in)
	require.NoError(t, err)
	assert.Equal(t, OutcomePersisted, res.Outcome)
	require.Len(t, repo.created, 1)
	assert.False(t, repo.created[0].Fecha.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateItems
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateItems_ProductosDistintos(t *testing.T) {
	got := AggregateItems([]dto.SaleItemRequest{
		{ID: "a", Cantidad: 1},
		{ID: "b", Cantidad: 2},
		{ID: "c", Cantidad: 3},
	})
	assert.Equal(t, []StockItem{
		{ProductID: "a", Cantidad: 1},
		{ProductID: "b", Cantidad: 2},
		{ProductID: "c", Cantidad: 3},
	}, got)
}

func TestAggregateItems_FusionaPreservandoOrden(t *testing.T) {
	got := AggregateItems([]dto.SaleItemRequest{
		{ID: "a", Cantidad: 1},
		{ID: "b", Cantidad: 2},
		{ID: "a", Cantidad: 4},
	})
	assert.Equal(t, []StockItem{
		{ProductID: "a", Cantidad: 5},
		{ProductID: "b", Cantidad: 2},
	}, got, "mismo producto se fusiona en la primera posición donde apareció")
}

func TestAggregateItems_Vacio(t *testing.T) {
	assert.Empty(t, AggregateItems(nil))
}

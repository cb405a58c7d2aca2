package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
)

// filterSpy captura el filtro que el caso de uso construye para el repositorio.
type filterSpy struct {
	got   repository.SaleFilter
	sales []*entity.Sale
}

func (s *filterSpy) Create(_ context.Context, _ *entity.Sale) error { return nil }

func (s *filterSpy) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	s.got = f
	return s.sales, nil
}

// Un Vendedor siempre queda acotado a sus propias ventas, pida lo que pida.
func TestListSales_VendedorIgnoraVendedorIdSolicitado(t *testing.T) {
	spy := &filterSpy{}
	uc := NewListSalesUseCase(spy)

	_, err := uc.List(context.Background(), "vendedor-7", entity.RoleVendedor,
		dto.ListSalesQuery{VendedorID: "otro-vendedor"})
	require.NoError(t, err)

	assert.Equal(t, "vendedor-7", spy.got.VendedorID,
		"el vendedorId del query string de un Vendedor debe ignorarse")
}

// Administrador y Consultor pueden filtrar por cualquier vendedor u omitirlo.
func TestListSales_AdminFiltraPorCualquierVendedor(t *testing.T) {
	spy := &filterSpy{}
	uc := NewListSalesUseCase(spy)

	_, err := uc.List(context.Background(), "admin-1", entity.RoleAdministrador,
		dto.ListSalesQuery{VendedorID: "vendedor-7"})
	require.NoError(t, err)
	assert.Equal(t, "vendedor-7", spy.got.VendedorID)

	_, err = uc.List(context.Background(), "consultor-1", entity.RoleConsultor, dto.ListSalesQuery{})
	require.NoError(t, err)
	assert.Empty(t, spy.got.VendedorID, "sin filtro, el Consultor ve todas las ventas")
}

// fechaFin cubre el día completo: 2026-03-10 produce una cota exclusiva 2026-03-11.
func TestListSales_FechaFinCubreDiaCompleto(t *testing.T) {
	spy := &filterSpy{}
	uc := NewListSalesUseCase(spy)

	_, err := uc.List(context.Background(), "admin-1", entity.RoleAdministrador,
		dto.ListSalesQuery{FechaInicio: "2026-03-01", FechaFin: "2026-03-10"})
	require.NoError(t, err)

	require.NotNil(t, spy.got.FechaDesde)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *spy.got.FechaDesde)

	require.NotNil(t, spy.got.FechaHastaExcl)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), *spy.got.FechaHastaExcl,
		"la cota superior debe ser el día siguiente, exclusivo")
}

func TestListSales_FechasInvalidas(t *testing.T) {
	uc := NewListSalesUseCase(&filterSpy{})

	_, err := uc.List(context.Background(), "admin-1", entity.RoleAdministrador,
		dto.ListSalesQuery{FechaInicio: "01-03-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(context.Background(), "admin-1", entity.RoleAdministrador,
		dto.ListSalesQuery{FechaFin: "marzo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListSales_MapeaVentasARespuesta(t *testing.T) {
	fecha := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	spy := &filterSpy{sales: []*entity.Sale{{
		ID:            "venta-1",
		VendedorID:    "vendedor-1",
		ClienteNombre: "Cliente A",
		Items: []entity.SaleItem{
			{ProductID: "p1", Nombre: "Teclado", Precio: decimal.RequireFromString("100"), Cantidad: 2},
		},
		Total: decimal.RequireFromString("200"),
		Fecha: fecha,
	}}}
	uc := NewListSalesUseCase(spy)

	out, err := uc.List(context.Background(), "consultor-1", entity.RoleConsultor,
		dto.ListSalesQuery{Cliente: "cliente"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "venta-1", out[0].ID)
	assert.Equal(t, "Cliente A", out[0].ClienteNombre)
	assert.Equal(t, fecha, out[0].Fecha)
	require.Len(t, out[0].Productos, 1)
	assert.Equal(t, 2, out[0].Productos[0].Cantidad)
	assert.Equal(t, "cliente", spy.got.Cliente)
}

package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
)

// ListSalesUseCase consulta de ventas con alcance por rol:
// un Vendedor solo ve sus propias ventas, sin importar qué vendedorId pida;
// Administrador y Consultor pueden filtrar por cualquier vendedor u omitirlo.
type ListSalesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewListSalesUseCase construye el caso de uso.
func NewListSalesUseCase(saleRepo repository.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// List devuelve las ventas visibles para el llamante, más recientes primero.
// fechaInicio es inclusiva; fechaFin cubre el día completo: se avanza un día
// calendario y se usa como cota superior exclusiva, de modo que una venta del
// mismo día con componente horario no quede truncada.
func (uc *ListSalesUseCase) List(ctx context.Context, callerID, callerRol string, q dto.ListSalesQuery) ([]dto.SaleResponse, error) {
	f := repository.SaleFilter{Cliente: q.Cliente}

	// Alcance por rol: el parámetro vendedorId de un Vendedor se ignora.
	if callerRol == entity.RoleVendedor {
		f.VendedorID = callerID
	} else {
		f.VendedorID = q.VendedorID
	}

	if q.FechaInicio != "" {
		desde, err := time.Parse("2006-01-02", q.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("%w: fechaInicio inválida (%s)", domain.ErrInvalidInput, q.FechaInicio)
		}
		f.FechaDesde = &desde
	}
	if q.FechaFin != "" {
		fin, err := time.Parse("2006-01-02", q.FechaFin)
		if err != nil {
			return nil, fmt.Errorf("%w: fechaFin inválida (%s)", domain.ErrInvalidInput, q.FechaFin)
		}
		hastaExcl := fin.AddDate(0, 0, 1)
		f.FechaHastaExcl = &hastaExcl
	}

	ventas, err := uc.saleRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, *toSaleResponse(v))
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Cabecera en sales, líneas en sale_items; se insertan en una sola
// transacción para que la venta nunca quede a medias.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// Create persiste la venta con sus líneas de forma atómica.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO sales (id, vendedor_id, cliente_nombre, total, fecha, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sale.ID, sale.VendedorID, sale.ClienteNombre, sale.Total, sale.Fecha,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i, item := range sale.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO sale_items (sale_id, position, product_id, nombre, precio, cantidad)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, i, item.ProductID, item.Nombre, item.Precio, item.Cantidad,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve ventas que cumplen el filtro, más recientes primero, con sus
// líneas en el orden en que fueron enviadas.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	query := `
		SELECT id, vendedor_id, cliente_nombre, total, fecha, created_at, updated_at
		FROM sales WHERE 1=1`
	var args []any
	if f.VendedorID != "" {
		args = append(args, f.VendedorID)
		query += fmt.Sprintf(" AND vendedor_id = $%d", len(args))
	}
	if f.FechaDesde != nil {
		args = append(args, *f.FechaDesde)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if f.FechaHastaExcl != nil {
		args = append(args, *f.FechaHastaExcl)
		query += fmt.Sprintf(" AND fecha < $%d", len(args))
	}
	if f.Cliente != "" {
		args = append(args, "%"+f.Cliente+"%")
		query += fmt.Sprintf(" AND cliente_nombre ILIKE $%d", len(args))
	}
	query += " ORDER BY fecha DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	byID := make(map[string]*entity.Sale)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.VendedorID, &s.ClienteNombre, &s.Total, &s.Fecha,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	itemRows, err := r.pool.Query(ctx, `
		SELECT sale_id, product_id, nombre, precio, cantidad
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var saleID string
		var item entity.SaleItem
		if err := itemRows.Scan(&saleID, &item.ProductID, &item.Nombre, &item.Precio, &item.Cantidad); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := byID[saleID]; ok {
			s.Items = append(s.Items, item)
		}
	}
	return sales, itemRows.Err()
}

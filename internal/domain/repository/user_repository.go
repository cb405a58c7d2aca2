package repository

import (
	"context"
	"time"

	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
)

// UserFilter filtros opcionales para listar usuarios.
type UserFilter struct {
	Nombre string // substring, case-insensitive
	RoleID string
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	// SoftDelete marca el usuario como inactivo; no hay borrado físico.
	SoftDelete(ctx context.Context, id string) error
	// CountByRole cuenta usuarios que referencian el rol (integridad al eliminar roles).
	CountByRole(ctx context.Context, roleID string) (int, error)
	// UpdateUltimoAcceso registra la fecha del último login.
	UpdateUltimoAcceso(ctx context.Context, id string, t time.Time) error
}

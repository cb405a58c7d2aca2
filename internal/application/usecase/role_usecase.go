package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
)

// RoleUseCase administración de roles. El conjunto de nombres es cerrado
// (Administrador, Vendedor, Consultor) y la eliminación respeta la
// integridad referencial: un rol con usuarios asignados no se elimina.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roleRepo repository.RoleRepository, userRepo repository.UserRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, userRepo: userRepo}
}

// List devuelve todos los roles.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

// Create crea un rol con nombre único dentro del conjunto cerrado.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if !entity.IsValidRoleName(in.Nombre) {
		return nil, fmt.Errorf("%w: nombre de rol no permitido (%s)", domain.ErrInvalidInput, in.Nombre)
	}
	existing, err := uc.roleRepo.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Permisos:    in.Permisos,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Update modifica descripción, permisos y opcionalmente el nombre de un rol.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	if in.Nombre != "" && in.Nombre != role.Nombre {
		if !entity.IsValidRoleName(in.Nombre) {
			return nil, fmt.Errorf("%w: nombre de rol no permitido (%s)", domain.ErrInvalidInput, in.Nombre)
		}
		other, err := uc.roleRepo.GetByNombre(ctx, in.Nombre)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		role.Nombre = in.Nombre
	}
	role.Descripcion = in.Descripcion
	if in.Permisos != nil {
		role.Permisos = in.Permisos
	}
	role.UpdatedAt = time.Now()
	if err := uc.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete elimina un rol solo si ningún usuario lo referencia.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrRoleNotFound
	}
	count, err := uc.userRepo.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRoleInUse
	}
	return uc.roleRepo.Delete(ctx, id)
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	permisos := r.Permisos
	if permisos == nil {
		permisos = []string{}
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Permisos:    permisos,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

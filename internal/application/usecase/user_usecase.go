package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
)

// UserUseCase administración de usuarios: listado con filtros, alta con
// verificación de rol y unicidad de email, edición y baja lógica.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// List devuelve usuarios filtrados por nombre (substring, sin distinguir
// mayúsculas) y/o rol, con el nombre del rol resuelto.
func (uc *UserUseCase) List(ctx context.Context, nombre, roleID string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx, repository.UserFilter{Nombre: nombre, RoleID: roleID})
	if err != nil {
		return nil, err
	}
	roleNames, err := uc.roleNamesByID(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u, roleNames[u.RoleID]))
	}
	return out, nil
}

// Create da de alta un usuario. El password se hashea con bcrypt antes de
// persistir; el rol referenciado debe existir; el email debe ser único.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role, err := uc.roleRepo.GetByID(ctx, in.Rol)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       in.Rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user, role.Nombre), nil
}

// Update modifica un usuario existente. Campos vacíos se conservan; si viene
// password se rehashea; si viene rol debe existir.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != "" {
		user.Nombre = in.Nombre
	}
	if in.Email != "" && in.Email != user.Email {
		other, err := uc.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = in.Email
	}
	if in.Rol != "" {
		role, err := uc.roleRepo.GetByID(ctx, in.Rol)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrRoleNotFound
		}
		user.RoleID = in.Rol
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	role, err := uc.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := ""
	if role != nil {
		roleName = role.Nombre
	}
	return toUserResponse(user, roleName), nil
}

// Delete da de baja lógica al usuario (activo = false). Las ventas que lo
// referencian como vendedor siguen siendo válidas.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.SoftDelete(ctx, id)
}

func (uc *UserUseCase) roleNamesByID(ctx context.Context) (map[string]string, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(roles))
	for _, r := range roles {
		names[r.ID] = r.Nombre
	}
	return names, nil
}

func toUserResponse(u *entity.User, roleName string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Nombre:       u.Nombre,
		Email:        u.Email,
		Rol:          u.RoleID,
		RolNombre:    roleName,
		Activo:       u.Activo,
		UltimoAcceso: u.UltimoAcceso,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
	"github.com/Hannia06H/ProyectoArq/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login con emisión de JWT.
// El registro de usuarios es administrativo (UserUseCase), no autoservicio.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, resuelve el nombre del rol y emite un JWT
// con claims {userId, rol}. Actualiza el último acceso del usuario.
// Errores: ErrUserNotFound (email desconocido), ErrUnauthorized (password),
// ErrForbidden (cuenta inactiva), ErrUserWithoutRole (rol no resoluble).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Activo {
		return nil, domain.ErrForbidden
	}
	role, err := uc.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrUserWithoutRole
	}

	if err := uc.userRepo.UpdateUltimoAcceso(ctx, user.ID, time.Now()); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role.Nombre, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Rol:    role.Nombre,
		UserID: user.ID,
		Nombre: user.Nombre,
	}, nil
}

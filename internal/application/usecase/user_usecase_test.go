package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
)

func TestUserCreate_HasheaPassword(t *testing.T) {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	roleID := seedRole(roles, "rol-vendedor", entity.RoleVendedor)
	uc := NewUserUseCase(users, roles)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre:   "Ana Torres",
		Email:    "ana@example.com",
		Password: "secreto123",
		Rol:      roleID,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.RoleVendedor, out.RolNombre)
	assert.True(t, out.Activo)

	// El password nunca se guarda en claro.
	stored := users.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	roleID := seedRole(roles, "rol-vendedor", entity.RoleVendedor)
	uc := NewUserUseCase(users, roles)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "secreto123", Rol: roleID,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Otra Ana", Email: "ana@example.com", Password: "otroSecreto", Rol: roleID,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_RolInexistente(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo(), newMemRoleRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "secreto123", Rol: "rol-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestUserUpdate_Parcial(t *testing.T) {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	roleID := seedRole(roles, "rol-vendedor", entity.RoleVendedor)
	uc := NewUserUseCase(users, roles)

	created, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "secreto123", Rol: roleID,
	})
	require.NoError(t, err)
	hashAntes := users.users[created.ID].PasswordHash

	// Solo el nombre cambia; email, rol y password se conservan.
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Nombre: "Ana María"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Nombre)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, hashAntes, users.users[created.ID].PasswordHash)
}

func TestUserUpdate_EmailOcupado(t *testing.T) {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	roleID := seedRole(roles, "rol-vendedor", entity.RoleVendedor)
	uc := NewUserUseCase(users, roles)

	a, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "secreto123", Rol: roleID,
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Benito", Email: "benito@example.com", Password: "secreto123", Rol: roleID,
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), a.ID, dto.UpdateUserRequest{Email: "benito@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_NoExiste(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo(), newMemRoleRepo())

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateUserRequest{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// La baja es lógica: el usuario queda inactivo pero su registro permanece
// para que las ventas que lo referencian sigan siendo consultables.
func TestUserDelete_BajaLogica(t *testing.T) {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	roleID := seedRole(roles, "rol-vendedor", entity.RoleVendedor)
	uc := NewUserUseCase(users, roles)

	created, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "secreto123", Rol: roleID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	stored := users.users[created.ID]
	require.NotNil(t, stored, "el registro no se borra físicamente")
	assert.False(t, stored.Activo)
}

func TestUserDelete_NoExiste(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo(), newMemRoleRepo())
	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrUserNotFound)
}

func TestUserList_FiltraPorNombreYRol(t *testing.T) {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	vendedorID := seedRole(roles, "rol-vendedor", entity.RoleVendedor)
	consultorID := seedRole(roles, "rol-consultor", entity.RoleConsultor)
	uc := NewUserUseCase(users, roles)

	for _, u := range []dto.CreateUserRequest{
		{Nombre: "Ana Torres", Email: "ana@example.com", Password: "secreto123", Rol: vendedorID},
		{Nombre: "Benito Díaz", Email: "benito@example.com", Password: "secreto123", Rol: vendedorID},
		{Nombre: "Anabel Ruiz", Email: "anabel@example.com", Password: "secreto123", Rol: consultorID},
	} {
		_, err := uc.Create(context.Background(), u)
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), "ana", "")
	require.NoError(t, err)
	assert.Len(t, out, 2, "el filtro por nombre es substring sin distinguir mayúsculas")

	out, err = uc.List(context.Background(), "ana", vendedorID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana Torres", out[0].Nombre)
	assert.Equal(t, entity.RoleVendedor, out[0].RolNombre)
}

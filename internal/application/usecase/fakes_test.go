package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if f.Nombre != "" && !strings.Contains(strings.ToLower(u.Nombre), strings.ToLower(f.Nombre)) {
			continue
		}
		if f.RoleID != "" && u.RoleID != f.RoleID {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id string) error {
	if u, ok := r.users[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *memUserRepo) CountByRole(_ context.Context, roleID string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) UpdateUltimoAcceso(_ context.Context, id string, t time.Time) error {
	if u, ok := r.users[id]; ok {
		u.UltimoAcceso = &t
	}
	return nil
}

type memRoleRepo struct {
	roles map[string]*entity.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: map[string]*entity.Role{}}
}

func (r *memRoleRepo) Create(_ context.Context, role *entity.Role) error {
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *memRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *memRoleRepo) GetByNombre(_ context.Context, nombre string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Nombre == nombre {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) Update(_ context.Context, role *entity.Role) error {
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *memRoleRepo) List(_ context.Context) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, role := range r.roles {
		cp := *role
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memRoleRepo) Delete(_ context.Context, id string) error {
	delete(r.roles, id)
	return nil
}

// seedRole crea un rol directo en el repositorio y devuelve su ID.
func seedRole(r *memRoleRepo, id, nombre string) string {
	r.roles[id] = &entity.Role{ID: id, Nombre: nombre}
	return id
}

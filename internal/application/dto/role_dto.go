package dto

import "time"

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Nombre      string   `json:"nombre" validate:"required,oneof=Administrador Vendedor Consultor"`
	Descripcion string   `json:"descripcion"`
	Permisos    []string `json:"permisos"`
}

// UpdateRoleRequest entrada para actualizar descripción y permisos de un rol.
type UpdateRoleRequest struct {
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Permisos    []string `json:"permisos"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Permisos    []string  `json:"permisos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

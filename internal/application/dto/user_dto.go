package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login: token JWT más identidad básica para el cliente.
type LoginResponse struct {
	Token  string `json:"token"`
	Rol    string `json:"rol"`
	UserID string `json:"userId"`
	Nombre string `json:"nombre"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required,uuid"` // ID del rol
}

// UpdateUserRequest entrada para actualizar un usuario; campos vacíos no se tocan.
type UpdateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"` // si viene, se rehashea
	Rol      string `json:"rol"`      // ID del rol; si viene, debe existir
}

// UserResponse salida de un usuario (nunca incluye el password hash).
type UserResponse struct {
	ID           string     `json:"id"`
	Nombre       string     `json:"nombre"`
	Email        string     `json:"email"`
	Rol          string     `json:"rol"`
	RolNombre    string     `json:"rolNombre,omitempty"`
	Activo       bool       `json:"activo"`
	UltimoAcceso *time.Time `json:"ultimoAcceso,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserReportRow fila del reporte tabular de usuarios y accesos.
// La exportación a Excel es asunto del cliente; aquí solo datos.
type UserReportRow struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Rol           string `json:"rol"`
	FechaRegistro string `json:"fechaRegistro"`
	UltimoAcceso  string `json:"ultimoAcceso"`
}

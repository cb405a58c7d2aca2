package entity

import "time"

// Nombres de rol válidos. El conjunto es cerrado: la autorización por ruta
// se decide contra estos tres valores y nada más.
const (
	RoleAdministrador = "Administrador"
	RoleVendedor      = "Vendedor"
	RoleConsultor     = "Consultor"
)

// ValidRoleNames lista los nombres aceptados, en el orden de inicialización.
var ValidRoleNames = []string{RoleAdministrador, RoleVendedor, RoleConsultor}

// IsValidRoleName indica si el nombre pertenece al conjunto cerrado de roles.
func IsValidRoleName(nombre string) bool {
	switch nombre {
	case RoleAdministrador, RoleVendedor, RoleConsultor:
		return true
	}
	return false
}

// Role representa un rol del sistema. Los usuarios lo referencian por ID;
// no puede eliminarse mientras exista al menos un usuario asignado.
type Role struct {
	ID          string
	Nombre      string // único, dentro del conjunto cerrado
	Descripcion string
	Permisos    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

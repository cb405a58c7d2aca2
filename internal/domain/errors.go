package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no registrado")
	ErrRoleNotFound       = errors.New("el rol especificado no existe")
	ErrUserWithoutRole    = errors.New("el usuario no tiene rol asignado")
	ErrRoleInUse          = errors.New("no se puede eliminar el rol porque hay usuarios asignados a él")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSaleNotSaved       = errors.New("la venta no fue guardada y el stock reservado fue revertido")
	ErrInventoryDown      = errors.New("servicio de inventario no disponible")
)

package entity

import "time"

// User representa un usuario del sistema. Referencia a un Role por ID;
// las ventas lo referencian como vendedor pero nunca lo poseen.
// La baja es lógica (Activo = false), nunca se exige borrado físico.
type User struct {
	ID           string
	Nombre       string
	Email        string // único en todo el sistema
	PasswordHash string // bcrypt, nunca texto plano después de persistir
	RoleID       string
	Activo       bool
	UltimoAcceso *time.Time // se actualiza en cada login
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

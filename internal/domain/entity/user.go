package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// Estados de usuario.
const (
	UserActive   = "active"
	UserDisabled = "disabled"
)

// User representa un usuario del sistema. El core de movimientos solo consume
// su identidad (id + nombre + rol) ya autenticada.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	RealName     string
	Phone        string
	Email        string
	Role         string // admin, operador
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

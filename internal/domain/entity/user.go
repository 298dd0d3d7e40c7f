package entity

import "time"

// Roles de operario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User es un operario del kardex.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string // nombre a usar como responsable por defecto
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

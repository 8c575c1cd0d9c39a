package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "Admin"
	RolEmpleado = "Empleado"
)

// Usuario representa una identidad del sistema. Nunca se borra físicamente:
// la baja es lógica (Activo=false) y el registro se conserva.
type Usuario struct {
	ID            int64
	Nombre        string
	Email         string // único entre todos los usuarios, comparación exacta
	PasswordHash  string // bcrypt, nunca en claro después de persistir
	Rol           string // Admin, Empleado
	FechaCreacion time.Time
	Activo        bool
}

// EsAdmin indica si el usuario tiene rol de administrador.
func (u *Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin
}

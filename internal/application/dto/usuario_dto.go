package dto

import "time"

// CrearUsuarioRequest entrada para crear/registrar un usuario (password en claro, se hashea en el use case).
type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol" validate:"omitempty,oneof=Admin Empleado"`
}

// ActualizarUsuarioRequest entrada para actualizar perfil. El rol solo puede
// cambiar si el caller es Admin.
type ActualizarUsuarioRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email,max=150"`
	Rol    string `json:"rol" validate:"required,oneof=Admin Empleado"`
	Activo bool   `json:"activo"`
}

// CambiarPasswordRequest entrada para cambio de contraseña. PasswordActual es
// obligatoria solo para no-admins (lo verifica el use case).
type CambiarPasswordRequest struct {
	PasswordActual string `json:"passwordActual"`
	PasswordNueva  string `json:"passwordNueva" validate:"required,min=6"`
}

// UsuarioResponse salida de un usuario (nunca incluye el hash de password).
type UsuarioResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	Activo        bool      `json:"activo"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login con token JWT y su expiración.
type LoginResponse struct {
	Token      string          `json:"token"`
	Usuario    UsuarioResponse `json:"usuario"`
	Expiration time.Time       `json:"expiration"`
}

package dto

import "time"

// CrearProveedorRequest entrada para crear un proveedor.
type CrearProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=150"`
	Telefono  string `json:"telefono" validate:"max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=150"`
	Direccion string `json:"direccion" validate:"max=250"`
}

// ActualizarProveedorRequest entrada para actualizar. ID opcional en el body;
// si viene, debe coincidir con el de la ruta.
type ActualizarProveedorRequest struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre" validate:"required,max=150"`
	Telefono  string `json:"telefono" validate:"max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=150"`
	Direccion string `json:"direccion" validate:"max=250"`
	Activo    bool   `json:"activo"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	Direccion     string    `json:"direccion"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	Activo        bool      `json:"activo"`
}

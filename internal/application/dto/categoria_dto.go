package dto

import "time"

// CrearCategoriaRequest entrada para crear una categoría.
type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"max=300"`
}

// ActualizarCategoriaRequest entrada para actualizar. ID opcional en el body;
// si viene, debe coincidir con el de la ruta.
type ActualizarCategoriaRequest struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"max=300"`
	Activa      bool   `json:"activa"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	Activa        bool      `json:"activa"`
}

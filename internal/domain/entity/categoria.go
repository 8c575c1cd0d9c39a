package entity

import "time"

// Categoria agrupa productos. Baja lógica con Activa=false; no puede
// eliminarse mientras tenga productos activos asociados.
type Categoria struct {
	ID            int64
	Nombre        string // único entre categorías activas (sin distinguir mayúsculas)
	Descripcion   string
	FechaCreacion time.Time
	Activa        bool
}

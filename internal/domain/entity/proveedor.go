package entity

import "time"

// Proveedor suministra productos. Baja lógica con Activo=false; no puede
// eliminarse mientras tenga productos activos asociados.
type Proveedor struct {
	ID            int64
	Nombre        string
	Telefono      string
	Email         string // único entre proveedores activos (sin distinguir mayúsculas)
	Direccion     string
	FechaCreacion time.Time
	Activo        bool
}

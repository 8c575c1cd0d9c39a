package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto del inventario. Referencia una Categoria y un Proveedor activos;
// Stock se ajusta con movimientos registrados en HistorialStock.
type Producto struct {
	ID               int64
	Nombre           string
	Descripcion      string
	Precio           decimal.Decimal // NUMERIC(10,2)
	Stock            int
	CategoriaID      int64
	ProveedorID      int64
	FechaVencimiento *time.Time
	FechaCreacion    time.Time
	Activo           bool

	// Nombres denormalizados de las relaciones, poblados por el repositorio
	// con JOIN explícito (sin lazy loading).
	CategoriaNombre string
	ProveedorNombre string
}

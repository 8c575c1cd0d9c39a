package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest entrada para crear un producto.
type CrearProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required,max=200"`
	Descripcion      string          `json:"descripcion" validate:"max=500"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock" validate:"min=0"`
	CategoriaID      int64           `json:"categoriaId" validate:"required"`
	ProveedorID      int64           `json:"proveedorId" validate:"required"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento"`
}

// ActualizarProductoRequest entrada para actualizar un producto.
type ActualizarProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required,max=200"`
	Descripcion      string          `json:"descripcion" validate:"max=500"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock" validate:"min=0"`
	CategoriaID      int64           `json:"categoriaId" validate:"required"`
	ProveedorID      int64           `json:"proveedorId" validate:"required"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento"`
	Activo           bool            `json:"activo"`
}

// ProductoResponse salida de un producto con nombres de relaciones poblados.
type ProductoResponse struct {
	ID               int64           `json:"id"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock"`
	CategoriaID      int64           `json:"categoriaId"`
	CategoriaNombre  string          `json:"categoriaNombre"`
	ProveedorID      int64           `json:"proveedorId"`
	ProveedorNombre  string          `json:"proveedorNombre"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento"`
	FechaCreacion    time.Time       `json:"fechaCreacion"`
	Activo           bool            `json:"activo"`
}

// RegistrarMovimientoRequest entrada para registrar un movimiento de stock.
type RegistrarMovimientoRequest struct {
	TipoMovimiento string           `json:"tipoMovimiento" validate:"required,oneof=Entrada Salida"`
	Cantidad       int              `json:"cantidad" validate:"required,min=1"`
	Motivo         string           `json:"motivo" validate:"max=300"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
}

// MovimientoResponse salida de un movimiento del historial de stock.
type MovimientoResponse struct {
	ID             int64            `json:"id"`
	ProductoID     int64            `json:"productoId"`
	UsuarioID      int64            `json:"usuarioId"`
	TipoMovimiento string           `json:"tipoMovimiento"`
	Cantidad       int              `json:"cantidad"`
	Fecha          time.Time        `json:"fecha"`
	Motivo         string           `json:"motivo"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
}

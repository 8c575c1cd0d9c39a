package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Las lecturas devuelven los nombres de categoría y proveedor ya poblados
// (JOIN explícito, sin carga perezosa).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	// GetByID devuelve el registro exista activo o no.
	GetByID(id int64) (*entity.Producto, error)
	// GetForUpdate lee el producto bloqueando la fila hasta el fin de la
	// transacción (SELECT FOR UPDATE). Solo tiene sentido dentro de una tx;
	// no puebla los nombres de las relaciones.
	GetForUpdate(id int64) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	UpdateStock(id int64, stock int) error
	ListActivos() ([]*entity.Producto, error)
	ListByCategoria(categoriaID int64) ([]*entity.Producto, error)
	ListByProveedor(proveedorID int64) ([]*entity.Producto, error)
	// ExistsActivoByCategoria indica si hay productos activos que referencian la categoría.
	ExistsActivoByCategoria(categoriaID int64) (bool, error)
	// ExistsActivoByProveedor indica si hay productos activos que referencian el proveedor.
	ExistsActivoByProveedor(proveedorID int64) (bool, error)
	SoftDelete(id int64) error
}

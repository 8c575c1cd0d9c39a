package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor (DIP).
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id int64) (*entity.Proveedor, error)
	// ExistsByEmail compara en minúsculas y solo contra proveedores activos.
	ExistsByEmail(email string, excludeID int64) (bool, error)
	Update(proveedor *entity.Proveedor) error
	ListActivos() ([]*entity.Proveedor, error)
	SoftDelete(id int64) error
}

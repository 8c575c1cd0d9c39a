package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	// GetByID devuelve el registro exista activo o no; el use case decide
	// cuándo un inactivo cuenta como no encontrado.
	GetByID(id int64) (*entity.Usuario, error)
	// GetByEmail busca por igualdad exacta (sensible a mayúsculas).
	GetByEmail(email string) (*entity.Usuario, error)
	// ExistsByEmail verifica unicidad de email contra TODOS los registros,
	// incluidos los dados de baja. excludeID==0 no excluye a nadie.
	ExistsByEmail(email string, excludeID int64) (bool, error)
	Update(usuario *entity.Usuario) error
	UpdatePassword(id int64, passwordHash string) error
	ListActivos() ([]*entity.Usuario, error)
	CountAdminsActivos() (int64, error)
	SoftDelete(id int64) error
}

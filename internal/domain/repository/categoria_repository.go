package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id int64) (*entity.Categoria, error)
	// ExistsByNombre compara en minúsculas y solo contra categorías activas.
	ExistsByNombre(nombre string, excludeID int64) (bool, error)
	Update(categoria *entity.Categoria) error
	ListActivas() ([]*entity.Categoria, error)
	SoftDelete(id int64) error
}

package usecase

import (
	"time"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// CategoriaUseCase aplica reglas de negocio para categorías.
type CategoriaUseCase struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, productoRepo repository.ProductoRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, productoRepo: productoRepo}
}

// List devuelve las categorías activas ordenadas por nombre.
func (uc *CategoriaUseCase) List() ([]*dto.CategoriaResponse, error) {
	categorias, err := uc.repo.ListActivas()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// GetByID devuelve una categoría activa.
func (uc *CategoriaUseCase) GetByID(id int64) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil || !categoria.Activa {
		return nil, domain.ErrNotFound
	}
	return toCategoriaResponse(categoria), nil
}

// Create crea una categoría. El nombre es único entre activas, sin distinguir mayúsculas.
func (uc *CategoriaUseCase) Create(in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	exists, err := uc.repo.ExistsByNombre(in.Nombre, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrNameAlreadyExists
	}
	categoria := &entity.Categoria{
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		FechaCreacion: time.Now(),
		Activa:        true,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Update actualiza una categoría. Si el body trae ID, debe coincidir con el de la ruta.
func (uc *CategoriaUseCase) Update(id int64, in dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.ID != 0 && in.ID != id {
		return nil, domain.ErrIDMismatch
	}
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	exists, err := uc.repo.ExistsByNombre(in.Nombre, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrNameAlreadyExists
	}
	categoria.Nombre = in.Nombre
	categoria.Descripcion = in.Descripcion
	categoria.Activa = in.Activa
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Delete da de baja lógica una categoría, bloqueado mientras existan productos
// activos que la referencien.
func (uc *CategoriaUseCase) Delete(id int64) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	tieneProductos, err := uc.productoRepo.ExistsActivoByCategoria(id)
	if err != nil {
		return err
	}
	if tieneProductos {
		return domain.ErrHasProducts
	}
	return uc.repo.SoftDelete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		FechaCreacion: c.FechaCreacion,
		Activa:        c.Activa,
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

const categoriaCols = `id, nombre, descripcion, fecha_creacion, activa`

// Create persiste una nueva categoría y asigna el ID generado.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (nombre, descripcion, fecha_creacion, activa)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		categoria.Nombre, categoria.Descripcion, categoria.FechaCreacion, categoria.Activa,
	).Scan(&categoria.ID)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID, activa o no.
func (r *CategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Descripcion, &c.FechaCreacion, &c.Activa,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria by id: %w", err)
	}
	return &c, nil
}

// ExistsByNombre verifica unicidad de nombre en minúsculas, solo entre activas.
func (r *CategoriaRepo) ExistsByNombre(nombre string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categorias WHERE LOWER(nombre) = LOWER($1) AND id <> $2 AND activa)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, nombre, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists categoria by nombre: %w", err)
	}
	return exists, nil
}

// Update actualiza nombre, descripción y estado.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	query := `
		UPDATE categorias SET nombre = $2, descripcion = $3, activa = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nombre, categoria.Descripcion, categoria.Activa,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// ListActivas lista categorías activas ordenadas por nombre.
func (r *CategoriaRepo) ListActivas() ([]*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE activa ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.FechaCreacion, &c.Activa); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SoftDelete marca la categoría como inactiva; el registro se conserva.
func (r *CategoriaRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(), `UPDATE categorias SET activa = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete categoria: %w", err)
	}
	return nil
}

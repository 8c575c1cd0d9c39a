package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, nombre, email, password_hash, rol, fecha_creacion, activo`

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, email, password_hash, rol, fecha_creacion, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		usuario.Nombre, usuario.Email, usuario.PasswordHash, usuario.Rol,
		usuario.FechaCreacion, usuario.Activo,
	).Scan(&usuario.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, activo o no.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario by id")
}

// GetByEmail obtiene un usuario por email (igualdad exacta, activo o no).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get usuario by email")
}

// ExistsByEmail verifica unicidad de email contra todos los registros,
// incluidos los dados de baja.
func (r *UsuarioRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM usuarios WHERE email = $1 AND id <> $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists usuario by email: %w", err)
	}
	return exists, nil
}

// Update actualiza nombre, email, rol y estado.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, email = $3, rol = $4, activo = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nombre, usuario.Email, usuario.Rol, usuario.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza solo el hash de la contraseña.
func (r *UsuarioRepo) UpdatePassword(id int64, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ListActivos lista usuarios activos ordenados por nombre.
func (r *UsuarioRepo) ListActivos() ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE activo ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.FechaCreacion, &u.Activo); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountAdminsActivos cuenta los administradores activos del sistema.
func (r *UsuarioRepo) CountAdminsActivos() (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM usuarios WHERE rol = $1 AND activo`, entity.RolAdmin).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

// SoftDelete marca el usuario como inactivo; el registro se conserva.
func (r *UsuarioRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(), `UPDATE usuarios SET activo = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.FechaCreacion, &u.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

package usecase

import (
	"time"

	"github.com/jhoicas/supermercado-api/internal/application/auth"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/authz"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	"github.com/jhoicas/supermercado-api/pkg/password"
)

// UsuarioUseCase aplica las reglas de negocio y de acceso para usuarios.
// Las reglas por-target (propio perfil vs admin, cambio de rol, último admin)
// viven aquí; el gate de rol por endpoint (lista, crear, eliminar = solo Admin)
// lo aplica el middleware RequireRol antes de llegar.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List devuelve los usuarios activos ordenados por nombre (solo Admin, gate en router).
func (uc *UsuarioUseCase) List() ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, auth.ToUsuarioResponse(u))
	}
	return out, nil
}

// GetByID devuelve un usuario activo. Solo el propio usuario o un Admin pueden verlo.
func (uc *UsuarioUseCase) GetByID(caller authz.Caller, id int64) (*dto.UsuarioResponse, error) {
	if !authz.PuedeAccederUsuario(caller, id) {
		return nil, domain.ErrForbidden
	}
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUsuarioResponse(usuario), nil
}

// Create crea un usuario (solo Admin, gate en router). Misma regla de unicidad
// de email que el registro público: exacta y contra todos los registros.
func (uc *UsuarioUseCase) Create(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	exists, err := uc.repo.ExistsByEmail(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolEmpleado
	}
	usuario := &entity.Usuario{
		Nombre:        in.Nombre,
		Email:         in.Email,
		PasswordHash:  hash,
		Rol:           rol,
		FechaCreacion: time.Now(),
		Activo:        true,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(usuario), nil
}

// Update actualiza nombre, email, rol y estado de un usuario. Reglas en orden:
// acceso propio-o-admin (403), unicidad de email excluyéndose a sí mismo (400),
// cambio de rol solo para Admin (400, distinto del forbidden: el resto de la
// actualización podría ser legal).
func (uc *UsuarioUseCase) Update(caller authz.Caller, id int64, in dto.ActualizarUsuarioRequest) error {
	if !authz.PuedeAccederUsuario(caller, id) {
		return domain.ErrForbidden
	}
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	exists, err := uc.repo.ExistsByEmail(in.Email, id)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmailAlreadyExists
	}
	if !authz.PuedeCambiarRol(caller, usuario.Rol, in.Rol) {
		return domain.ErrRoleChange
	}
	usuario.Nombre = in.Nombre
	usuario.Email = in.Email
	usuario.Rol = in.Rol
	usuario.Activo = in.Activo
	return uc.repo.Update(usuario)
}

// Delete da de baja lógica a un usuario (solo Admin, gate en router).
// El último admin activo del sistema no puede eliminarse.
func (uc *UsuarioUseCase) Delete(id int64) error {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	if usuario.EsAdmin() {
		admins, err := uc.repo.CountAdminsActivos()
		if err != nil {
			return err
		}
		if !authz.EliminarAdminPermitido(admins) {
			return domain.ErrLastAdmin
		}
	}
	return uc.repo.SoftDelete(id)
}

// CambiarPassword cambia la contraseña de un usuario. Propio-o-admin; los
// no-admin deben acreditar la contraseña actual.
func (uc *UsuarioUseCase) CambiarPassword(caller authz.Caller, id int64, in dto.CambiarPasswordRequest) error {
	if !authz.PuedeAccederUsuario(caller, id) {
		return domain.ErrForbidden
	}
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	if !caller.EsAdmin() {
		if !password.Verify(in.PasswordActual, usuario.PasswordHash) {
			return domain.ErrWrongPassword
		}
	}
	hash, err := password.Hash(in.PasswordNueva)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(id, hash)
}

package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/authz"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/pkg/password"
)

func seedUsuario(id int64, nombre, email, rol string, activo bool) *entity.Usuario {
	hash, _ := password.Hash("secreto123")
	return &entity.Usuario{
		ID:            id,
		Nombre:        nombre,
		Email:         email,
		PasswordHash:  hash,
		Rol:           rol,
		FechaCreacion: time.Now(),
		Activo:        activo,
	}
}

func TestUsuarioGetByID_PropioPerfil(t *testing.T) {
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true))
	uc := usecase.NewUsuarioUseCase(repo)

	resp, err := uc.GetByID(authz.Caller{ID: 1, Rol: entity.RolEmpleado}, 1)
	require.NoError(t, err)
	assert.Equal(t, "ana@test.com", resp.Email)
}

func TestUsuarioGetByID_PerfilAjeno_Forbidden(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolEmpleado, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.GetByID(authz.Caller{ID: 1, Rol: entity.RolEmpleado}, 2)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUsuarioGetByID_AdminVeCualquierPerfil(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolAdmin, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolEmpleado, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	resp, err := uc.GetByID(authz.Caller{ID: 1, Rol: entity.RolAdmin}, 2)
	require.NoError(t, err)
	assert.Equal(t, "luis@test.com", resp.Email)
}

func TestUsuarioGetByID_InactivoEsNoEncontrado(t *testing.T) {
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolAdmin, false))
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.GetByID(authz.Caller{ID: 1, Rol: entity.RolAdmin}, 1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUsuarioCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true))
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Create(dto.CrearUsuarioRequest{
		Nombre:   "Otra Ana",
		Email:    "ana@test.com",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUsuarioCreate_EmailDeInactivoTambienBloquea(t *testing.T) {
	// Los registros nunca se eliminan físicamente; un email dado de baja
	// sigue ocupado.
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, false))
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Create(dto.CrearUsuarioRequest{
		Nombre:   "Ana Nueva",
		Email:    "ana@test.com",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUsuarioCreate_RolPorDefectoEmpleado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	resp, err := uc.Create(dto.CrearUsuarioRequest{
		Nombre:   "Ana",
		Email:    "ana@test.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolEmpleado, resp.Rol)
	assert.True(t, resp.Activo)
}

func TestUsuarioUpdate_EmpleadoNoPuedeCambiarSuRol(t *testing.T) {
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true))
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Update(authz.Caller{ID: 1, Rol: entity.RolEmpleado}, 1, dto.ActualizarUsuarioRequest{
		Nombre: "Ana",
		Email:  "ana@test.com",
		Rol:    entity.RolAdmin,
		Activo: true,
	})
	assert.ErrorIs(t, err, domain.ErrRoleChange)
}

func TestUsuarioUpdate_AdminPuedeCambiarRol(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolAdmin, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolEmpleado, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Update(authz.Caller{ID: 1, Rol: entity.RolAdmin}, 2, dto.ActualizarUsuarioRequest{
		Nombre: "Luis",
		Email:  "luis@test.com",
		Rol:    entity.RolAdmin,
		Activo: true,
	})
	require.NoError(t, err)

	actualizado, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, entity.RolAdmin, actualizado.Rol)
}

func TestUsuarioUpdate_EmailOcupadoPorOtro(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolEmpleado, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Update(authz.Caller{ID: 1, Rol: entity.RolEmpleado}, 1, dto.ActualizarUsuarioRequest{
		Nombre: "Ana",
		Email:  "luis@test.com",
		Rol:    entity.RolEmpleado,
		Activo: true,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUsuarioUpdate_MantenerPropioEmailEsValido(t *testing.T) {
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true))
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Update(authz.Caller{ID: 1, Rol: entity.RolEmpleado}, 1, dto.ActualizarUsuarioRequest{
		Nombre: "Ana María",
		Email:  "ana@test.com",
		Rol:    entity.RolEmpleado,
		Activo: true,
	})
	assert.NoError(t, err)
}

func TestUsuarioDelete_UltimoAdminBloqueado(t *testing.T) {
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolAdmin, true))
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Delete(1)
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
}

func TestUsuarioDelete_AdminConOtroAdminActivo(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolAdmin, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolAdmin, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	require.NoError(t, uc.Delete(1))

	eliminado, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.False(t, eliminado.Activo, "la baja es lógica, el registro se conserva")
}

func TestUsuarioDelete_EmpleadoSinRestriccion(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolAdmin, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolEmpleado, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	assert.NoError(t, uc.Delete(2))
}

func TestCambiarPassword_EmpleadoDebeAcreditarLaActual(t *testing.T) {
	repo := newFakeUsuarioRepo(seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true))
	uc := usecase.NewUsuarioUseCase(repo)
	caller := authz.Caller{ID: 1, Rol: entity.RolEmpleado}

	err := uc.CambiarPassword(caller, 1, dto.CambiarPasswordRequest{
		PasswordActual: "incorrecta",
		PasswordNueva:  "nueva-clave",
	})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	err = uc.CambiarPassword(caller, 1, dto.CambiarPasswordRequest{
		PasswordActual: "secreto123",
		PasswordNueva:  "nueva-clave",
	})
	require.NoError(t, err)

	actualizado, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.True(t, password.Verify("nueva-clave", actualizado.PasswordHash))
}

func TestCambiarPassword_AdminNoNecesitaLaActual(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolAdmin, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolEmpleado, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.CambiarPassword(authz.Caller{ID: 1, Rol: entity.RolAdmin}, 2, dto.CambiarPasswordRequest{
		PasswordNueva: "reseteada",
	})
	require.NoError(t, err)

	actualizado, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.True(t, password.Verify("reseteada", actualizado.PasswordHash))
}

func TestCambiarPassword_PerfilAjeno_Forbidden(t *testing.T) {
	repo := newFakeUsuarioRepo(
		seedUsuario(1, "Ana", "ana@test.com", entity.RolEmpleado, true),
		seedUsuario(2, "Luis", "luis@test.com", entity.RolEmpleado, true),
	)
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.CambiarPassword(authz.Caller{ID: 1, Rol: entity.RolEmpleado}, 2, dto.CambiarPasswordRequest{
		PasswordActual: "secreto123",
		PasswordNueva:  "nueva-clave",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/supermercado-api/internal/domain/authz"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

func TestPuedeAccederUsuario(t *testing.T) {
	admin := authz.Caller{ID: 1, Rol: entity.RolAdmin}
	empleado := authz.Caller{ID: 2, Rol: entity.RolEmpleado}
	anonimo := authz.Caller{}

	assert.True(t, authz.PuedeAccederUsuario(admin, 999), "un Admin accede a cualquier perfil")
	assert.True(t, authz.PuedeAccederUsuario(empleado, 2), "un empleado accede a su propio perfil")
	assert.False(t, authz.PuedeAccederUsuario(empleado, 3), "un empleado no accede a perfiles ajenos")
	assert.False(t, authz.PuedeAccederUsuario(anonimo, 1), "sin identidad no hay acceso")
}

func TestPuedeCambiarRol(t *testing.T) {
	admin := authz.Caller{ID: 1, Rol: entity.RolAdmin}
	empleado := authz.Caller{ID: 2, Rol: entity.RolEmpleado}

	assert.True(t, authz.PuedeCambiarRol(admin, entity.RolEmpleado, entity.RolAdmin))
	assert.True(t, authz.PuedeCambiarRol(empleado, entity.RolEmpleado, entity.RolEmpleado),
		"dejar el rol igual siempre es legal")
	assert.False(t, authz.PuedeCambiarRol(empleado, entity.RolEmpleado, entity.RolAdmin),
		"un empleado no puede auto-promoverse")
}

func TestEliminarAdminPermitido(t *testing.T) {
	assert.False(t, authz.EliminarAdminPermitido(1), "el último Admin activo no puede eliminarse")
	assert.False(t, authz.EliminarAdminPermitido(0))
	assert.True(t, authz.EliminarAdminPermitido(2))
}

func TestCaller_EsAdmin(t *testing.T) {
	assert.True(t, authz.Caller{ID: 1, Rol: entity.RolAdmin}.EsAdmin())
	assert.False(t, authz.Caller{ID: 1, Rol: entity.RolEmpleado}.EsAdmin())
	assert.False(t, authz.Caller{ID: 1, Rol: "admin"}.EsAdmin(), "el rol distingue mayúsculas")
}

package authz

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// Caller es la identidad autenticada extraída del token (id + rol).
// Un Caller vacío (ID==0) representa una petición anónima.
type Caller struct {
	ID  int64
	Rol string
}

// Autenticado indica si hay una identidad presente.
func (c Caller) Autenticado() bool {
	return c.ID != 0
}

// EsAdmin indica si el caller tiene rol de administrador.
func (c Caller) EsAdmin() bool {
	return c.Rol == entity.RolAdmin
}

// PuedeAccederUsuario decide si el caller puede leer/actualizar el perfil o
// cambiar la contraseña del usuario targetID: es su propio perfil o es Admin.
func PuedeAccederUsuario(c Caller, targetID int64) bool {
	if !c.Autenticado() {
		return false
	}
	return c.EsAdmin() || c.ID == targetID
}

// PuedeCambiarRol decide si, dentro de una actualización, el cambio de rol es
// legal: los no-admin solo pueden dejar el rol tal como está. Esta regla asume
// que PuedeAccederUsuario ya pasó; su violación es un 400, no un 403, porque
// el resto de la actualización puede ser válida.
func PuedeCambiarRol(c Caller, rolActual, rolSolicitado string) bool {
	if c.EsAdmin() {
		return true
	}
	return rolActual == rolSolicitado
}

// EliminarAdminPermitido decide si un usuario Admin puede darse de baja:
// siempre debe quedar al menos un Admin activo en el sistema.
func EliminarAdminPermitido(adminsActivos int64) bool {
	return adminsActivos > 1
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen al status code correspondiente; los use cases nunca devuelven
// representaciones internas crudas.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrNameAlreadyExists  = errors.New("ya existe un recurso con ese nombre")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrRoleChange         = errors.New("no tienes permisos para cambiar el rol")
	ErrLastAdmin          = errors.New("no se puede eliminar el último administrador del sistema")
	ErrWrongPassword      = errors.New("la contraseña actual es incorrecta")
	ErrHasProducts        = errors.New("tiene productos asociados")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrIDMismatch         = errors.New("el ID no coincide")
)

package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Detail y StackTrace solo se pueblan en modo development para errores 500.
	Detail     string            `json:"detail,omitempty"`
	StackTrace string            `json:"stackTrace,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"` // errores de validación por campo
}

// MensajeResponse respuesta simple con mensaje de confirmación.
type MensajeResponse struct {
	Message string `json:"message"`
}

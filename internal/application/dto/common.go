package dto

// ErrorResponse cuerpo de error HTTP estable: toda ruta que falla responde esta forma.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje (operaciones sin cuerpo propio).
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

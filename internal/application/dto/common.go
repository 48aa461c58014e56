package dto

// ErrorResponse cuerpo de error HTTP para fallos de transporte (cuerpo o id inválidos,
// exportaciones). Los fallos de servicio viajan en las formas {data, error} y
// {success, error}.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

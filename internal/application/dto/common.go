package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageResponse metadatos de paginación en listados.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

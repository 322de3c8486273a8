package dto

import "github.com/jhoicas/agro-inventario-api/pkg/validator"

// PaginationResponse metadatos de página en respuestas.
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ErrorResponse cuerpo de error HTTP. Details solo para errores de esquema.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Error   string                 `json:"error"`
	Details []validator.FieldError `json:"details,omitempty"`
}

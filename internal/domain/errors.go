package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrEntryNotFound  = errors.New("entrada de stock no encontrada")
	ErrStockBelowZero = errors.New("el stock no puede quedar por debajo de cero")
	ErrDuplicate      = errors.New("recurso duplicado")
)

// Mensajes expuestos al cliente para los errores de validación del ledger.
const (
	MsgInvalidReferences = "Invalid product, branch, or supplier ID"
	MsgInvalidPagination = "Invalid pagination parameters"
	MsgBranchRequired    = "branchId or branchInput is required"
	MsgBranchAmbiguous   = "branchId and branchInput are mutually exclusive"
)

// ValidationError error de validación con mensaje legible. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Message string
}

// NewValidationError construye un ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite comparar contra ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

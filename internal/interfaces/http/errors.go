package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agro-inventario-api/internal/application/dto"
	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
	"github.com/jhoicas/agro-inventario-api/pkg/validator"
)

// Códigos de error expuestos en ErrorResponse.Code.
const (
	CodeInvalidBody    = "INVALID_BODY"
	CodeValidation     = "VALIDATION"
	CodeNotFound       = "NOT_FOUND"
	CodeStockBelowZero = "STOCK_BELOW_ZERO"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL"
)

// Mensajes de error fijos.
const (
	MsgEntryNotFound     = "Stock entry not found"
	MsgStockBelowZero    = "Cannot reduce stock below zero"
	MsgConflict          = "Concurrent update conflict, retry the request"
	MsgInternal          = "Internal server error"
	MsgInvalidBody       = "Invalid request body"
	MsgValidationFailed  = "Validation failed"
	MsgInvalidEntryID    = "Invalid entry ID"
	MsgInvalidEntryDate  = "entryDate must be an ISO 8601 datetime"
	MsgInvalidBranchForm = "branchInput requires exactly one of create or connect"
)

// writeError clasifica err en un código HTTP y escribe el cuerpo. Solo los errores
// no clasificados se registran: el resto son respuestas esperadas.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Error: verr.Message})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Error: err.Error()})
	case errors.Is(err, domain.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Error: MsgEntryNotFound})
	case errors.Is(err, domain.ErrStockBelowZero):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeStockBelowZero, Error: MsgStockBelowZero})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeConflict, Error: MsgConflict})
	}
	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Error: MsgInternal})
}

func writeSchemaErrors(c *fiber.Ctx, details []validator.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    CodeValidation,
		Error:   MsgValidationFailed,
		Details: details,
	})
}

func writeBadRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Error: msg})
}

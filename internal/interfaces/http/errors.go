package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
)

// respondError mapea errores de dominio a respuestas HTTP. Los errores
// estructurados (InsufficientStockError, PartialFulfillmentError) se
// resuelven vía errors.Is gracias a sus Unwrap.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrNotAuthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no autorizado para esta operación"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol inválido para el tipo de ubicación"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "operación inválida para el estado actual"})
	case errors.Is(err, domain.ErrUnknownLocationKind):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_LOCATION_KIND", Message: "tipo de ubicación desconocido"})
	case errors.Is(err, domain.ErrPartialFulfillment):
		// La venta confirmó; solo falló la entrega. 409 con código propio para
		// que el operador distinga este caso de un rechazo normal.
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PARTIAL_FULFILLMENT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

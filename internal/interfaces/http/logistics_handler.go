package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/logistics"
)

// LogisticsHandler maneja traslados, órdenes mayoristas y reposición (protegido).
type LogisticsHandler struct {
	svc *logistics.Service
}

// NewLogisticsHandler construye el handler.
func NewLogisticsHandler(svc *logistics.Service) *LogisticsHandler {
	return &LogisticsHandler{svc: svc}
}

// Transfer ejecuta un traslado interno de stock.
// POST /api/logistics/transfers
func (h *LogisticsHandler) Transfer(c *fiber.Ctx) error {
	employeeID := GetUserID(c)
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.svc.Transfer(c.Context(), employeeID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTransfers lista los traslados que tocan una ubicación.
// GET /api/logistics/transfers?location_id=...
func (h *LogisticsHandler) ListTransfers(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.svc.ListTransfers(c.Context(), locationID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Wholesale procesa una orden mayorista a un socio.
// POST /api/logistics/wholesale
func (h *LogisticsHandler) Wholesale(c *fiber.Ctx) error {
	employeeID := GetUserID(c)
	var in dto.WholesaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.svc.Wholesale(c.Context(), employeeID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Replenish enruta una reposición según el tipo del destino.
// POST /api/logistics/replenish
func (h *LogisticsHandler) Replenish(c *fiber.Ctx) error {
	employeeID := GetUserID(c)
	var in dto.ReplenishRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.svc.Replenish(c.Context(), employeeID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// PendingReconciliations lista las notas de conciliación sin resolver.
// GET /api/logistics/reconciliations
func (h *LogisticsHandler) PendingReconciliations(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	notes, err := h.svc.PendingReconciliations(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notes)
}

// ResolveReconciliation marca una nota como resuelta.
// POST /api/logistics/reconciliations/:id/resolve
func (h *LogisticsHandler) ResolveReconciliation(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.svc.ResolveReconciliation(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

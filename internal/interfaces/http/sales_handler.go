package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP de ventas (protegido).
type SalesHandler struct {
	engine   *sales.Engine
	receipts *sales.ReceiptUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(engine *sales.Engine, receipts *sales.ReceiptUseCase) *SalesHandler {
	return &SalesHandler{engine: engine, receipts: receipts}
}

// Create crea una venta y descuenta stock.
// POST /api/sales
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	employeeID := GetUserID(c)
	if employeeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.engine.Sell(c.Context(), employeeID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// GetByID obtiene una transacción con sus líneas.
// GET /api/sales/:id
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	tx, err := h.engine.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tx)
}

// Cancel cancela una transacción completa (requiere override de supervisor).
// POST /api/sales/:id/cancel
func (h *SalesHandler) Cancel(c *fiber.Ctx) error {
	supervisorID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	tx, err := h.engine.Cancel(c.Context(), id, supervisorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tx)
}

// VoidLine anula una cantidad de una línea (requiere override de supervisor).
// POST /api/sales/:id/void
func (h *SalesHandler) VoidLine(c *fiber.Ctx) error {
	supervisorID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.VoidLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.engine.VoidLine(c.Context(), id, supervisorID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tx)
}

// Receipt genera el recibo en PDF de una transacción.
// GET /api/sales/:id/receipt
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, err := h.receipts.Generate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/reports"
)

// ReportsHandler expone los accesores de solo lectura para analítica (protegido).
type ReportsHandler struct {
	uc *reports.UseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Daily arma el reporte del día de una ubicación.
// GET /api/reports/daily?location_id=...
func (h *ReportsHandler) Daily(c *fiber.Ctx) error {
	report, err := h.uc.DailyReport(c.Context(), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// SalesOverTime devuelve la serie diaria de ventas del rango.
// GET /api/reports/sales?location_id=...&from=2026-08-01&to=2026-08-28
func (h *ReportsHandler) SalesOverTime(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (YYYY-MM-DD)"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (YYYY-MM-DD)"})
	}
	series, err := h.uc.SalesOverTime(c.Context(), c.Query("location_id"), from, to.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(series)
}

// TopProducts devuelve los productos más vendidos de la ubicación.
// GET /api/reports/top-products?location_id=...&limit=5
func (h *ReportsHandler) TopProducts(c *fiber.Ctx) error {
	list, err := h.uc.TopProducts(c.Context(), c.Query("location_id"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// RevenueByLocation devuelve el ingreso acumulado por ubicación.
// GET /api/reports/revenue-by-location
func (h *ReportsHandler) RevenueByLocation(c *fiber.Ctx) error {
	list, err := h.uc.RevenueByLocation(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Inventory devuelve el inventario completo de una ubicación.
// GET /api/reports/inventory?location_id=...
func (h *ReportsHandler) Inventory(c *fiber.Ctx) error {
	list, err := h.uc.InventoryByLocation(c.Context(), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Stock devuelve el nivel de stock de (ubicación, producto).
// GET /api/reports/stock?location_id=...&product_id=...
func (h *ReportsHandler) Stock(c *fiber.Ctx) error {
	stock, err := h.uc.CurrentStock(c.Context(), c.Query("location_id"), c.Query("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"location_id":   stock.LocationID,
		"product_id":    stock.ProductID,
		"current_stock": stock.CurrentStock,
		"reorder_point": stock.ReorderPoint,
	})
}

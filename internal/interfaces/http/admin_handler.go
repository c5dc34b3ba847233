package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/axlmendieta/POS-APEX/internal/application/admin"
	"github.com/axlmendieta/POS-APEX/internal/application/dto"
)

// AdminHandler maneja la provisión de ubicaciones, empleados y catálogo (protegido).
type AdminHandler struct {
	uc *admin.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *admin.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// CreateLocation registra una tienda o socio.
// POST /api/admin/locations
func (h *AdminHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.RegisterLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	location, err := h.uc.RegisterLocation(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// GetLocation obtiene una ubicación por ID.
// GET /api/admin/locations/:id
func (h *AdminHandler) GetLocation(c *fiber.Ctx) error {
	location, err := h.uc.GetLocation(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(location)
}

// ListLocations lista ubicaciones paginadas.
// GET /api/admin/locations
func (h *AdminHandler) ListLocations(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListLocations(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateEmployee provisiona un empleado según la matriz de autorización.
// POST /api/admin/employees
func (h *AdminHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.CreateEmployee(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// ListEmployees lista los empleados de una ubicación.
// GET /api/admin/employees?location_id=...
func (h *AdminHandler) ListEmployees(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListEmployees(locationID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateProduct da de alta un producto en el catálogo.
// POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.CreateProduct(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetProduct obtiene un producto por ID.
// GET /api/admin/products/:id
func (h *AdminHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// GetProductByBarcode resuelve un producto escaneado en caja.
// GET /api/admin/products/barcode/:code
func (h *AdminHandler) GetProductByBarcode(c *fiber.Ctx) error {
	product, err := h.uc.GetProductByBarcode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// ListProducts lista el catálogo paginado.
// GET /api/admin/products
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListProducts(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UpdateProduct actualiza un producto.
// PUT /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.UpdateProduct(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct elimina un producto del catálogo.
// DELETE /api/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategory da de alta una categoría.
// POST /api/admin/categories
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.CreateCategory(GetUserID(c), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": category.ID, "name": category.Name})
}

// ListCategories lista las categorías.
// GET /api/admin/categories
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.uc.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(categories))
	for _, cat := range categories {
		out = append(out, fiber.Map{"id": cat.ID, "name": cat.Name})
	}
	return c.JSON(out)
}

// CreateCustomer da de alta un cliente del programa de lealtad.
// POST /api/admin/customers
func (h *AdminHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.CreateCustomer(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetCustomer obtiene un cliente por ID.
// GET /api/admin/customers/:id
func (h *AdminHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.uc.GetCustomer(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/axlmendieta/POS-APEX/internal/application/admin"
	"github.com/axlmendieta/POS-APEX/internal/application/auth"
	"github.com/axlmendieta/POS-APEX/internal/application/logistics"
	"github.com/axlmendieta/POS-APEX/internal/application/reports"
	"github.com/axlmendieta/POS-APEX/internal/application/sales"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	AdminUC     *admin.UseCase
	SalesEngine *sales.Engine
	ReceiptUC   *sales.ReceiptUseCase
	LogisticsUC *logistics.Service
	ReportsUC   *reports.UseCase
	JWTSecret   string
	MetricsPath string // vacío = métricas deshabilitadas
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.MetricsPath != "" {
		app.Get(deps.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ventas (protegido). El motor aplica la autorización fina por ubicación.
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesEngine, deps.ReceiptUC)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Get("/:id/receipt", salesHandler.Receipt)
	salesGroup.Post("/:id/cancel", salesHandler.Cancel)
	salesGroup.Post("/:id/void", salesHandler.VoidLine)

	// Logística (protegido, solo roles de bodega y super_admin)
	logisticsGroup := protected.Group("/logistics", RequireRole(
		entity.RoleSuperAdmin, entity.RoleLogisticsManager, entity.RoleKAM,
	))
	logisticsHandler := NewLogisticsHandler(deps.LogisticsUC)
	logisticsGroup.Post("/transfers", logisticsHandler.Transfer)
	logisticsGroup.Get("/transfers", logisticsHandler.ListTransfers)
	logisticsGroup.Post("/wholesale", logisticsHandler.Wholesale)
	logisticsGroup.Post("/replenish", logisticsHandler.Replenish)
	logisticsGroup.Get("/reconciliations", logisticsHandler.PendingReconciliations)
	logisticsGroup.Post("/reconciliations/:id/resolve", logisticsHandler.ResolveReconciliation)

	// Administración (protegido). La matriz de autorización decide por
	// operación: los managers solo pueden provisionar cajeros propios.
	adminGroup := protected.Group("/admin")
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup.Post("/locations", adminHandler.CreateLocation)
	adminGroup.Get("/locations", adminHandler.ListLocations)
	adminGroup.Get("/locations/:id", adminHandler.GetLocation)
	adminGroup.Post("/employees", adminHandler.CreateEmployee)
	adminGroup.Get("/employees", adminHandler.ListEmployees)
	adminGroup.Post("/products", adminHandler.CreateProduct)
	adminGroup.Get("/products", adminHandler.ListProducts)
	adminGroup.Get("/products/barcode/:code", adminHandler.GetProductByBarcode)
	adminGroup.Get("/products/:id", adminHandler.GetProduct)
	adminGroup.Put("/products/:id", adminHandler.UpdateProduct)
	adminGroup.Delete("/products/:id", adminHandler.DeleteProduct)
	adminGroup.Post("/categories", adminHandler.CreateCategory)
	adminGroup.Get("/categories", adminHandler.ListCategories)
	adminGroup.Post("/customers", adminHandler.CreateCustomer)
	adminGroup.Get("/customers/:id", adminHandler.GetCustomer)

	// Reportes (protegido, solo lectura)
	reportsGroup := protected.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reportsGroup.Get("/daily", reportsHandler.Daily)
	reportsGroup.Get("/sales", reportsHandler.SalesOverTime)
	reportsGroup.Get("/top-products", reportsHandler.TopProducts)
	reportsGroup.Get("/revenue-by-location", reportsHandler.RevenueByLocation)
	reportsGroup.Get("/inventory", reportsHandler.Inventory)
	reportsGroup.Get("/stock", reportsHandler.Stock)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/axlmendieta/POS-APEX/internal/application/admin"
	"github.com/axlmendieta/POS-APEX/internal/application/auth"
	"github.com/axlmendieta/POS-APEX/internal/application/logistics"
	"github.com/axlmendieta/POS-APEX/internal/application/reports"
	"github.com/axlmendieta/POS-APEX/internal/application/sales"
	infrapdf "github.com/axlmendieta/POS-APEX/internal/infrastructure/pdf"
	"github.com/axlmendieta/POS-APEX/internal/infrastructure/postgres"
	httpRouter "github.com/axlmendieta/POS-APEX/internal/interfaces/http"
	"github.com/axlmendieta/POS-APEX/pkg/config"
	"github.com/axlmendieta/POS-APEX/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	transferRepo := postgres.NewStockTransferRepository(pool)
	reconRepo := postgres.NewReconciliationRepository(pool)
	reportingRepo := postgres.NewReportingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	salesEngine := sales.NewEngine(txRunner, productRepo, locationRepo, employeeRepo, txRepo)

	// Recibo PDF: representación gráfica de la venta confirmada
	receiptRenderer := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(txRepo, locationRepo, productRepo, receiptRenderer)

	// reconRepo atado al pool: las notas de conciliación deben sobrevivir
	// al rollback de la fase de entrega mayorista.
	logisticsUC := logistics.NewService(
		txRunner, salesEngine,
		locationRepo, productRepo, employeeRepo, transferRepo, reconRepo,
	)

	adminUC := admin.NewUseCase(locationRepo, employeeRepo, productRepo, categoryRepo, customerRepo)
	reportsUC := reports.NewUseCase(reportingRepo, stockRepo)
	authUC := auth.NewUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS APEX API",
	}))

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AdminUC:     adminUC,
		SalesEngine: salesEngine,
		ReceiptUC:   receiptUC,
		LogisticsUC: logisticsUC,
		ReportsUC:   reportsUC,
		JWTSecret:   cfg.JWT.Secret,
		MetricsPath: metricsPath,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

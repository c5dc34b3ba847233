// seed puebla la base con los datos mínimos para operar en local: el
// super admin, la bodega central y un catálogo de demostración.
//
// Uso: go run ./cmd/seed
// Idempotente: si un registro ya existe (por nombre, username o barcode)
// se salta sin fallar.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/infrastructure/postgres"
	"github.com/axlmendieta/POS-APEX/pkg/config"
	"github.com/axlmendieta/POS-APEX/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-seed"})

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
	employeeRepo := postgres.NewEmployeeRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	now := time.Now()

	// Bodega central: única ubicación de tipo warehouse.
	warehouse, err := locationRepo.GetByName("Bodega Central")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar bodega")
	}
	if warehouse == nil {
		warehouse = &entity.Location{
			ID:        uuid.New().String(),
			Name:      "Bodega Central",
			Kind:      entity.LocationKindWarehouse,
			Address:   "Av. Industrial 1200, Parque Logístico",
			TaxID:     "APEX-900123456",
			CreatedAt: now,
		}
		if err := locationRepo.Create(warehouse); err != nil {
			log.Fatal().Err(err).Msg("crear bodega")
		}
		log.Info().Str("id", warehouse.ID).Msg("bodega central creada")
	}

	store, err := locationRepo.GetByName("Tienda Centro")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar tienda")
	}
	if store == nil {
		store = &entity.Location{
			ID:        uuid.New().String(),
			Name:      "Tienda Centro",
			Kind:      entity.LocationKindStore,
			Address:   "Calle 10 #5-23, Centro",
			CreatedAt: now,
		}
		if err := locationRepo.Create(store); err != nil {
			log.Fatal().Err(err).Msg("crear tienda")
		}
		log.Info().Str("id", store.ID).Msg("tienda de demostración creada")
	}

	// Super admin. La password por defecto solo sirve para entornos locales.
	existing, err := employeeRepo.GetByUsername("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		admin := &entity.Employee{
			ID:           uuid.New().String(),
			Username:     "admin",
			Role:         entity.RoleSuperAdmin,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}
		if err := employeeRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("username", "admin").Msg("super admin creado (password: admin123)")
	}

	// Catálogo de demostración.
	category, err := categoryRepo.GetByName("Bebidas")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar categoría")
	}
	if category == nil {
		category = &entity.Category{ID: uuid.New().String(), Name: "Bebidas"}
		if err := categoryRepo.Create(category); err != nil {
			log.Fatal().Err(err).Msg("crear categoría")
		}
	}

	products := []*entity.Product{
		{
			Name:           "Agua Mineral 600ml",
			Barcode:        "7701234000011",
			CategoryID:     category.ID,
			RetailPrice:    decimal.NewFromFloat(1.50),
			WholesalePrice: decimal.NewFromFloat(1.10),
			CostPrice:      decimal.NewFromFloat(0.80),
		},
		{
			Name:           "Café Molido 500g",
			Barcode:        "7701234000028",
			CategoryID:     category.ID,
			RetailPrice:    decimal.NewFromFloat(10.00),
			WholesalePrice: decimal.NewFromFloat(8.00),
			CostPrice:      decimal.NewFromFloat(6.20),
		},
		{
			Name:        "Jugo de Naranja 1L",
			Barcode:     "7701234000035",
			CategoryID:  category.ID,
			RetailPrice: decimal.NewFromFloat(3.25),
			CostPrice:   decimal.NewFromFloat(2.10),
		},
	}
	for _, p := range products {
		found, err := productRepo.GetByBarcode(p.Barcode)
		if err != nil {
			log.Fatal().Err(err).Str("barcode", p.Barcode).Msg("buscar producto")
		}
		if found != nil {
			continue
		}
		p.ID = uuid.New().String()
		p.CreatedAt = now
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("crear producto")
		}
		// Stock inicial en bodega central.
		if err := stockRepo.Upsert(&entity.StockLevel{
			LocationID:   warehouse.ID,
			ProductID:    p.ID,
			CurrentStock: 500,
			ReorderPoint: entity.DefaultReorderPoint,
			UpdatedAt:    now,
		}); err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("stock inicial")
		}
		log.Info().Str("name", p.Name).Msg("producto creado con stock inicial")
	}

	// Cliente de demostración del programa de lealtad.
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      "Cliente Demo",
		Email:     "demo@pos-apex.local",
		CreatedAt: now,
	}
	if err := customerRepo.Create(customer); err == nil {
		log.Info().Str("id", customer.ID).Msg("cliente demo creado")
	}

	log.Info().Msg("seed completado")
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesResult ingresos y conteo de transacciones completadas del día.
type DailySalesResult struct {
	TotalRevenue decimal.Decimal
	TxCount      int64
}

// SalesPointResult un punto de la serie de ventas por día.
type SalesPointResult struct {
	Date    time.Time
	Revenue decimal.Decimal
	TxCount int64
}

// TopProductResult producto con unidades vendidas acumuladas.
type TopProductResult struct {
	ProductID   string
	ProductName string
	Quantity    int64
}

// LocationRevenueResult ingreso acumulado por ubicación.
type LocationRevenueResult struct {
	LocationID   string
	LocationName string
	Revenue      decimal.Decimal
}

// RecentTransactionResult resumen de una transacción reciente.
type RecentTransactionResult struct {
	TransactionID string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	ItemCount     int64
}

// InventoryRowResult fila de inventario por ubicación (lectura).
type InventoryRowResult struct {
	ProductID    string
	ProductName  string
	CategoryName string
	CurrentStock int64
	ReorderPoint int64
}

// ReportingRepository consultas de solo lectura que consumen los
// colaboradores externos (dashboard, pronóstico, recomendaciones). Nunca se
// usan para saltarse las rutas de escritura atómicas.
type ReportingRepository interface {
	GetDailySalesStats(ctx context.Context, locationID string, day time.Time) (*DailySalesResult, error)
	GetSalesOverTime(ctx context.Context, locationID string, from, to time.Time) ([]SalesPointResult, error)
	GetTopProducts(ctx context.Context, locationID string, limit int) ([]TopProductResult, error)
	GetRevenueByLocation(ctx context.Context) ([]LocationRevenueResult, error)
	GetRecentTransactions(ctx context.Context, locationID string, limit int) ([]RecentTransactionResult, error)
	GetInventoryByLocation(ctx context.Context, locationID string) ([]InventoryRowResult, error)
}

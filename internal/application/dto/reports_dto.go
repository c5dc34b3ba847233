package dto

import "github.com/shopspring/decimal"

// DailySalesDTO estadísticas del día para una ubicación.
type DailySalesDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TxCount      int64           `json:"tx_count"`
}

// SalesPointDTO un punto de la serie de ventas.
type SalesPointDTO struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	TxCount int64           `json:"count"`
}

// TopProductDTO producto con unidades vendidas.
type TopProductDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"name"`
	Quantity    int64  `json:"quantity"`
}

// LocationRevenueDTO ingreso acumulado por ubicación.
type LocationRevenueDTO struct {
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// RecentTransactionDTO resumen de transacción reciente.
type RecentTransactionDTO struct {
	TransactionID string          `json:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     string          `json:"created_at"`
	ItemCount     int64           `json:"item_count"`
}

// InventoryRowDTO fila de inventario por ubicación.
type InventoryRowDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"name"`
	CategoryName string `json:"category,omitempty"`
	CurrentStock int64  `json:"stock"`
	ReorderPoint int64  `json:"reorder_point"`
}

// DailyReportDTO reporte diario: estadísticas más transacciones recientes.
type DailyReportDTO struct {
	Stats  DailySalesDTO          `json:"stats"`
	Recent []RecentTransactionDTO `json:"recent_transactions"`
}

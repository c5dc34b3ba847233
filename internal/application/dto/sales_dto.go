package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea de venta. UnitPrice nil = usar precio de
// catálogo al momento de la venta.
type SaleItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest payload para crear una venta.
type CreateSaleRequest struct {
	SellingLocationID string            `json:"selling_location_id"`
	CustomerID        string            `json:"customer_id"`
	Items             []SaleItemRequest `json:"items"`
}

// VoidLineRequest payload para anular cantidad de una línea.
type VoidLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// TransactionDetailResponse línea de venta en respuestas.
type TransactionDetailResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	UnitCostAtSale decimal.Decimal `json:"unit_cost_at_sale"`
}

// TransactionResponse cabecera de venta con detalles.
type TransactionResponse struct {
	ID                string                      `json:"id"`
	SellingLocationID string                      `json:"selling_location_id"`
	EmployeeID        string                      `json:"employee_id"`
	CustomerID        string                      `json:"customer_id,omitempty"`
	TotalAmount       decimal.Decimal             `json:"total_amount"`
	Status            string                      `json:"status"`
	CreatedAt         time.Time                   `json:"created_at"`
	Details           []TransactionDetailResponse `json:"details"`
}

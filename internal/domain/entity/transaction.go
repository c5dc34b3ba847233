package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transacción. Transición única completed → cancelled
// (terminal); cualquier mutación sobre una transacción cancelada falla.
const (
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// Transaction representa una venta (cabecera). TotalAmount es la suma de
// los totales de línea y nunca es negativo.
type Transaction struct {
	ID                string
	SellingLocationID string
	EmployeeID        string
	CustomerID        string // opcional
	TotalAmount       decimal.Decimal
	Status            string
	CreatedAt         time.Time
	Details           []*TransactionDetail
}

// TransactionDetail línea de venta. UnitPrice es el precio al momento de la
// venta y UnitCostAtSale el costo capturado para análisis de margen; ambos
// quedan desacoplados del catálogo (cambios posteriores no los afectan).
// Una línea se elimina por completo cuando se anula toda su cantidad.
type TransactionDetail struct {
	ID             string
	TransactionID  string
	ProductID      string
	Quantity       int64
	UnitPrice      decimal.Decimal
	UnitCostAtSale decimal.Decimal
}

// LineTotal total de la línea (Quantity × UnitPrice).
func (d *TransactionDetail) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(d.Quantity).Mul(d.UnitPrice)
}

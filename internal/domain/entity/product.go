package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo compartido entre todas las
// ubicaciones. El stock se maneja por ubicación en StockLevel.
// WholesalePrice aplica a órdenes mayoristas hacia socios; CostPrice es el
// costo de referencia capturado en cada venta para análisis de margen.
type Product struct {
	ID             string
	Name           string
	CategoryID     string // opcional
	Barcode        string // opcional, único
	RetailPrice    decimal.Decimal
	WholesalePrice decimal.Decimal // cero = sin precio mayorista
	CostPrice      decimal.Decimal // cero = costo no registrado
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Category agrupa productos del catálogo.
type Category struct {
	ID   string
	Name string
}

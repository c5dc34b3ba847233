package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del programa de lealtad. Las métricas de
// compra se actualizan al completar una venta y las consume el motor de
// recomendaciones (colaborador externo de solo lectura).
type Customer struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	LoyaltyPoints      int64
	LastPurchaseDate   *time.Time
	LastPurchaseAmount decimal.Decimal
	FavoriteProductID  string
	CreatedAt          time.Time
}

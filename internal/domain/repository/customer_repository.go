package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// UpdatePurchaseMetrics actualiza fecha y monto de última compra tras
	// completar una venta (consumido por el motor de recomendaciones).
	UpdatePurchaseMetrics(id string, amount decimal.Decimal, date time.Time) error
}

package entity

import "time"

// Estados de una nota de conciliación.
const (
	ReconciliationStatusPending  = "pending"
	ReconciliationStatusResolved = "resolved"
)

// ReconciliationNote registra el hueco de conciliación de una orden
// mayorista: la venta quedó confirmada pero el abono de stock al socio
// falló. Un operador debe resolverla manualmente (reintentar la entrega o
// revertir la venta por los canales normales).
type ReconciliationNote struct {
	ID                string
	TransactionID     string
	PartnerLocationID string
	ProductID         string
	Quantity          int64
	Reason            string
	Status            string
	CreatedAt         time.Time
	ResolvedAt        *time.Time
}

package entity

import "time"

// Estados de un traslado. En este diseño todo traslado se registra ya
// completado; los demás valores quedan admitidos en el esquema como
// compatibilidad del registro de auditoría.
const (
	TransferStatusCompleted = "completed"
)

// StockTransfer registra un movimiento interno de stock ya ejecutado entre
// dos ubicaciones (sin ingreso). Registro de auditoría append-only: nunca
// se muta después de creado.
type StockTransfer struct {
	ID                    string
	SourceLocationID      string
	DestinationLocationID string
	ProductID             string
	QuantityMoved         int64
	EmployeeID            string
	Status                string
	TransferDate          time.Time
}

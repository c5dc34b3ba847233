package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest payload para un traslado interno de stock.
type TransferRequest struct {
	ProductID             string `json:"product_id"`
	SourceLocationID      string `json:"source_location_id"`
	DestinationLocationID string `json:"destination_location_id"`
	Quantity              int64  `json:"quantity"`
}

// ReplenishItemRequest una línea de reposición. UnitPrice solo aplica cuando
// el destino es un socio (override manual del precio mayorista).
type ReplenishItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// WholesaleRequest payload para una orden mayorista a un socio.
type WholesaleRequest struct {
	SourceLocationID  string                 `json:"source_location_id"`
	PartnerLocationID string                 `json:"partner_location_id"`
	Items             []ReplenishItemRequest `json:"items"`
}

// ReplenishRequest payload para el enrutador de reposición.
type ReplenishRequest struct {
	SourceLocationID string                 `json:"source_location_id"`
	TargetLocationID string                 `json:"target_location_id"`
	Items            []ReplenishItemRequest `json:"items"`
}

// StockTransferResponse registro de traslado en respuestas.
type StockTransferResponse struct {
	ID                    string    `json:"id"`
	SourceLocationID      string    `json:"source_location_id"`
	DestinationLocationID string    `json:"destination_location_id"`
	ProductID             string    `json:"product_id"`
	QuantityMoved         int64     `json:"quantity_moved"`
	EmployeeID            string    `json:"employee_id"`
	Status                string    `json:"status"`
	TransferDate          time.Time `json:"transfer_date"`
}

// ReconciliationNoteResponse nota de conciliación en respuestas.
type ReconciliationNoteResponse struct {
	ID                string     `json:"id"`
	TransactionID     string     `json:"transaction_id"`
	PartnerLocationID string     `json:"partner_location_id"`
	ProductID         string     `json:"product_id"`
	Quantity          int64      `json:"quantity"`
	Reason            string     `json:"reason"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
}

// Tipos de resultado del enrutador de reposición.
const (
	ReplenishmentTypeTransfer = "transfer"
	ReplenishmentTypeSale     = "sale"
)

// ReplenishmentResponse resultado del enrutador: traslados internos
// (destino tienda) o una venta mayorista (destino socio).
type ReplenishmentResponse struct {
	Type        string                  `json:"type"`
	Transfers   []StockTransferResponse `json:"transfers,omitempty"`
	Transaction *TransactionResponse    `json:"transaction,omitempty"`
}

package entity

import "time"

// StockLevel representa el stock actual de un producto en una ubicación.
// Clave única (LocationID, ProductID). Se crea perezosamente en la primera
// mutación y nunca se elimina: la cantidad puede llegar a cero pero la fila
// persiste. Invariante duro: CurrentStock nunca se persiste negativo.
type StockLevel struct {
	ID           string
	LocationID   string
	ProductID    string
	CurrentStock int64
	ReorderPoint int64 // informativo, no lo aplica el ledger
	UpdatedAt    time.Time
}

// DefaultReorderPoint punto de reorden asignado a filas creadas perezosamente.
const DefaultReorderPoint int64 = 10

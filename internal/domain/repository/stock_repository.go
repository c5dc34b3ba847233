package repository

import "github.com/axlmendieta/POS-APEX/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// ubicación+producto. Usado dentro de transacciones para garantizar
// consistencia; la fila se crea perezosamente en la primera mutación.
type StockRepository interface {
	Get(locationID, productID string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE) de modo
	// que el chequeo de no-negatividad vea un valor serializado frente a
	// ajustes concurrentes.
	GetForUpdate(locationID, productID string) (*entity.StockLevel, error)
	Upsert(stock *entity.StockLevel) error
	ListByLocation(locationID string) ([]*entity.StockLevel, error)
}

// Package ledger implementa el contador de stock por (ubicación, producto)
// y su operación de ajuste atómico.
package ledger

import (
	"time"

	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// Adjust aplica delta (positivo o negativo) al stock de (locationID,
// productID) usando los repositorios de la transacción del caller.
//
// Si la fila no existe se crea con stock 0 antes de aplicar el delta. Si el
// resultado sería negativo falla con InsufficientStockError sin persistir
// nada; de lo contrario bloquea la fila (SELECT FOR UPDATE vía GetForUpdate)
// y escribe el nuevo valor. No emite eventos ni hace commit: varios ajustes
// más la escritura del registro de negocio confirman o caen juntos.
func Adjust(stockRepo repository.StockRepository, locationID, productID string, delta int64, now time.Time) (*entity.StockLevel, error) {
	stock, err := stockRepo.GetForUpdate(locationID, productID)
	if err != nil {
		return nil, err
	}

	newStock := stock.CurrentStock + delta
	if newStock < 0 {
		return nil, &domain.InsufficientStockError{
			LocationID:     locationID,
			ProductID:      productID,
			CurrentStock:   stock.CurrentStock,
			RequestedDelta: delta,
		}
	}

	stock.CurrentStock = newStock
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

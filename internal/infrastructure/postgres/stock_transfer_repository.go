package postgres

import (
	"context"
	"fmt"

	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.StockTransferRepository = (*StockTransferRepo)(nil)

// StockTransferRepo implementación de StockTransferRepository (usable con pool o tx).
type StockTransferRepo struct {
	q Querier
}

// NewStockTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransferRepository(q Querier) *StockTransferRepo {
	return &StockTransferRepo{q: q}
}

// Create persiste el registro de un traslado ejecutado. El registro es
// append-only: no hay Update ni Delete.
func (r *StockTransferRepo) Create(transfer *entity.StockTransfer) error {
	query := `
		INSERT INTO stock_transfers (id, source_location_id, destination_location_id, product_id, quantity_moved, employee_id, status, transfer_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.SourceLocationID, transfer.DestinationLocationID,
		transfer.ProductID, transfer.QuantityMoved, transfer.EmployeeID,
		transfer.Status, transfer.TransferDate,
	)
	if err != nil {
		return fmt.Errorf("insert stock transfer: %w", err)
	}
	return nil
}

// ListByLocation lista traslados que tocan una ubicación, como origen o destino.
func (r *StockTransferRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.StockTransfer, error) {
	query := `
		SELECT id, source_location_id, destination_location_id, product_id, quantity_moved, employee_id, status, transfer_date
		FROM stock_transfers
		WHERE source_location_id = $1 OR destination_location_id = $1
		ORDER BY transfer_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(
			&t.ID, &t.SourceLocationID, &t.DestinationLocationID,
			&t.ProductID, &t.QuantityMoved, &t.EmployeeID,
			&t.Status, &t.TransferDate,
		); err != nil {
			return nil, fmt.Errorf("scan stock transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

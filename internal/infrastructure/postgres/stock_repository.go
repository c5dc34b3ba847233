package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de (ubicación, producto). Fila inexistente se
// devuelve como nivel cero con el punto de reorden por defecto.
func (r *StockRepo) Get(locationID, productID string) (*entity.StockLevel, error) {
	query := `
		SELECT id, location_id, product_id, current_stock, reorder_point, updated_at
		FROM stock_levels WHERE location_id = $1 AND product_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, locationID, productID).Scan(
		&s.ID, &s.LocationID, &s.ProductID, &s.CurrentStock, &s.ReorderPoint, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroStock(locationID, productID), nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE). Dos
// ajustes concurrentes sobre la misma fila se serializan aquí: el chequeo de
// no-negatividad del ledger siempre ve el valor ya confirmado por el otro.
// Una fila inexistente se materializa en cero antes de bloquearla: dos
// primeros abonos concurrentes compiten por la misma fila en vez de leer
// cero cada uno sin bloqueo y pisarse el Upsert.
func (r *StockRepo) GetForUpdate(locationID, productID string) (*entity.StockLevel, error) {
	s, err := r.lockRow(locationID, productID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	if err := r.seedRow(locationID, productID); err != nil {
		return nil, err
	}
	s, err = r.lockRow(locationID, productID)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

func (r *StockRepo) lockRow(locationID, productID string) (*entity.StockLevel, error) {
	query := `
		SELECT id, location_id, product_id, current_stock, reorder_point, updated_at
		FROM stock_levels WHERE location_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, locationID, productID).Scan(
		&s.ID, &s.LocationID, &s.ProductID, &s.CurrentStock, &s.ReorderPoint, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// seedRow inserta la fila en cero si aún no existe. ON CONFLICT DO NOTHING
// espera a que un insert concurrente confirme; la relectura siguiente ya la
// ve y la bloquea.
func (r *StockRepo) seedRow(locationID, productID string) error {
	query := `
		INSERT INTO stock_levels (id, location_id, product_id, current_stock, reorder_point, updated_at)
		VALUES ($1, $2, $3, 0, $4, now())
		ON CONFLICT (location_id, product_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), locationID, productID, entity.DefaultReorderPoint,
	)
	if err != nil {
		return fmt.Errorf("seed stock row: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza el nivel de stock (por ubicación y producto).
func (r *StockRepo) Upsert(stock *entity.StockLevel) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_levels (id, location_id, product_id, current_stock, reorder_point, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (location_id, product_id)
		DO UPDATE SET current_stock = EXCLUDED.current_stock, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.LocationID, stock.ProductID, stock.CurrentStock, stock.ReorderPoint,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByLocation devuelve todas las filas de stock de una ubicación.
func (r *StockRepo) ListByLocation(locationID string) ([]*entity.StockLevel, error) {
	query := `
		SELECT id, location_id, product_id, current_stock, reorder_point, updated_at
		FROM stock_levels WHERE location_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.ID, &s.LocationID, &s.ProductID, &s.CurrentStock, &s.ReorderPoint, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func zeroStock(locationID, productID string) *entity.StockLevel {
	return &entity.StockLevel{
		LocationID:   locationID,
		ProductID:    productID,
		CurrentStock: 0,
		ReorderPoint: entity.DefaultReorderPoint,
	}
}

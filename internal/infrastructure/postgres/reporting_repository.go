package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultas de solo lectura sobre ventas e inventario para los
// colaboradores de analítica. Todas excluyen transacciones canceladas.
type ReportingRepo struct {
	pool *pgxpool.Pool
}

// NewReportingRepository construye el adaptador de reportes.
func NewReportingRepository(pool *pgxpool.Pool) *ReportingRepo {
	return &ReportingRepo{pool: pool}
}

// GetDailySalesStats devuelve ingreso total y conteo de transacciones
// completadas de una ubicación en el día indicado.
// Usa COALESCE para devolver cero si no hay filas (día sin ventas).
func (r *ReportingRepo) GetDailySalesStats(ctx context.Context, locationID string, day time.Time) (*repository.DailySalesResult, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	const query = `
	SELECT
	    COALESCE(SUM(total_amount), 0) AS revenue,
	    COUNT(*)                       AS tx_count
	FROM transactions
	WHERE selling_location_id = $1
	  AND created_at BETWEEN $2 AND $3
	  AND status = 'completed'`

	var result repository.DailySalesResult
	err := r.pool.QueryRow(ctx, query, locationID, dayStart, dayEnd).
		Scan(&result.TotalRevenue, &result.TxCount)
	if err != nil {
		return nil, fmt.Errorf("reporting.GetDailySalesStats: %w", err)
	}
	return &result, nil
}

// GetSalesOverTime devuelve la serie diaria de ventas completadas del rango.
func (r *ReportingRepo) GetSalesOverTime(ctx context.Context, locationID string, from, to time.Time) ([]repository.SalesPointResult, error) {
	const query = `
	SELECT
	    date_trunc('day', created_at) AS day,
	    SUM(total_amount)             AS revenue,
	    COUNT(*)                      AS tx_count
	FROM transactions
	WHERE selling_location_id = $1
	  AND created_at BETWEEN $2 AND $3
	  AND status = 'completed'
	GROUP BY day
	ORDER BY day`

	rows, err := r.pool.Query(ctx, query, locationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("reporting.GetSalesOverTime: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesPointResult
	for rows.Next() {
		var row repository.SalesPointResult
		if err := rows.Scan(&row.Date, &row.Revenue, &row.TxCount); err != nil {
			return nil, fmt.Errorf("reporting.GetSalesOverTime scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los `limit` productos con más unidades vendidas en
// la ubicación (transacciones completadas).
func (r *ReportingRepo) GetTopProducts(ctx context.Context, locationID string, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.id            AS product_id,
	    p.name          AS product_name,
	    SUM(d.quantity) AS quantity_sold
	FROM transaction_details d
	JOIN transactions t ON t.id = d.transaction_id
	JOIN products     p ON p.id = d.product_id
	WHERE t.selling_location_id = $1
	  AND t.status = 'completed'
	GROUP BY p.id, p.name
	ORDER BY quantity_sold DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, locationID, limit)
	if err != nil {
		return nil, fmt.Errorf("reporting.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("reporting.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRevenueByLocation agrupa el ingreso de transacciones completadas por
// ubicación vendedora. Ubicaciones sin ventas aparecen con ingreso cero.
func (r *ReportingRepo) GetRevenueByLocation(ctx context.Context) ([]repository.LocationRevenueResult, error) {
	const query = `
	SELECT
	    l.id                           AS location_id,
	    l.name                         AS location_name,
	    COALESCE(SUM(t.total_amount), 0) AS revenue
	FROM locations l
	LEFT JOIN transactions t
	       ON t.selling_location_id = l.id AND t.status = 'completed'
	GROUP BY l.id, l.name
	ORDER BY revenue DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reporting.GetRevenueByLocation: %w", err)
	}
	defer rows.Close()

	var results []repository.LocationRevenueResult
	for rows.Next() {
		var row repository.LocationRevenueResult
		if err := rows.Scan(&row.LocationID, &row.LocationName, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reporting.GetRevenueByLocation scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRecentTransactions devuelve las últimas transacciones completadas de la
// ubicación con su número de líneas.
func (r *ReportingRepo) GetRecentTransactions(ctx context.Context, locationID string, limit int) ([]repository.RecentTransactionResult, error) {
	const query = `
	SELECT
	    t.id           AS transaction_id,
	    t.total_amount,
	    t.created_at,
	    COUNT(d.id)    AS item_count
	FROM transactions t
	LEFT JOIN transaction_details d ON d.transaction_id = t.id
	WHERE t.selling_location_id = $1
	  AND t.status = 'completed'
	GROUP BY t.id, t.total_amount, t.created_at
	ORDER BY t.created_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, locationID, limit)
	if err != nil {
		return nil, fmt.Errorf("reporting.GetRecentTransactions: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentTransactionResult
	for rows.Next() {
		var row repository.RecentTransactionResult
		if err := rows.Scan(&row.TransactionID, &row.TotalAmount, &row.CreatedAt, &row.ItemCount); err != nil {
			return nil, fmt.Errorf("reporting.GetRecentTransactions scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventoryByLocation devuelve el inventario de una ubicación con nombre
// de producto y categoría resueltos.
func (r *ReportingRepo) GetInventoryByLocation(ctx context.Context, locationID string) ([]repository.InventoryRowResult, error) {
	const query = `
	SELECT
	    p.id                   AS product_id,
	    p.name                 AS product_name,
	    COALESCE(c.name, '')   AS category_name,
	    s.current_stock,
	    s.reorder_point
	FROM stock_levels s
	JOIN products p       ON p.id = s.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	WHERE s.location_id = $1
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("reporting.GetInventoryByLocation: %w", err)
	}
	defer rows.Close()

	var results []repository.InventoryRowResult
	for rows.Next() {
		var row repository.InventoryRowResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.CategoryName, &row.CurrentStock, &row.ReorderPoint); err != nil {
			return nil, fmt.Errorf("reporting.GetInventoryByLocation scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

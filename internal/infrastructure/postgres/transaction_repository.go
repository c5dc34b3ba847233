package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la cabecera de una transacción de venta.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, selling_location_id, employee_id, customer_id, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.SellingLocationID, tx.EmployeeID, nullIfEmpty(tx.CustomerID),
		tx.TotalAmount, tx.Status, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de venta.
func (r *TransactionRepo) CreateDetail(detail *entity.TransactionDetail) error {
	query := `
		INSERT INTO transaction_details (id, transaction_id, product_id, quantity, unit_price, unit_cost_at_sale)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.TransactionID, detail.ProductID,
		detail.Quantity, detail.UnitPrice, detail.UnitCostAtSale,
	)
	if err != nil {
		return fmt.Errorf("insert transaction detail: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción completa con sus líneas. Devuelve nil, nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, selling_location_id, employee_id, customer_id, total_amount, status, created_at
		FROM transactions WHERE id = $1`
	var tx entity.Transaction
	var customerID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&tx.ID, &tx.SellingLocationID, &tx.EmployeeID, &customerID,
		&tx.TotalAmount, &tx.Status, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	tx.CustomerID = derefStr(customerID)

	details, err := r.detailsByTransactionID(id)
	if err != nil {
		return nil, err
	}
	tx.Details = details
	return &tx, nil
}

// GetByIDForUpdate obtiene la transacción bloqueando su fila de cabecera.
// Dos reversas concurrentes sobre la misma transacción se serializan aquí:
// la segunda espera el commit de la primera y ve el estado ya confirmado.
func (r *TransactionRepo) GetByIDForUpdate(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, selling_location_id, employee_id, customer_id, total_amount, status, created_at
		FROM transactions WHERE id = $1
		FOR UPDATE`
	var tx entity.Transaction
	var customerID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&tx.ID, &tx.SellingLocationID, &tx.EmployeeID, &customerID,
		&tx.TotalAmount, &tx.Status, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction for update: %w", err)
	}
	tx.CustomerID = derefStr(customerID)

	details, err := r.detailsByTransactionID(id)
	if err != nil {
		return nil, err
	}
	tx.Details = details
	return &tx, nil
}

func (r *TransactionRepo) detailsByTransactionID(transactionID string) ([]*entity.TransactionDetail, error) {
	query := `
		SELECT id, transaction_id, product_id, quantity, unit_price, unit_cost_at_sale
		FROM transaction_details WHERE transaction_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction details: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionDetail
	for rows.Next() {
		var d entity.TransactionDetail
		if err := rows.Scan(&d.ID, &d.TransactionID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.UnitCostAtSale); err != nil {
			return nil, fmt.Errorf("scan detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una transacción.
func (r *TransactionRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE transactions SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateTotal escribe el nuevo total de la transacción (anulaciones parciales).
func (r *TransactionRepo) UpdateTotal(id string, total decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE transactions SET total_amount = $2 WHERE id = $1`, id, total)
	if err != nil {
		return fmt.Errorf("update transaction total: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateDetailQuantity decrementa la cantidad registrada en una línea.
func (r *TransactionRepo) UpdateDetailQuantity(detailID string, quantity int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE transaction_details SET quantity = $2 WHERE id = $1`, detailID, quantity)
	if err != nil {
		return fmt.Errorf("update detail quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteDetail elimina una línea (anulación completa de la línea).
func (r *TransactionRepo) DeleteDetail(detailID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM transaction_details WHERE id = $1`, detailID)
	if err != nil {
		return fmt.Errorf("delete detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

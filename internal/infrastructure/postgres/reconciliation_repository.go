package postgres

import (
	"context"
	"fmt"

	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.ReconciliationRepository = (*ReconciliationRepo)(nil)

// ReconciliationRepo implementación de ReconciliationRepository. Siempre se
// construye sobre el pool: las notas deben persistir aunque la transacción
// de la fase de abono haya hecho rollback.
type ReconciliationRepo struct {
	q Querier
}

// NewReconciliationRepository construye el adaptador.
func NewReconciliationRepository(q Querier) *ReconciliationRepo {
	return &ReconciliationRepo{q: q}
}

// Create persiste una nota de conciliación pendiente.
func (r *ReconciliationRepo) Create(note *entity.ReconciliationNote) error {
	query := `
		INSERT INTO reconciliation_notes (id, transaction_id, partner_location_id, product_id, quantity, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.TransactionID, note.PartnerLocationID,
		note.ProductID, note.Quantity, note.Reason, note.Status, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation note: %w", err)
	}
	return nil
}

// ListPending lista las notas sin resolver, más antiguas primero.
func (r *ReconciliationRepo) ListPending(limit, offset int) ([]*entity.ReconciliationNote, error) {
	query := `
		SELECT id, transaction_id, partner_location_id, product_id, quantity, reason, status, created_at, resolved_at
		FROM reconciliation_notes WHERE status = 'pending'
		ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reconciliation notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReconciliationNote
	for rows.Next() {
		var n entity.ReconciliationNote
		if err := rows.Scan(
			&n.ID, &n.TransactionID, &n.PartnerLocationID,
			&n.ProductID, &n.Quantity, &n.Reason, &n.Status,
			&n.CreatedAt, &n.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reconciliation note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Resolve marca una nota como resuelta.
func (r *ReconciliationRepo) Resolve(id string) error {
	query := `
		UPDATE reconciliation_notes
		SET status = 'resolved', resolved_at = now()
		WHERE id = $1 AND status = 'pending'`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("resolve reconciliation note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

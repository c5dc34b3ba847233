package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación nueva.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, kind, address, tax_id, contact_info, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Kind,
		nullIfEmpty(location.Address), nullIfEmpty(location.TaxID), nullIfEmpty(location.ContactInfo),
		location.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID. Devuelve nil, nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.getBy("id", id)
}

// GetByName obtiene una ubicación por nombre. Devuelve nil, nil si no existe.
func (r *LocationRepo) GetByName(name string) (*entity.Location, error) {
	return r.getBy("name", name)
}

func (r *LocationRepo) getBy(column, value string) (*entity.Location, error) {
	query := fmt.Sprintf(`
		SELECT id, name, kind, address, tax_id, contact_info, created_at
		FROM locations WHERE %s = $1`, column)
	var l entity.Location
	var address, taxID, contactInfo *string
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&l.ID, &l.Name, &l.Kind, &address, &taxID, &contactInfo, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	l.Address = derefStr(address)
	l.TaxID = derefStr(taxID)
	l.ContactInfo = derefStr(contactInfo)
	return &l, nil
}

// List lista ubicaciones paginadas por fecha de creación.
func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, name, kind, address, tax_id, contact_info, created_at
		FROM locations ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		var address, taxID, contactInfo *string
		if err := rows.Scan(&l.ID, &l.Name, &l.Kind, &address, &taxID, &contactInfo, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		l.Address = derefStr(address)
		l.TaxID = derefStr(taxID)
		l.ContactInfo = derefStr(contactInfo)
		list = append(list, &l)
	}
	return list, rows.Err()
}

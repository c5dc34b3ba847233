package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, loyalty_points, last_purchase_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullIfEmpty(customer.Email), nullIfEmpty(customer.Phone),
		customer.LoyaltyPoints, customer.LastPurchaseAmount, customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, loyalty_points,
		       last_purchase_date, last_purchase_amount, favorite_product_id, created_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	var email, phone, favorite *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &email, &phone, &c.LoyaltyPoints,
		&c.LastPurchaseDate, &c.LastPurchaseAmount, &favorite, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Email = derefStr(email)
	c.Phone = derefStr(phone)
	c.FavoriteProductID = derefStr(favorite)
	return &c, nil
}

// UpdatePurchaseMetrics registra la última compra del cliente y acumula un
// punto de lealtad por cada unidad monetaria entera gastada.
func (r *CustomerRepo) UpdatePurchaseMetrics(id string, amount decimal.Decimal, date time.Time) error {
	query := `
		UPDATE customers
		SET last_purchase_date = $2,
		    last_purchase_amount = $3,
		    loyalty_points = loyalty_points + $4
		WHERE id = $1`
	points := amount.IntPart()
	if points < 0 {
		points = 0
	}
	tag, err := r.q.Exec(context.Background(), query, id, date, amount, points)
	if err != nil {
		return fmt.Errorf("update customer metrics: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

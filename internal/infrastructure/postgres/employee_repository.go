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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado nuevo.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, username, role, assigned_location_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Username, employee.Role,
		nullIfEmpty(employee.AssignedLocationID), employee.PasswordHash, employee.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.getBy("id", id)
}

// GetByUsername obtiene un empleado por username (para login). Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByUsername(username string) (*entity.Employee, error) {
	return r.getBy("username", username)
}

func (r *EmployeeRepo) getBy(column, value string) (*entity.Employee, error) {
	query := fmt.Sprintf(`
		SELECT id, username, role, assigned_location_id, password_hash, created_at
		FROM employees WHERE %s = $1`, column)
	var e entity.Employee
	var locationID *string
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&e.ID, &e.Username, &e.Role, &locationID, &e.PasswordHash, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	e.AssignedLocationID = derefStr(locationID)
	return &e, nil
}

// ListByLocation lista los empleados asignados a una ubicación.
func (r *EmployeeRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT id, username, role, assigned_location_id, password_hash, created_at
		FROM employees WHERE assigned_location_id = $1
		ORDER BY username LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var assigned *string
		if err := rows.Scan(&e.ID, &e.Username, &e.Role, &assigned, &e.PasswordHash, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.AssignedLocationID = derefStr(assigned)
		list = append(list, &e)
	}
	return list, rows.Err()
}

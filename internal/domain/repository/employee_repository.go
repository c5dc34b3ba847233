package repository

import "github.com/axlmendieta/POS-APEX/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByUsername(username string) (*entity.Employee, error)
	ListByLocation(locationID string, limit, offset int) ([]*entity.Employee, error)
}

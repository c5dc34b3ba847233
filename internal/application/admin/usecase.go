// Package admin implementa la provisión administrativa: ubicaciones,
// empleados y catálogo. Toda operación recibe el ID del actor y aplica la
// matriz de autorización antes de mutar nada.
package admin

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/authz"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// UseCase provisión de ubicaciones, empleados y catálogo.
type UseCase struct {
	locationRepo repository.LocationRepository
	employeeRepo repository.EmployeeRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso de administración.
func NewUseCase(
	locationRepo repository.LocationRepository,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{
		locationRepo: locationRepo,
		employeeRepo: employeeRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		customerRepo: customerRepo,
	}
}

func (uc *UseCase) actor(actorID string) (*entity.Employee, error) {
	actor, err := uc.employeeRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrNotAuthorized
	}
	return actor, nil
}

// RegisterLocation provisiona una tienda propia o un socio mayorista. Solo
// super_admin; la bodega central se crea una única vez en el seed y su tipo
// no es registrable por esta vía.
func (uc *UseCase) RegisterLocation(actorID string, in dto.RegisterLocationRequest) (*dto.LocationResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrNotAuthorized
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.LocationKindStore && in.Kind != entity.LocationKindPartner {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.locationRepo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	location := &entity.Location{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Kind:        in.Kind,
		Address:     in.Address,
		TaxID:       in.TaxID,
		ContactInfo: in.ContactInfo,
		CreatedAt:   time.Now(),
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	log.Info().Str("location_id", location.ID).Str("kind", location.Kind).Msg("ubicación registrada")
	return toLocationResponse(location), nil
}

// GetLocation obtiene una ubicación por ID.
func (uc *UseCase) GetLocation(id string) (*dto.LocationResponse, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(location), nil
}

// ListLocations lista ubicaciones paginadas.
func (uc *UseCase) ListLocations(page dto.PageRequest) ([]dto.LocationResponse, error) {
	locations, err := uc.locationRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// CreateEmployee provisiona un empleado aplicando la matriz de autorización:
// el rol del creador decide qué roles puede otorgar y en qué ubicación.
// El password se hashea con bcrypt; el hash nunca sale en respuestas.
func (uc *UseCase) CreateEmployee(actorID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	target, err := uc.locationRepo.GetByID(in.TargetLocationID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.CanCreateUser(actor, target, in.Role); err != nil {
		return nil, err
	}
	if existing, err := uc.employeeRepo.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		ID:                 uuid.New().String(),
		Username:           in.Username,
		Role:               in.Role,
		AssignedLocationID: target.ID,
		PasswordHash:       string(hash),
		CreatedAt:          time.Now(),
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	log.Info().
		Str("employee_id", employee.ID).
		Str("role", employee.Role).
		Str("location_id", employee.AssignedLocationID).
		Str("created_by", actorID).
		Msg("empleado provisionado")
	return toEmployeeResponse(employee), nil
}

// ListEmployees lista los empleados de una ubicación.
func (uc *UseCase) ListEmployees(locationID string, page dto.PageRequest) ([]dto.EmployeeResponse, error) {
	employees, err := uc.employeeRepo.ListByLocation(locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Kind:        l.Kind,
		Address:     l.Address,
		TaxID:       l.TaxID,
		ContactInfo: l.ContactInfo,
		CreatedAt:   l.CreatedAt,
	}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:                 e.ID,
		Username:           e.Username,
		Role:               e.Role,
		AssignedLocationID: e.AssignedLocationID,
		CreatedAt:          e.CreatedAt,
	}
}

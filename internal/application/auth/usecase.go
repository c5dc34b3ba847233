// Package auth implementa el login de empleados con bcrypt + JWT.
package auth

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
	"github.com/axlmendieta/POS-APEX/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación. El alta de empleados no vive aquí:
// pasa por la provisión de admin, que aplica la matriz de autorización.
type UseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + empleado.
// Usuario inexistente y password incorrecto devuelven el mismo error hacia
// afuera; el detalle queda solo en el log.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := uc.employeeRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		log.Debug().Str("username", in.Username).Msg("login: usuario no encontrado")
		return nil, domain.ErrNotAuthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		log.Debug().Str("username", in.Username).Msg("login: password incorrecto")
		return nil, domain.ErrNotAuthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.AssignedLocationID, employee.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Employee: *ToEmployeeResponse(employee),
	}, nil
}

// ToEmployeeResponse convierte la entidad a DTO sin exponer el hash.
func ToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:                 e.ID,
		Username:           e.Username,
		Role:               e.Role,
		AssignedLocationID: e.AssignedLocationID,
		CreatedAt:          e.CreatedAt,
	}
}

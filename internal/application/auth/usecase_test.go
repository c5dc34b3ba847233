package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/axlmendieta/POS-APEX/internal/application/apptest"
	"github.com/axlmendieta/POS-APEX/internal/application/auth"
	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	pkgjwt "github.com/axlmendieta/POS-APEX/pkg/jwt"
)

const (
	testSecret = "test-secret"
	testPass   = "secreto123"
)

func newFixture(t *testing.T) *auth.UseCase {
	t.Helper()
	store := apptest.NewStore()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPass), bcrypt.MinCost)
	require.NoError(t, err)
	store.AddEmployee(&entity.Employee{
		ID:                 "emp-1",
		Username:           "cajero",
		Role:               entity.RoleInternalCashier,
		AssignedLocationID: "loc-tienda",
		PasswordHash:       string(hash),
	})

	return auth.NewUseCase(store.EmployeeRepo(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pos-apex-test",
	})
}

// Login feliz: devuelve un token verificable con los claims del empleado y
// el perfil sin hash.
func TestLogin_EmiteTokenConClaims(t *testing.T) {
	uc := newFixture(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "cajero", Password: testPass})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	employeeID, locationID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
	assert.Equal(t, "loc-tienda", locationID)
	assert.Equal(t, entity.RoleInternalCashier, role)

	assert.Equal(t, "cajero", resp.Employee.Username)
}

// Usuario inexistente y password incorrecto devuelven el MISMO error: el
// atacante no puede distinguir cuál de los dos falló.
func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	uc := newFixture(t)

	_, errNoUser := uc.Login(dto.LoginRequest{Username: "fantasma", Password: testPass})
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "cajero", Password: "incorrecto"})

	assert.ErrorIs(t, errNoUser, domain.ErrNotAuthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrNotAuthorized)
	assert.Equal(t, errNoUser, errBadPass)
}

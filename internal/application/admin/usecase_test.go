package admin_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlmendieta/POS-APEX/internal/application/admin"
	"github.com/axlmendieta/POS-APEX/internal/application/apptest"
	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Provisión administrativa: registro de ubicaciones, provisión de empleados
// (matriz de autorización aplicada a nivel de caso de uso) y catálogo.
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminID   = "emp-admin"
	gerenteID = "emp-gerente"
	socioOpID = "emp-socio"
	tiendaID  = "loc-tienda"
	socioID   = "loc-socio"
)

func newFixture(t *testing.T) (*apptest.Store, *admin.UseCase) {
	t.Helper()
	store := apptest.NewStore()

	store.AddLocation(&entity.Location{ID: tiendaID, Name: "Tienda Centro", Kind: entity.LocationKindStore})
	store.AddLocation(&entity.Location{ID: socioID, Name: "Distribuidora Norte", Kind: entity.LocationKindPartner})

	store.AddEmployee(&entity.Employee{ID: adminID, Username: "admin", Role: entity.RoleSuperAdmin})
	store.AddEmployee(&entity.Employee{ID: gerenteID, Username: "gerente", Role: entity.RoleBranchManager, AssignedLocationID: tiendaID})
	store.AddEmployee(&entity.Employee{ID: socioOpID, Username: "socio", Role: entity.RolePartnerOwner, AssignedLocationID: socioID})

	uc := admin.NewUseCase(
		store.LocationRepo(),
		store.EmployeeRepo(),
		store.ProductRepo(),
		store.CategoryRepo(),
		store.CustomerRepo(),
	)
	return store, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterLocation
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterLocation_SuperAdminCreaTienda(t *testing.T) {
	_, uc := newFixture(t)

	resp, err := uc.RegisterLocation(adminID, dto.RegisterLocationRequest{
		Name: "Tienda Sur",
		Kind: entity.LocationKindStore,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.LocationKindStore, resp.Kind)
}

// La bodega central no es registrable por esta vía: solo store y partner.
func TestRegisterLocation_BodegaNoRegistrable(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.RegisterLocation(adminID, dto.RegisterLocationRequest{
		Name: "Otra Bodega",
		Kind: entity.LocationKindWarehouse,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterLocation_NombreDuplicado(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.RegisterLocation(adminID, dto.RegisterLocationRequest{
		Name: "Tienda Centro",
		Kind: entity.LocationKindStore,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterLocation_SoloSuperAdmin(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.RegisterLocation(gerenteID, dto.RegisterLocationRequest{
		Name: "Tienda Pirata",
		Kind: entity.LocationKindStore,
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateEmployee — la matriz de autorización aplicada de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEmployee_SuperAdminCreaGerente(t *testing.T) {
	_, uc := newFixture(t)

	resp, err := uc.CreateEmployee(adminID, dto.CreateEmployeeRequest{
		Username:         "gerente2",
		Password:         "secreto123",
		Role:             entity.RoleBranchManager,
		TargetLocationID: tiendaID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBranchManager, resp.Role)
	assert.Equal(t, tiendaID, resp.AssignedLocationID)
}

// Un gerente de sucursal solo puede provisionar cajeros internos de su
// propia tienda.
func TestCreateEmployee_GerenteProvisionaCajeroPropio(t *testing.T) {
	_, uc := newFixture(t)

	resp, err := uc.CreateEmployee(gerenteID, dto.CreateEmployeeRequest{
		Username:         "cajero1",
		Password:         "secreto123",
		Role:             entity.RoleInternalCashier,
		TargetLocationID: tiendaID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleInternalCashier, resp.Role)
}

func TestCreateEmployee_GerenteNoCreaOtroGerente(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.CreateEmployee(gerenteID, dto.CreateEmployeeRequest{
		Username:         "gerente2",
		Password:         "secreto123",
		Role:             entity.RoleBranchManager,
		TargetLocationID: tiendaID,
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestCreateEmployee_GerenteNoProvisionaEnOtraUbicacion(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.CreateEmployee(gerenteID, dto.CreateEmployeeRequest{
		Username:         "cajero-ajeno",
		Password:         "secreto123",
		Role:             entity.RoleInternalCashier,
		TargetLocationID: socioID,
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

// Un dueño de socio solo provisiona cajeros externos de su socio.
func TestCreateEmployee_SocioProvisionaCajeroExterno(t *testing.T) {
	_, uc := newFixture(t)

	resp, err := uc.CreateEmployee(socioOpID, dto.CreateEmployeeRequest{
		Username:         "cajero-ext",
		Password:         "secreto123",
		Role:             entity.RoleExternalCashier,
		TargetLocationID: socioID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleExternalCashier, resp.Role)
}

// Rol fuera del conjunto cerrado: inválido antes de cualquier otra cosa.
func TestCreateEmployee_RolDesconocido(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.CreateEmployee(adminID, dto.CreateEmployeeRequest{
		Username:         "nadie",
		Password:         "secreto123",
		Role:             "wizard",
		TargetLocationID: tiendaID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

// Rol válido pero incompatible con el tipo de la ubicación destino.
func TestCreateEmployee_RolIncompatibleConTipoDeUbicacion(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.CreateEmployee(adminID, dto.CreateEmployeeRequest{
		Username:         "cruzado",
		Password:         "secreto123",
		Role:             entity.RoleExternalCashier,
		TargetLocationID: tiendaID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestCreateEmployee_UsernameDuplicado(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.CreateEmployee(adminID, dto.CreateEmployeeRequest{
		Username:         "gerente", // ya existe
		Password:         "secreto123",
		Role:             entity.RoleBranchManager,
		TargetLocationID: tiendaID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ConPreciosOpcionales(t *testing.T) {
	_, uc := newFixture(t)
	mayorista := decimal.NewFromInt(8)

	resp, err := uc.CreateProduct(adminID, dto.CreateProductRequest{
		Name:           "Café Molido 500g",
		Barcode:        "7701234000028",
		RetailPrice:    decimal.NewFromInt(10),
		WholesalePrice: &mayorista,
	})
	require.NoError(t, err)
	assert.True(t, resp.RetailPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.WholesalePrice.Equal(decimal.NewFromInt(8)))
	assert.True(t, resp.CostPrice.IsZero(), "sin costo declarado queda en cero")
}

func TestCreateProduct_SoloSuperAdmin(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.CreateProduct(gerenteID, dto.CreateProductRequest{
		Name:        "Producto Pirata",
		RetailPrice: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

// El escaneo en caja resuelve el producto por su código de barras.
func TestGetProductByBarcode_ResuelveProducto(t *testing.T) {
	_, uc := newFixture(t)

	created, err := uc.CreateProduct(adminID, dto.CreateProductRequest{
		Name:        "Agua Mineral 600ml",
		Barcode:     "7701234000035",
		RetailPrice: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	got, err := uc.GetProductByBarcode("7701234000035")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Agua Mineral 600ml", got.Name)
}

func TestGetProductByBarcode_NoExiste(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.GetProductByBarcode("0000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetProductByBarcode("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCustomer_YConsulta(t *testing.T) {
	_, uc := newFixture(t)

	created, err := uc.CreateCustomer(dto.CreateCustomerRequest{
		Name:  "Cliente Demo",
		Email: "demo@pos-apex.local",
	})
	require.NoError(t, err)

	got, err := uc.GetCustomer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cliente Demo", got.Name)
	assert.Equal(t, int64(0), got.LoyaltyPoints)
}

// Package logistics implementa el movimiento de stock entre ubicaciones:
// traslados internos (sin ingreso), órdenes mayoristas a socios (con
// ingreso) y el enrutador de reposición que decide entre ambos según el
// tipo de la ubicación destino.
package logistics

import (
	"github.com/axlmendieta/POS-APEX/internal/application/ledger"
	"github.com/axlmendieta/POS-APEX/internal/application/sales"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// Service enrutador de traslados y reposición.
type Service struct {
	txRunner     ledger.TxRunner
	engine       *sales.Engine
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
	transferRepo repository.StockTransferRepository
	reconRepo    repository.ReconciliationRepository
}

// NewService construye el servicio de logística. reconRepo debe estar atado
// al pool (no a una tx): las notas de conciliación tienen que sobrevivir al
// rollback de la fase de abono fallida.
func NewService(
	txRunner ledger.TxRunner,
	engine *sales.Engine,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	transferRepo repository.StockTransferRepository,
	reconRepo repository.ReconciliationRepository,
) *Service {
	return &Service{
		txRunner:     txRunner,
		engine:       engine,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		transferRepo: transferRepo,
		reconRepo:    reconRepo,
	}
}

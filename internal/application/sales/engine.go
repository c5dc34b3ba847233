// Package sales implementa el motor de ventas: creación atómica de ventas
// multi-ítem, cancelación con reversa total y anulación parcial de líneas.
package sales

import (
	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/ledger"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// Engine orquesta decrementos de stock y escritura de transacciones como
// una sola unidad atómica (vía TxRunner). Las lecturas de validación usan
// repositorios atados al pool; las mutaciones, repositorios atados a la tx.
type Engine struct {
	txRunner     ledger.TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	employeeRepo repository.EmployeeRepository
	txRepo       repository.TransactionRepository
}

// NewEngine construye el motor de ventas.
func NewEngine(
	txRunner ledger.TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	employeeRepo repository.EmployeeRepository,
	txRepo repository.TransactionRepository,
) *Engine {
	return &Engine{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		employeeRepo: employeeRepo,
		txRepo:       txRepo,
	}
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:                tx.ID,
		SellingLocationID: tx.SellingLocationID,
		EmployeeID:        tx.EmployeeID,
		CustomerID:        tx.CustomerID,
		TotalAmount:       tx.TotalAmount,
		Status:            tx.Status,
		CreatedAt:         tx.CreatedAt,
		Details:           make([]dto.TransactionDetailResponse, 0, len(tx.Details)),
	}
	for _, d := range tx.Details {
		resp.Details = append(resp.Details, dto.TransactionDetailResponse{
			ID:             d.ID,
			ProductID:      d.ProductID,
			Quantity:       d.Quantity,
			UnitPrice:      d.UnitPrice,
			UnitCostAtSale: d.UnitCostAtSale,
		})
	}
	return resp
}

package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/ledger"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/authz"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
	"github.com/axlmendieta/POS-APEX/internal/infrastructure/metrics"
)

// Sell crea una venta: descuenta stock por cada ítem, calcula el total y
// persiste cabecera más detalles, todo en una sola transacción de BD.
//
// La primera insuficiencia aborta la operación completa: ningún decremento
// parcial sobrevive y no se persiste ninguna Transaction. El costo unitario
// de cada línea se captura del catálogo al momento de la venta; cambios
// posteriores de costo no afectan el margen histórico.
func (e *Engine) Sell(ctx context.Context, employeeID string, in dto.CreateSaleRequest) (*dto.TransactionResponse, error) {
	if in.SellingLocationID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	location, err := e.locationRepo.GetByID(in.SellingLocationID)
	if err != nil || location == nil {
		return nil, domain.ErrNotFound
	}
	employee, err := e.employeeRepo.GetByID(employeeID)
	if err != nil || employee == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.CanSell(employee, in.SellingLocationID); err != nil {
		return nil, err
	}

	// Validar ítems y resolver precios fuera de la tx (solo lectura).
	// Precio nil = precio de catálogo vigente.
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := e.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
		if item.UnitPrice == nil {
			price := product.RetailPrice
			item.UnitPrice = &price
		} else if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	tx := &entity.Transaction{
		ID:                uuid.New().String(),
		SellingLocationID: in.SellingLocationID,
		EmployeeID:        employeeID,
		CustomerID:        in.CustomerID,
		Status:            entity.TransactionStatusCompleted,
		CreatedAt:         now,
	}

	err = e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		txRepo repository.TransactionRepository,
		_ repository.StockTransferRepository,
		customerRepo repository.CustomerRepository,
	) error {
		// 1) Decremento por ítem; la primera insuficiencia hace rollback
		// de todo lo anterior.
		total := decimal.Zero
		for _, item := range in.Items {
			if _, err := ledger.Adjust(stockRepo, in.SellingLocationID, item.ProductID, -item.Quantity, now); err != nil {
				return err
			}
			total = total.Add(decimal.NewFromInt(item.Quantity).Mul(*item.UnitPrice))
		}

		// 2) Cabecera y detalles, con costo capturado al momento de la venta.
		tx.TotalAmount = total
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		for _, item := range in.Items {
			detail := &entity.TransactionDetail{
				ID:             uuid.New().String(),
				TransactionID:  tx.ID,
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				UnitPrice:      *item.UnitPrice,
				UnitCostAtSale: productsByID[item.ProductID].CostPrice,
			}
			if err := txRepo.CreateDetail(detail); err != nil {
				return err
			}
			tx.Details = append(tx.Details, detail)
		}

		// 3) Métricas de cliente para el motor de recomendaciones.
		if in.CustomerID != "" {
			if err := customerRepo.UpdatePurchaseMetrics(in.CustomerID, total, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		tx.Details = nil
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.StockConflictsTotal.Inc()
			metrics.SalesFailedTotal.WithLabelValues("insufficient_stock").Inc()
			log.Warn().Err(err).Str("location_id", in.SellingLocationID).Msg("venta rechazada por stock")
		} else {
			metrics.SalesFailedTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.SalesCompletedTotal.Inc()
	log.Info().
		Str("transaction_id", tx.ID).
		Str("location_id", in.SellingLocationID).
		Str("total", tx.TotalAmount.StringFixed(2)).
		Msg("venta procesada")
	return toTransactionResponse(tx), nil
}

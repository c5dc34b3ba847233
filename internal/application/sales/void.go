package sales

import (
	"context"
	"time"

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

// VoidLine anula una cantidad de una línea de la transacción. Requiere
// override de supervisor. Devuelve la cantidad anulada al stock, decrementa
// (o elimina, si se anula completa) la línea y resta qty × unit_price del
// total, todo atómicamente.
func (e *Engine) VoidLine(ctx context.Context, transactionID, supervisorID string, in dto.VoidLineRequest) (*dto.TransactionResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	tx, err := e.txRepo.GetByID(transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if tx.Status == entity.TransactionStatusCancelled {
		return nil, domain.ErrInvalidState
	}

	supervisor, err := e.employeeRepo.GetByID(supervisorID)
	if err != nil || supervisor == nil {
		return nil, domain.ErrNotAuthorized
	}
	if err := authz.CanOverride(supervisor, tx.SellingLocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	err = e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		txRepo repository.TransactionRepository,
		_ repository.StockTransferRepository,
		_ repository.CustomerRepository,
	) error {
		// Releer bajo bloqueo de fila: la línea, su cantidad vigente y el
		// total se toman del valor confirmado. Dos anulaciones concurrentes
		// sobre la misma transacción se serializan en este punto.
		locked, err := txRepo.GetByIDForUpdate(transactionID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if locked.Status == entity.TransactionStatusCancelled {
			return domain.ErrInvalidState
		}

		var detail *entity.TransactionDetail
		for _, d := range locked.Details {
			if d.ProductID == in.ProductID {
				detail = d
				break
			}
		}
		if detail == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > detail.Quantity {
			return domain.ErrInvalidState
		}

		if _, err := ledger.Adjust(stockRepo, locked.SellingLocationID, in.ProductID, in.Quantity, now); err != nil {
			return err
		}
		refund := decimal.NewFromInt(in.Quantity).Mul(detail.UnitPrice)
		if in.Quantity == detail.Quantity {
			// Anulación completa: la línea desaparece.
			if err := txRepo.DeleteDetail(detail.ID); err != nil {
				return err
			}
			kept := locked.Details[:0]
			for _, d := range locked.Details {
				if d.ID != detail.ID {
					kept = append(kept, d)
				}
			}
			locked.Details = kept
		} else {
			if err := txRepo.UpdateDetailQuantity(detail.ID, detail.Quantity-in.Quantity); err != nil {
				return err
			}
			detail.Quantity -= in.Quantity
		}
		locked.TotalAmount = locked.TotalAmount.Sub(refund)
		tx = locked
		return txRepo.UpdateTotal(locked.ID, locked.TotalAmount)
	})
	if err != nil {
		return nil, err
	}

	metrics.VoidedLinesTotal.Inc()
	log.Info().
		Str("transaction_id", tx.ID).
		Str("product_id", in.ProductID).
		Int64("quantity", in.Quantity).
		Str("supervisor_id", supervisorID).
		Msg("línea anulada")
	return toTransactionResponse(tx), nil
}

// Get devuelve una transacción con sus detalles.
func (e *Engine) Get(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	tx, err := e.txRepo.GetByID(transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(tx), nil
}

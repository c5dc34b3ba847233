package sales

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/ledger"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/authz"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
	"github.com/axlmendieta/POS-APEX/internal/infrastructure/metrics"
)

// Cancel cancela una transacción completa. Requiere override de supervisor
// con autoridad sobre la ubicación vendedora. Revierte el stock de cada
// línea y marca la transacción como cancelled, atómicamente. La transición
// es terminal: una transacción cancelada no admite más mutaciones.
func (e *Engine) Cancel(ctx context.Context, transactionID, supervisorID string) (*dto.TransactionResponse, error) {
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
		// Releer bajo bloqueo de fila: el chequeo de estado y la reversa se
		// deciden sobre el valor confirmado, no sobre la lectura del pool.
		// Una segunda cancelación concurrente espera aquí y encuentra la
		// transacción ya cancelada.
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
		tx = locked
		// Reversa total: devolver cada línea a la ubicación vendedora.
		for _, detail := range locked.Details {
			if _, err := ledger.Adjust(stockRepo, locked.SellingLocationID, detail.ProductID, detail.Quantity, now); err != nil {
				return err
			}
		}
		return txRepo.UpdateStatus(locked.ID, entity.TransactionStatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	tx.Status = entity.TransactionStatusCancelled
	metrics.CancellationsTotal.Inc()
	log.Info().
		Str("transaction_id", tx.ID).
		Str("supervisor_id", supervisorID).
		Msg("transacción cancelada")
	return toTransactionResponse(tx), nil
}

package logistics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/ledger"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
	"github.com/axlmendieta/POS-APEX/internal/infrastructure/metrics"
)

// Transfer ejecuta un traslado interno de stock: decrementa en origen,
// incrementa en destino y registra el movimiento, todo en una sola
// transacción de BD. No genera ingreso: el stock no sale de la empresa.
//
// La insuficiencia en el origen aborta la operación completa; no queda
// crédito en destino ni registro de traslado.
func (s *Service) Transfer(ctx context.Context, employeeID string, in dto.TransferRequest) (*dto.StockTransferResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.SourceLocationID == in.DestinationLocationID {
		return nil, domain.ErrInvalidInput
	}

	source, err := s.locationRepo.GetByID(in.SourceLocationID)
	if err != nil || source == nil {
		return nil, domain.ErrNotFound
	}
	destination, err := s.locationRepo.GetByID(in.DestinationLocationID)
	if err != nil || destination == nil {
		return nil, domain.ErrNotFound
	}
	if product, err := s.productRepo.GetByID(in.ProductID); err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if employee, err := s.employeeRepo.GetByID(employeeID); err != nil || employee == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	record := &entity.StockTransfer{
		ID:                    uuid.New().String(),
		SourceLocationID:      in.SourceLocationID,
		DestinationLocationID: in.DestinationLocationID,
		ProductID:             in.ProductID,
		QuantityMoved:         in.Quantity,
		EmployeeID:            employeeID,
		Status:                entity.TransferStatusCompleted,
		TransferDate:          now,
	}

	err = s.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.TransactionRepository,
		transferRepo repository.StockTransferRepository,
		_ repository.CustomerRepository,
	) error {
		if _, err := ledger.Adjust(stockRepo, in.SourceLocationID, in.ProductID, -in.Quantity, now); err != nil {
			return err
		}
		if _, err := ledger.Adjust(stockRepo, in.DestinationLocationID, in.ProductID, in.Quantity, now); err != nil {
			return err
		}
		return transferRepo.Create(record)
	})
	if err != nil {
		log.Warn().Err(err).
			Str("source_id", in.SourceLocationID).
			Str("destination_id", in.DestinationLocationID).
			Str("product_id", in.ProductID).
			Msg("traslado rechazado")
		return nil, err
	}

	metrics.TransfersTotal.Inc()
	log.Info().
		Str("transfer_id", record.ID).
		Str("source_id", in.SourceLocationID).
		Str("destination_id", in.DestinationLocationID).
		Int64("quantity", in.Quantity).
		Msg("traslado completado")
	return toTransferResponse(record), nil
}

// ListTransfers devuelve el historial de traslados que tocan una ubicación,
// como origen o destino.
func (s *Service) ListTransfers(ctx context.Context, locationID string, page dto.PageRequest) ([]dto.StockTransferResponse, error) {
	records, err := s.transferRepo.ListByLocation(locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockTransferResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toTransferResponse(r))
	}
	return out, nil
}

func toTransferResponse(t *entity.StockTransfer) *dto.StockTransferResponse {
	return &dto.StockTransferResponse{
		ID:                    t.ID,
		SourceLocationID:      t.SourceLocationID,
		DestinationLocationID: t.DestinationLocationID,
		ProductID:             t.ProductID,
		QuantityMoved:         t.QuantityMoved,
		EmployeeID:            t.EmployeeID,
		Status:                t.Status,
		TransferDate:          t.TransferDate,
	}
}

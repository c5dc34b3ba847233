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

// Wholesale procesa una orden mayorista a un socio externo en dos fases.
//
// Fase 1 (venta): decrementa stock en origen y registra la venta con precio
// mayorista resuelto por prioridad override manual > wholesale_price del
// catálogo > retail_price. Esta fase es una venta normal del motor: atómica
// y con todas sus validaciones.
//
// Fase 2 (entrega): en una transacción separada, abona cada ítem al stock
// del socio. Si esta fase falla, la venta NO se revierte: se persiste una
// nota de conciliación por ítem y se devuelve PartialFulfillmentError para
// que el operador resuelva el hueco manualmente.
func (s *Service) Wholesale(ctx context.Context, employeeID string, in dto.WholesaleRequest) (*dto.TransactionResponse, error) {
	if in.SourceLocationID == "" || in.PartnerLocationID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	partner, err := s.locationRepo.GetByID(in.PartnerLocationID)
	if err != nil || partner == nil {
		return nil, domain.ErrNotFound
	}
	if partner.Kind != entity.LocationKindPartner {
		return nil, domain.ErrInvalidInput
	}

	// Resolver el precio mayorista de cada línea antes de vender.
	saleItems := make([]dto.SaleItemRequest, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		price := item.UnitPrice
		if price == nil {
			product, err := s.productRepo.GetByID(item.ProductID)
			if err != nil || product == nil {
				return nil, domain.ErrNotFound
			}
			resolved := product.RetailPrice
			if product.WholesalePrice.IsPositive() {
				resolved = product.WholesalePrice
			}
			price = &resolved
		}
		saleItems = append(saleItems, dto.SaleItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}

	// Fase 1: venta en origen. El socio no es "cliente" del módulo de
	// fidelización, así que no se asocia CustomerID.
	saleResp, err := s.engine.Sell(ctx, employeeID, dto.CreateSaleRequest{
		SellingLocationID: in.SourceLocationID,
		Items:             saleItems,
	})
	if err != nil {
		return nil, err
	}

	// Fase 2: abono de stock al socio.
	now := time.Now()
	err = s.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.TransactionRepository,
		_ repository.StockTransferRepository,
		_ repository.CustomerRepository,
	) error {
		for _, item := range in.Items {
			if _, err := ledger.Adjust(stockRepo, in.PartnerLocationID, item.ProductID, item.Quantity, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.recordReconciliationGap(saleResp.ID, in, err)
		metrics.WholesalePartialTotal.Inc()
		log.Error().Err(err).
			Str("transaction_id", saleResp.ID).
			Str("partner_id", in.PartnerLocationID).
			Msg("abono al socio falló; venta confirmada, nota de conciliación creada")
		return nil, &domain.PartialFulfillmentError{
			TransactionID:     saleResp.ID,
			PartnerLocationID: in.PartnerLocationID,
			Cause:             err,
		}
	}

	metrics.WholesaleOrdersTotal.Inc()
	log.Info().
		Str("transaction_id", saleResp.ID).
		Str("partner_id", in.PartnerLocationID).
		Str("total", saleResp.TotalAmount.StringFixed(2)).
		Msg("orden mayorista completada")
	return saleResp, nil
}

// recordReconciliationGap persiste una nota pendiente por cada ítem no
// abonado. Usa el repositorio atado al pool: debe sobrevivir al rollback de
// la fase de entrega. Un fallo aquí solo se loguea; la venta ya confirmó y
// el PartialFulfillmentError sale igual hacia el caller.
func (s *Service) recordReconciliationGap(transactionID string, in dto.WholesaleRequest, cause error) {
	now := time.Now()
	for _, item := range in.Items {
		note := &entity.ReconciliationNote{
			ID:                uuid.New().String(),
			TransactionID:     transactionID,
			PartnerLocationID: in.PartnerLocationID,
			ProductID:         item.ProductID,
			Quantity:          item.Quantity,
			Reason:            cause.Error(),
			Status:            entity.ReconciliationStatusPending,
			CreatedAt:         now,
		}
		if err := s.reconRepo.Create(note); err != nil {
			log.Error().Err(err).
				Str("transaction_id", transactionID).
				Str("product_id", item.ProductID).
				Msg("no se pudo persistir la nota de conciliación")
		}
	}
}

// PendingReconciliations lista las notas de conciliación sin resolver.
func (s *Service) PendingReconciliations(ctx context.Context, page dto.PageRequest) ([]dto.ReconciliationNoteResponse, error) {
	notes, err := s.reconRepo.ListPending(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReconciliationNoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, dto.ReconciliationNoteResponse{
			ID:                n.ID,
			TransactionID:     n.TransactionID,
			PartnerLocationID: n.PartnerLocationID,
			ProductID:         n.ProductID,
			Quantity:          n.Quantity,
			Reason:            n.Reason,
			Status:            n.Status,
			CreatedAt:         n.CreatedAt,
			ResolvedAt:        n.ResolvedAt,
		})
	}
	return out, nil
}

// ResolveReconciliation marca una nota como resuelta tras la intervención
// manual del operador.
func (s *Service) ResolveReconciliation(ctx context.Context, noteID string) error {
	if noteID == "" {
		return domain.ErrInvalidInput
	}
	return s.reconRepo.Resolve(noteID)
}

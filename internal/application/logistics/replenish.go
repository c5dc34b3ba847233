package logistics

import (
	"context"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// Replenish enruta una reposición según el tipo de la ubicación destino:
// tienda propia → traslados internos (uno por ítem, sin ingreso); socio
// externo → una orden mayorista (venta con entrega). El caller no necesita
// saber de quién es el destino.
func (s *Service) Replenish(ctx context.Context, employeeID string, in dto.ReplenishRequest) (*dto.ReplenishmentResponse, error) {
	if in.SourceLocationID == "" || in.TargetLocationID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	target, err := s.locationRepo.GetByID(in.TargetLocationID)
	if err != nil || target == nil {
		return nil, domain.ErrNotFound
	}

	switch target.Kind {
	case entity.LocationKindStore:
		// Movimiento interno: un traslado por ítem, cada uno atómico por
		// separado. Un ítem insuficiente no deshace los anteriores.
		transfers := make([]dto.StockTransferResponse, 0, len(in.Items))
		for _, item := range in.Items {
			resp, err := s.Transfer(ctx, employeeID, dto.TransferRequest{
				ProductID:             item.ProductID,
				SourceLocationID:      in.SourceLocationID,
				DestinationLocationID: in.TargetLocationID,
				Quantity:              item.Quantity,
			})
			if err != nil {
				return nil, err
			}
			transfers = append(transfers, *resp)
		}
		return &dto.ReplenishmentResponse{
			Type:      dto.ReplenishmentTypeTransfer,
			Transfers: transfers,
		}, nil

	case entity.LocationKindPartner:
		tx, err := s.Wholesale(ctx, employeeID, dto.WholesaleRequest{
			SourceLocationID:  in.SourceLocationID,
			PartnerLocationID: in.TargetLocationID,
			Items:             in.Items,
		})
		if err != nil {
			return nil, err
		}
		return &dto.ReplenishmentResponse{
			Type:        dto.ReplenishmentTypeSale,
			Transaction: tx,
		}, nil

	default:
		return nil, domain.ErrUnknownLocationKind
	}
}

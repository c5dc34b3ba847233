// Package reports contiene los accesores de solo lectura que consumen los
// colaboradores externos (analítica, pronóstico de demanda, recomendaciones).
// Ninguna consulta de este paquete muta el ledger ni las transacciones.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

const defaultTopProducts = 5   // productos en el widget de más vendidos
const defaultRecentTxCount = 10 // transacciones recientes en el reporte diario

// UseCase consultas de reporte sobre el ledger y las ventas.
type UseCase struct {
	reportingRepo repository.ReportingRepository
	stockRepo     repository.StockRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(reportingRepo repository.ReportingRepository, stockRepo repository.StockRepository) *UseCase {
	return &UseCase{reportingRepo: reportingRepo, stockRepo: stockRepo}
}

// DailyReport arma el reporte del día de una ubicación: estadísticas
// agregadas más las transacciones recientes.
//
// Dos consultas en paralelo:
//  1. GetDailySalesStats(hoy)  → ingreso y conteo del día
//  2. GetRecentTransactions    → últimas transacciones completadas
func (uc *UseCase) DailyReport(ctx context.Context, locationID string) (*dto.DailyReportDTO, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	type statsResult struct {
		stats *repository.DailySalesResult
		err   error
	}
	type recentResult struct {
		rows []repository.RecentTransactionResult
		err  error
	}

	statsCh := make(chan statsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		stats, err := uc.reportingRepo.GetDailySalesStats(ctx, locationID, now)
		statsCh <- statsResult{stats, err}
	}()
	go func() {
		rows, err := uc.reportingRepo.GetRecentTransactions(ctx, locationID, defaultRecentTxCount)
		recentCh <- recentResult{rows, err}
	}()

	stats := <-statsCh
	recent := <-recentCh

	if stats.err != nil {
		return nil, fmt.Errorf("reporte diario: estadísticas: %w", stats.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("reporte diario: transacciones recientes: %w", recent.err)
	}

	report := &dto.DailyReportDTO{
		Stats: dto.DailySalesDTO{
			TotalRevenue: stats.stats.TotalRevenue.Round(2),
			TxCount:      stats.stats.TxCount,
		},
		Recent: make([]dto.RecentTransactionDTO, 0, len(recent.rows)),
	}
	for _, r := range recent.rows {
		report.Recent = append(report.Recent, dto.RecentTransactionDTO{
			TransactionID: r.TransactionID,
			TotalAmount:   r.TotalAmount.Round(2),
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
			ItemCount:     r.ItemCount,
		})
	}
	return report, nil
}

// SalesOverTime devuelve la serie de ventas por día en el rango dado.
func (uc *UseCase) SalesOverTime(ctx context.Context, locationID string, from, to time.Time) ([]dto.SalesPointDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportingRepo.GetSalesOverTime(ctx, locationID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesPointDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesPointDTO{
			Date:    r.Date.Format("2006-01-02"),
			Revenue: r.Revenue.Round(2),
			TxCount: r.TxCount,
		})
	}
	return out, nil
}

// TopProducts devuelve los productos más vendidos por unidades.
func (uc *UseCase) TopProducts(ctx context.Context, locationID string, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	rows, err := uc.reportingRepo.GetTopProducts(ctx, locationID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
		})
	}
	return out, nil
}

// RevenueByLocation devuelve el ingreso acumulado agrupado por ubicación.
func (uc *UseCase) RevenueByLocation(ctx context.Context) ([]dto.LocationRevenueDTO, error) {
	rows, err := uc.reportingRepo.GetRevenueByLocation(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationRevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LocationRevenueDTO{
			LocationID:   r.LocationID,
			LocationName: r.LocationName,
			Revenue:      r.Revenue.Round(2),
		})
	}
	return out, nil
}

// InventoryByLocation devuelve el inventario completo de una ubicación con
// nombre de producto y categoría resueltos.
func (uc *UseCase) InventoryByLocation(ctx context.Context, locationID string) ([]dto.InventoryRowDTO, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportingRepo.GetInventoryByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryRowDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			CurrentStock: r.CurrentStock,
			ReorderPoint: r.ReorderPoint,
		})
	}
	return out, nil
}

// CurrentStock devuelve el nivel de stock de (ubicación, producto). Una fila
// inexistente se reporta como cero, igual que la ve el ledger.
func (uc *UseCase) CurrentStock(ctx context.Context, locationID, productID string) (*entity.StockLevel, error) {
	if locationID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(locationID, productID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = &entity.StockLevel{
			LocationID:   locationID,
			ProductID:    productID,
			CurrentStock: 0,
			ReorderPoint: entity.DefaultReorderPoint,
		}
	}
	return stock, nil
}

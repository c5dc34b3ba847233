package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlmendieta/POS-APEX/internal/application/apptest"
	"github.com/axlmendieta/POS-APEX/internal/application/reports"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// fakeReporting doble del repositorio de reportes con resultados fijos.
type fakeReporting struct {
	stats  repository.DailySalesResult
	recent []repository.RecentTransactionResult
	series []repository.SalesPointResult
	err    error
}

func (f *fakeReporting) GetDailySalesStats(ctx context.Context, locationID string, day time.Time) (*repository.DailySalesResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	stats := f.stats
	return &stats, nil
}

func (f *fakeReporting) GetSalesOverTime(ctx context.Context, locationID string, from, to time.Time) ([]repository.SalesPointResult, error) {
	return f.series, f.err
}

func (f *fakeReporting) GetTopProducts(ctx context.Context, locationID string, limit int) ([]repository.TopProductResult, error) {
	return nil, f.err
}

func (f *fakeReporting) GetRevenueByLocation(ctx context.Context) ([]repository.LocationRevenueResult, error) {
	return nil, f.err
}

func (f *fakeReporting) GetRecentTransactions(ctx context.Context, locationID string, limit int) ([]repository.RecentTransactionResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recent, nil
}

func (f *fakeReporting) GetInventoryByLocation(ctx context.Context, locationID string) ([]repository.InventoryRowResult, error) {
	return nil, f.err
}

// El reporte diario combina las dos consultas paralelas en un solo DTO.
func TestDailyReport_CombinaEstadisticasYRecientes(t *testing.T) {
	fake := &fakeReporting{
		stats: repository.DailySalesResult{
			TotalRevenue: decimal.NewFromFloat(1234.567),
			TxCount:      12,
		},
		recent: []repository.RecentTransactionResult{
			{TransactionID: "tx-1", TotalAmount: decimal.NewFromInt(250), CreatedAt: time.Now(), ItemCount: 2},
		},
	}
	uc := reports.NewUseCase(fake, apptest.NewStore().StockRepo())

	report, err := uc.DailyReport(context.Background(), "loc-tienda")
	require.NoError(t, err)

	assert.True(t, report.Stats.TotalRevenue.Equal(decimal.NewFromFloat(1234.57)), "el ingreso se redondea a 2 decimales")
	assert.Equal(t, int64(12), report.Stats.TxCount)
	require.Len(t, report.Recent, 1)
	assert.Equal(t, "tx-1", report.Recent[0].TransactionID)
	assert.Equal(t, int64(2), report.Recent[0].ItemCount)
}

func TestDailyReport_PropagaErrorDeConsulta(t *testing.T) {
	fake := &fakeReporting{err: errors.New("conexión perdida")}
	uc := reports.NewUseCase(fake, apptest.NewStore().StockRepo())

	_, err := uc.DailyReport(context.Background(), "loc-tienda")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reporte diario")
}

func TestDailyReport_SinUbicacion(t *testing.T) {
	uc := reports.NewUseCase(&fakeReporting{}, apptest.NewStore().StockRepo())
	_, err := uc.DailyReport(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un rango invertido es entrada inválida, no una serie vacía.
func TestSalesOverTime_RangoInvertido(t *testing.T) {
	uc := reports.NewUseCase(&fakeReporting{}, apptest.NewStore().StockRepo())
	from := time.Now()
	to := from.Add(-24 * time.Hour)

	_, err := uc.SalesOverTime(context.Background(), "loc-tienda", from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesOverTime_FormateaFechas(t *testing.T) {
	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	fake := &fakeReporting{
		series: []repository.SalesPointResult{
			{Date: day, Revenue: decimal.NewFromInt(100), TxCount: 3},
		},
	}
	uc := reports.NewUseCase(fake, apptest.NewStore().StockRepo())

	series, err := uc.SalesOverTime(context.Background(), "loc-tienda", day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "2026-08-27", series[0].Date)
}

// El stock de una fila inexistente se reporta como cero con el punto de
// reorden por defecto, igual que lo ve el ledger.
func TestCurrentStock_FilaInexistenteReportaCero(t *testing.T) {
	store := apptest.NewStore()
	uc := reports.NewUseCase(&fakeReporting{}, store.StockRepo())

	stock, err := uc.CurrentStock(context.Background(), "loc-tienda", "prod-cafe")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock.CurrentStock)
	assert.Equal(t, entity.DefaultReorderPoint, stock.ReorderPoint)
}

func TestCurrentStock_FilaExistente(t *testing.T) {
	store := apptest.NewStore()
	store.SetStock("loc-tienda", "prod-cafe", 42)
	uc := reports.NewUseCase(&fakeReporting{}, store.StockRepo())

	stock, err := uc.CurrentStock(context.Background(), "loc-tienda", "prod-cafe")
	require.NoError(t, err)
	assert.Equal(t, int64(42), stock.CurrentStock)
}

package logistics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlmendieta/POS-APEX/internal/application/apptest"
	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/application/logistics"
	"github.com/axlmendieta/POS-APEX/internal/application/sales"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Logística: traslados internos atómicos, órdenes mayoristas en dos fases y
// el enrutador de reposición por tipo de destino. El caso crítico es la saga
// mayorista: la venta confirma aunque el abono al socio falle.
// ──────────────────────────────────────────────────────────────────────────────

const (
	bodegaID   = "loc-bodega"
	tiendaID   = "loc-tienda"
	socioID    = "loc-socio"
	productoID = "prod-cafe"
	kamID      = "emp-kam"
)

func newFixture(t *testing.T) (*apptest.Store, *logistics.Service) {
	t.Helper()
	store := apptest.NewStore()

	store.AddLocation(&entity.Location{ID: bodegaID, Name: "Bodega Central", Kind: entity.LocationKindWarehouse})
	store.AddLocation(&entity.Location{ID: tiendaID, Name: "Tienda Centro", Kind: entity.LocationKindStore})
	store.AddLocation(&entity.Location{ID: socioID, Name: "Distribuidora Norte", Kind: entity.LocationKindPartner})

	store.AddProduct(&entity.Product{
		ID:             productoID,
		Name:           "Café Molido 500g",
		RetailPrice:    decimal.NewFromInt(10),
		WholesalePrice: decimal.NewFromInt(8),
		CostPrice:      decimal.NewFromInt(6),
	})

	// El KAM opera desde la bodega y tiene alcance de venta sobre ella.
	store.AddEmployee(&entity.Employee{ID: kamID, Username: "kam", Role: entity.RoleKAM, AssignedLocationID: bodegaID})

	engine := sales.NewEngine(
		store.TxRunner(),
		store.ProductRepo(),
		store.LocationRepo(),
		store.EmployeeRepo(),
		store.TransactionRepo(),
	)
	svc := logistics.NewService(
		store.TxRunner(),
		engine,
		store.LocationRepo(),
		store.ProductRepo(),
		store.EmployeeRepo(),
		store.TransferRepo(),
		store.ReconRepo(),
	)
	return store, svc
}

// ──────────────────────────────────────────────────────────────────────────────
// Transfer
// ──────────────────────────────────────────────────────────────────────────────

// Traslado interno: decremento en origen, incremento en destino y registro
// de auditoría, sin ingreso.
func TestTransfer_MueveStockYRegistra(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 100)

	resp, err := svc.Transfer(context.Background(), kamID, dto.TransferRequest{
		ProductID:             productoID,
		SourceLocationID:      bodegaID,
		DestinationLocationID: tiendaID,
		Quantity:              30,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(70), store.StockOf(bodegaID, productoID))
	assert.Equal(t, int64(30), store.StockOf(tiendaID, productoID))
	assert.Equal(t, entity.TransferStatusCompleted, resp.Status)
	assert.Equal(t, int64(30), resp.QuantityMoved)

	require.Len(t, store.Transfers(), 1)
	assert.Equal(t, 0, store.TransactionCount(), "un traslado interno no genera venta")
}

// Insuficiencia en origen: no queda crédito en destino ni registro.
func TestTransfer_InsuficienteEnOrigen_SinArtefactos(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 10)

	_, err := svc.Transfer(context.Background(), kamID, dto.TransferRequest{
		ProductID:             productoID,
		SourceLocationID:      bodegaID,
		DestinationLocationID: tiendaID,
		Quantity:              11,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), store.StockOf(bodegaID, productoID))
	assert.Equal(t, int64(0), store.StockOf(tiendaID, productoID))
	assert.Empty(t, store.Transfers())
}

func TestTransfer_MismoOrigenYDestino(t *testing.T) {
	_, svc := newFixture(t)
	_, err := svc.Transfer(context.Background(), kamID, dto.TransferRequest{
		ProductID:             productoID,
		SourceLocationID:      bodegaID,
		DestinationLocationID: bodegaID,
		Quantity:              5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListTransfers_FiltraPorUbicacion(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 100)
	ctx := context.Background()

	_, err := svc.Transfer(ctx, kamID, dto.TransferRequest{
		ProductID: productoID, SourceLocationID: bodegaID, DestinationLocationID: tiendaID, Quantity: 10,
	})
	require.NoError(t, err)

	list, err := svc.ListTransfers(ctx, tiendaID, dto.PageRequest{Limit: 20})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tiendaID, list[0].DestinationLocationID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Wholesale
// ──────────────────────────────────────────────────────────────────────────────

// Orden mayorista feliz: 100 unidades con wholesale_price $8 (retail $10)
// debe facturar $800, decrementar el origen y abonar el socio.
func TestWholesale_PrecioMayoristaYAbono(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 500)

	resp, err := svc.Wholesale(context.Background(), kamID, dto.WholesaleRequest{
		SourceLocationID:  bodegaID,
		PartnerLocationID: socioID,
		Items:             []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 100}},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(800)),
		"total esperado 800 (precio mayorista), fue %s", resp.TotalAmount)
	require.Len(t, resp.Details, 1)
	assert.True(t, resp.Details[0].UnitPrice.Equal(decimal.NewFromInt(8)))

	assert.Equal(t, int64(400), store.StockOf(bodegaID, productoID))
	assert.Equal(t, int64(100), store.StockOf(socioID, productoID), "el socio recibe el abono")
	assert.Empty(t, store.Notes(), "sin fallo no hay notas de conciliación")
}

// Override manual del precio por línea: prevalece sobre el catálogo.
func TestWholesale_OverrideManualDePrecio(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 500)
	precio := decimal.NewFromFloat(7.50)

	resp, err := svc.Wholesale(context.Background(), kamID, dto.WholesaleRequest{
		SourceLocationID:  bodegaID,
		PartnerLocationID: socioID,
		Items:             []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 10, UnitPrice: &precio}},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(75)))
}

// Sin precio mayorista en el catálogo se cae al precio retail.
func TestWholesale_SinPrecioMayorista_UsaRetail(t *testing.T) {
	store, svc := newFixture(t)
	soloRetailID := "prod-agua"
	store.AddProduct(&entity.Product{ID: soloRetailID, Name: "Agua Mineral", RetailPrice: decimal.NewFromInt(2)})
	store.SetStock(bodegaID, soloRetailID, 500)

	resp, err := svc.Wholesale(context.Background(), kamID, dto.WholesaleRequest{
		SourceLocationID:  bodegaID,
		PartnerLocationID: socioID,
		Items:             []dto.ReplenishItemRequest{{ProductID: soloRetailID, Quantity: 10}},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(20)))
}

// El destino de una orden mayorista tiene que ser un socio.
func TestWholesale_DestinoNoSocio(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 500)

	_, err := svc.Wholesale(context.Background(), kamID, dto.WholesaleRequest{
		SourceLocationID:  bodegaID,
		PartnerLocationID: tiendaID,
		Items:             []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(500), store.StockOf(bodegaID, productoID))
}

// Fase 1 insuficiente: la orden completa se rechaza sin artefactos, como
// cualquier venta.
func TestWholesale_StockInsuficienteEnOrigen(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 50)

	_, err := svc.Wholesale(context.Background(), kamID, dto.WholesaleRequest{
		SourceLocationID:  bodegaID,
		PartnerLocationID: socioID,
		Items:             []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 100}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(50), store.StockOf(bodegaID, productoID))
	assert.Equal(t, 0, store.TransactionCount())
	assert.Empty(t, store.Notes())
}

// Saga en dos fases: si el abono al socio falla, la venta NO se revierte.
// Queda la transacción confirmada, el stock de origen decrementado, una
// nota de conciliación pendiente por ítem y un PartialFulfillmentError con
// el ID de la venta.
func TestWholesale_AbonoFalla_VentaConfirmadaYNotaPendiente(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 500)
	store.FailStockWriteAt = socioID

	_, err := svc.Wholesale(context.Background(), kamID, dto.WholesaleRequest{
		SourceLocationID:  bodegaID,
		PartnerLocationID: socioID,
		Items:             []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 100}},
	})
	require.ErrorIs(t, err, domain.ErrPartialFulfillment)

	var partial *domain.PartialFulfillmentError
	require.ErrorAs(t, err, &partial)
	assert.NotEmpty(t, partial.TransactionID)
	assert.Equal(t, socioID, partial.PartnerLocationID)

	// La venta de la fase 1 queda confirmada.
	assert.Equal(t, int64(400), store.StockOf(bodegaID, productoID))
	assert.Equal(t, 1, store.TransactionCount())

	// El socio no recibió nada.
	assert.Equal(t, int64(0), store.StockOf(socioID, productoID))

	// Nota de conciliación pendiente con el hueco exacto.
	require.Len(t, store.Notes(), 1)
	note := store.Notes()[0]
	assert.Equal(t, partial.TransactionID, note.TransactionID)
	assert.Equal(t, socioID, note.PartnerLocationID)
	assert.Equal(t, productoID, note.ProductID)
	assert.Equal(t, int64(100), note.Quantity)
	assert.Equal(t, entity.ReconciliationStatusPending, note.Status)
}

// El ciclo completo de conciliación: listar pendientes y resolver.
func TestReconciliation_ListarYResolver(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 500)
	store.FailStockWriteAt = socioID
	ctx := context.Background()

	_, err := svc.Wholesale(ctx, kamID, dto.WholesaleRequest{
		SourceLocationID:  bodegaID,
		PartnerLocationID: socioID,
		Items:             []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 10}},
	})
	require.ErrorIs(t, err, domain.ErrPartialFulfillment)

	pending, err := svc.PendingReconciliations(ctx, dto.PageRequest{Limit: 20})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, svc.ResolveReconciliation(ctx, pending[0].ID))

	pending, err = svc.PendingReconciliations(ctx, dto.PageRequest{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, pending, "la nota resuelta sale de la lista de pendientes")

	// Resolver dos veces falla: la nota ya no está pendiente.
	assert.ErrorIs(t, svc.ResolveReconciliation(ctx, store.Notes()[0].ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Replenish — enrutador por tipo de destino
// ──────────────────────────────────────────────────────────────────────────────

// Destino tienda: un traslado interno por ítem, sin venta.
func TestReplenish_TiendaGeneraTraslados(t *testing.T) {
	store, svc := newFixture(t)
	otroID := "prod-agua"
	store.AddProduct(&entity.Product{ID: otroID, Name: "Agua Mineral", RetailPrice: decimal.NewFromInt(2)})
	store.SetStock(bodegaID, productoID, 100)
	store.SetStock(bodegaID, otroID, 100)

	resp, err := svc.Replenish(context.Background(), kamID, dto.ReplenishRequest{
		SourceLocationID: bodegaID,
		TargetLocationID: tiendaID,
		Items: []dto.ReplenishItemRequest{
			{ProductID: productoID, Quantity: 20},
			{ProductID: otroID, Quantity: 30},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.ReplenishmentTypeTransfer, resp.Type)
	require.Len(t, resp.Transfers, 2)
	assert.Nil(t, resp.Transaction)

	assert.Equal(t, int64(20), store.StockOf(tiendaID, productoID))
	assert.Equal(t, int64(30), store.StockOf(tiendaID, otroID))
	assert.Equal(t, 0, store.TransactionCount(), "reponer una tienda propia no genera ingreso")
}

// Destino socio: una única orden mayorista con ingreso.
func TestReplenish_SocioGeneraVentaMayorista(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(bodegaID, productoID, 500)

	resp, err := svc.Replenish(context.Background(), kamID, dto.ReplenishRequest{
		SourceLocationID: bodegaID,
		TargetLocationID: socioID,
		Items:            []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 100}},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.ReplenishmentTypeSale, resp.Type)
	require.NotNil(t, resp.Transaction)
	assert.True(t, resp.Transaction.TotalAmount.Equal(decimal.NewFromInt(800)))
	assert.Empty(t, resp.Transfers)
	assert.Equal(t, int64(100), store.StockOf(socioID, productoID))
}

// Cualquier otro tipo de destino (incluida la bodega) no es enrutable.
func TestReplenish_DestinoBodega_TipoDesconocido(t *testing.T) {
	store, svc := newFixture(t)
	store.SetStock(tiendaID, productoID, 100)

	_, err := svc.Replenish(context.Background(), kamID, dto.ReplenishRequest{
		SourceLocationID: tiendaID,
		TargetLocationID: bodegaID,
		Items:            []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownLocationKind)
	assert.Equal(t, int64(100), store.StockOf(tiendaID, productoID))
}

func TestReplenish_DestinoInexistente(t *testing.T) {
	_, svc := newFixture(t)
	_, err := svc.Replenish(context.Background(), kamID, dto.ReplenishRequest{
		SourceLocationID: bodegaID,
		TargetLocationID: "loc-fantasma",
		Items:            []dto.ReplenishItemRequest{{ProductID: productoID, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

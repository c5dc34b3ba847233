package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlmendieta/POS-APEX/internal/application/apptest"
	"github.com/axlmendieta/POS-APEX/internal/application/ledger"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Adjust es la única puerta de mutación del contador de stock: estos tests
// cubren la creación perezosa de filas y el rechazo de resultados negativos.
// ──────────────────────────────────────────────────────────────────────────────

const (
	locID  = "loc-1"
	prodID = "prod-1"
)

// La primera mutación sobre un par (ubicación, producto) sin fila crea una
// con stock 0 y el punto de reorden por defecto, y luego aplica el delta.
func TestAdjust_CreaFilaPerezosamente(t *testing.T) {
	store := apptest.NewStore()
	repo := store.StockRepo()

	level, err := ledger.Adjust(repo, locID, prodID, 25, time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(25), level.CurrentStock)
	assert.Equal(t, entity.DefaultReorderPoint, level.ReorderPoint)
	assert.Equal(t, int64(25), store.StockOf(locID, prodID))
}

// Un delta que dejaría el stock negativo falla sin persistir nada; el error
// lleva el estado actual y el delta solicitado.
func TestAdjust_RechazaResultadoNegativo(t *testing.T) {
	store := apptest.NewStore()
	store.SetStock(locID, prodID, 10)
	repo := store.StockRepo()

	_, err := ledger.Adjust(repo, locID, prodID, -11, time.Now())
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, locID, insufficient.LocationID)
	assert.Equal(t, prodID, insufficient.ProductID)
	assert.Equal(t, int64(10), insufficient.CurrentStock)
	assert.Equal(t, int64(-11), insufficient.RequestedDelta)

	assert.Equal(t, int64(10), store.StockOf(locID, prodID), "el stock no debe cambiar")
}

// Drenar el stock exactamente a cero es válido; la fila persiste.
func TestAdjust_PermiteLlegarACero(t *testing.T) {
	store := apptest.NewStore()
	store.SetStock(locID, prodID, 10)
	repo := store.StockRepo()

	level, err := ledger.Adjust(repo, locID, prodID, -10, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), level.CurrentStock)

	// La fila cero sigue existiendo y admite ajustes posteriores.
	level, err = ledger.Adjust(repo, locID, prodID, 3, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), level.CurrentStock)
}

// Dos abonos sucesivos sobre un par sin fila previa se acumulan: la fila se
// materializa con el primero y el segundo parte del valor ya escrito, nunca
// de cero.
func TestAdjust_AbonosSucesivosSobreFilaNueva(t *testing.T) {
	store := apptest.NewStore()
	repo := store.StockRepo()
	now := time.Now()

	_, err := ledger.Adjust(repo, locID, prodID, 10, now)
	require.NoError(t, err)
	level, err := ledger.Adjust(repo, locID, prodID, 20, now)
	require.NoError(t, err)

	assert.Equal(t, int64(30), level.CurrentStock)
	assert.Equal(t, int64(30), store.StockOf(locID, prodID))
}

// Sobre una fila inexistente solo son válidos los deltas positivos.
func TestAdjust_DecrementoSinFila(t *testing.T) {
	store := apptest.NewStore()
	_, err := ledger.Adjust(store.StockRepo(), locID, prodID, -1, time.Now())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

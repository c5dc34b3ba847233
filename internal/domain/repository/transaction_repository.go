package repository

import (
	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction y
// sus líneas de detalle. Las mutaciones se usan siempre dentro de una
// transacción de BD (vía TxRunner); las lecturas admiten pool o tx.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	CreateDetail(detail *entity.TransactionDetail) error
	// GetByID devuelve la cabecera con sus detalles en orden de inserción.
	GetByID(id string) (*entity.Transaction, error)
	// GetByIDForUpdate devuelve la cabecera bloqueada (SELECT FOR UPDATE) con
	// sus detalles. Solo dentro de una transacción de BD: las mutaciones de
	// estado y total deben decidirse sobre esta lectura, nunca sobre una
	// lectura previa del pool.
	GetByIDForUpdate(id string) (*entity.Transaction, error)
	UpdateStatus(id, status string) error
	UpdateTotal(id string, total decimal.Decimal) error
	UpdateDetailQuantity(detailID string, quantity int64) error
	DeleteDetail(detailID string) error
}

// StockTransferRepository define el puerto para el registro append-only de
// traslados internos.
type StockTransferRepository interface {
	Create(transfer *entity.StockTransfer) error
	ListByLocation(locationID string, limit, offset int) ([]*entity.StockTransfer, error)
}

// ReconciliationRepository persistencia de notas de conciliación de órdenes
// mayoristas (fase de abono fallida).
type ReconciliationRepository interface {
	Create(note *entity.ReconciliationNote) error
	ListPending(limit, offset int) ([]*entity.ReconciliationNote, error)
	Resolve(id string) error
}

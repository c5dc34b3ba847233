package ledger

import (
	"context"

	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que los ajustes de stock y las
// escrituras de transacciones/traslados confirmen o se descarten juntos:
// el ledger no hace commit por sí mismo, el caller controla la frontera.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		txRepo repository.TransactionRepository,
		transferRepo repository.StockTransferRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

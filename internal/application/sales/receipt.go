package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// ReceiptLine línea de venta con el nombre de producto ya resuelto, lista
// para renderizar.
type ReceiptLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// ReceiptRenderer renderiza el recibo de una venta a bytes (PDF).
type ReceiptRenderer interface {
	RenderReceipt(tx *entity.Transaction, location *entity.Location, lines []ReceiptLine) ([]byte, error)
}

// ReceiptUseCase arma los datos del recibo de una transacción y delega el
// render al generador PDF.
type ReceiptUseCase struct {
	txRepo       repository.TransactionRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	renderer     ReceiptRenderer
}

// NewReceiptUseCase construye el caso de uso de recibos.
func NewReceiptUseCase(
	txRepo repository.TransactionRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	renderer ReceiptRenderer,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRepo:       txRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		renderer:     renderer,
	}
}

// Generate genera el PDF del recibo de la transacción indicada.
func (uc *ReceiptUseCase) Generate(ctx context.Context, transactionID string) ([]byte, error) {
	tx, err := uc.txRepo.GetByID(transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(tx.SellingLocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]ReceiptLine, 0, len(tx.Details))
	for _, d := range tx.Details {
		name := d.ProductID
		if product, err := uc.productRepo.GetByID(d.ProductID); err == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			LineTotal:   d.LineTotal(),
		})
	}
	return uc.renderer.RenderReceipt(tx, location, lines)
}

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrNotAuthorized       = errors.New("no autorizado")
	ErrInvalidRole         = errors.New("rol inválido para el tipo de ubicación")
	ErrInvalidState        = errors.New("operación inválida para el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUnknownLocationKind = errors.New("tipo de ubicación desconocido")
	ErrPartialFulfillment  = errors.New("venta confirmada, entrega pendiente de conciliación")
	ErrUserNotFound        = errors.New("usuario no encontrado")
)

// InsufficientStockError lleva los identificadores del rechazo: en qué
// ubicación, qué producto, cuánto había y cuánto se pidió mover. El caller
// no debe reintentar sin cambiar la cantidad.
type InsufficientStockError struct {
	LocationID     string
	ProductID      string
	CurrentStock   int64
	RequestedDelta int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: producto %s en ubicación %s (actual %d, delta solicitado %d)",
		e.ProductID, e.LocationID, e.CurrentStock, e.RequestedDelta)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// PartialFulfillmentError señala el único modo de fallo aceptado sin
// rollback total: la fase de venta de una orden mayorista confirmó, pero el
// abono de stock al socio falló. Se persiste una nota de conciliación y el
// operador interviene manualmente.
type PartialFulfillmentError struct {
	TransactionID     string
	PartnerLocationID string
	Cause             error
}

func (e *PartialFulfillmentError) Error() string {
	return fmt.Sprintf("orden mayorista %s: venta confirmada pero abono al socio %s falló: %v",
		e.TransactionID, e.PartnerLocationID, e.Cause)
}

// Unwrap permite errors.Is(err, ErrPartialFulfillment).
func (e *PartialFulfillmentError) Unwrap() error { return ErrPartialFulfillment }

package entity

import "time"

// Tipos de ubicación válidos. El tipo es inmutable después de la creación:
// no existe operación de reclasificación.
const (
	LocationKindWarehouse = "warehouse" // bodega central / HQ
	LocationKindStore     = "store"     // tienda propia
	LocationKindPartner   = "partner"   // socio mayorista externo
)

// Location representa una ubicación física que mantiene stock propio:
// la bodega central, una tienda propia o un socio mayorista.
type Location struct {
	ID          string
	Name        string
	Kind        string // warehouse, store, partner
	Address     string
	TaxID       string
	ContactInfo string
	CreatedAt   time.Time
}

// ValidLocationKind verifica que el tipo pertenezca al conjunto cerrado.
func ValidLocationKind(kind string) bool {
	switch kind {
	case LocationKindWarehouse, LocationKindStore, LocationKindPartner:
		return true
	}
	return false
}

// Package authz implementa la matriz de autorización por rol y ubicación
// como funciones puras sobre el conjunto cerrado de roles. Toda decisión se
// resuelve aquí, tabla en mano, antes de cualquier mutación del ledger.
package authz

import (
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// rolesByLocationKind roles admisibles según el tipo de la ubicación destino
// (provisión de usuarios).
var rolesByLocationKind = map[string][]string{
	entity.LocationKindWarehouse: {entity.RoleSuperAdmin, entity.RoleLogisticsManager, entity.RoleKAM},
	entity.LocationKindStore:     {entity.RoleBranchManager, entity.RoleInternalCashier},
	entity.LocationKindPartner:   {entity.RolePartnerOwner, entity.RoleExternalCashier},
}

// CanOverride decide si el actor puede ejecutar una operación de clase
// override (cancelar, anular líneas, borrar producto) sobre la ubicación
// destino.
//
//   - super_admin: autorizado para cualquier ubicación, sin condiciones.
//   - branch_manager / partner_owner: solo sobre su propia ubicación.
//   - cualquier otro rol: nunca.
func CanOverride(actor *entity.Employee, targetLocationID string) error {
	if actor == nil {
		return domain.ErrNotAuthorized
	}
	switch actor.Role {
	case entity.RoleSuperAdmin:
		return nil
	case entity.RoleBranchManager, entity.RolePartnerOwner:
		if targetLocationID != "" && actor.AssignedLocationID != targetLocationID {
			return domain.ErrNotAuthorized
		}
		return nil
	default:
		return domain.ErrNotAuthorized
	}
}

// CanSell decide si el actor puede crear una venta en la ubicación dada.
// Los roles de cajero (y cualquier rol con ubicación asignada) solo venden
// en su propia ubicación; super_admin vende en cualquiera.
func CanSell(actor *entity.Employee, sellingLocationID string) error {
	if actor == nil {
		return domain.ErrNotAuthorized
	}
	if actor.Role == entity.RoleSuperAdmin {
		return nil
	}
	if actor.AssignedLocationID == "" || actor.AssignedLocationID != sellingLocationID {
		return domain.ErrNotAuthorized
	}
	return nil
}

// CanCreateUser decide si el creador puede provisionar un empleado con
// newRole en la ubicación destino. Orden de evaluación: despacho por rol del
// creador → chequeo de alcance → validez rol-vs-tipo de ubicación.
func CanCreateUser(creator *entity.Employee, target *entity.Location, newRole string) error {
	if creator == nil || target == nil {
		return domain.ErrNotAuthorized
	}
	switch creator.Role {
	case entity.RoleSuperAdmin:
		// Sin chequeo de alcance; solo validez del rol para el tipo destino.
		return roleValidForKind(target.Kind, newRole)

	case entity.RoleBranchManager:
		if creator.AssignedLocationID != target.ID {
			return domain.ErrNotAuthorized
		}
		if newRole != entity.RoleInternalCashier {
			return domain.ErrNotAuthorized
		}
		if target.Kind != entity.LocationKindStore {
			return domain.ErrInvalidRole
		}
		return nil

	case entity.RolePartnerOwner:
		if creator.AssignedLocationID != target.ID {
			return domain.ErrNotAuthorized
		}
		if newRole != entity.RoleExternalCashier {
			return domain.ErrNotAuthorized
		}
		if target.Kind != entity.LocationKindPartner {
			return domain.ErrInvalidRole
		}
		return nil

	default:
		return domain.ErrNotAuthorized
	}
}

func roleValidForKind(kind, role string) error {
	allowed, ok := rolesByLocationKind[kind]
	if !ok {
		return domain.ErrUnknownLocationKind
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return domain.ErrInvalidRole
}

package entity

import "time"

// Roles válidos para Employee (conjunto cerrado).
const (
	RoleSuperAdmin       = "super_admin"       // acceso global
	RoleLogisticsManager = "logistics_manager" // bodega
	RoleKAM              = "kam"               // key account manager, bodega
	RoleBranchManager    = "branch_manager"    // tienda propia
	RoleInternalCashier  = "internal_cashier"  // tienda propia, solo ventas
	RolePartnerOwner     = "partner_owner"     // socio externo
	RoleExternalCashier  = "external_cashier"  // socio externo, solo ventas
)

// Employee representa un empleado del sistema. Role + AssignedLocationID
// definen su alcance de autorización; un empleado sin ubicación asignada
// solo es válido para roles de clase super_admin.
type Employee struct {
	ID                 string
	Username           string
	Role               string
	AssignedLocationID string // vacío = sin ubicación (solo super_admin)
	PasswordHash       string // bcrypt, nunca plano después de persistir
	CreatedAt          time.Time
}

// ValidRole verifica que el rol pertenezca al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleLogisticsManager, RoleKAM,
		RoleBranchManager, RoleInternalCashier,
		RolePartnerOwner, RoleExternalCashier:
		return true
	}
	return false
}

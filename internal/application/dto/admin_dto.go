package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterLocationRequest payload para provisionar una tienda o socio.
type RegisterLocationRequest struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"` // store | partner
	Address     string `json:"address"`
	TaxID       string `json:"tax_id"`
	ContactInfo string `json:"contact_info"`
}

// LocationResponse ubicación en respuestas.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Address     string    `json:"address,omitempty"`
	TaxID       string    `json:"tax_id,omitempty"`
	ContactInfo string    `json:"contact_info,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateEmployeeRequest payload para provisionar un empleado.
type CreateEmployeeRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	TargetLocationID string `json:"target_location_id"`
}

// EmployeeResponse empleado en respuestas (nunca incluye el hash).
type EmployeeResponse struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	Role               string    `json:"role"`
	AssignedLocationID string    `json:"assigned_location_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateProductRequest payload para alta de producto en el catálogo.
type CreateProductRequest struct {
	Name           string           `json:"name"`
	CategoryID     string           `json:"category_id"`
	Barcode        string           `json:"barcode"`
	RetailPrice    decimal.Decimal  `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	CostPrice      *decimal.Decimal `json:"cost_price"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CategoryID     string          `json:"category_id,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreateCustomerRequest payload para alta de cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	LoyaltyPoints int64  `json:"loyalty_points"`
}

package admin

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/application/dto"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
)

// CreateProduct da de alta un producto en el catálogo compartido. Solo
// super_admin. WholesalePrice y CostPrice son opcionales; cero = sin valor.
func (uc *UseCase) CreateProduct(actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrNotAuthorized
	}
	if in.Name == "" || in.RetailPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Barcode != "" {
		if existing, err := uc.productRepo.GetByBarcode(in.Barcode); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Barcode:     in.Barcode,
		RetailPrice: in.RetailPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return toProductResponse(product), nil
}

// UpdateProduct actualiza nombre y precios de un producto. Solo super_admin.
// Los cambios de costo no afectan el margen histórico: cada venta ya capturó
// su costo unitario al momento de venderse.
func (uc *UseCase) UpdateProduct(actorID, productID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrNotAuthorized
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.CategoryID != "" {
		product.CategoryID = in.CategoryID
	}
	if in.RetailPrice.IsPositive() {
		product.RetailPrice = in.RetailPrice
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct elimina un producto del catálogo. Solo super_admin.
func (uc *UseCase) DeleteProduct(actorID, productID string) error {
	actor, err := uc.actor(actorID)
	if err != nil {
		return err
	}
	if actor.Role != entity.RoleSuperAdmin {
		return domain.ErrNotAuthorized
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(productID); err != nil {
		return err
	}
	log.Info().Str("product_id", productID).Str("deleted_by", actorID).Msg("producto eliminado")
	return nil
}

// GetProduct obtiene un producto por ID.
func (uc *UseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetProductByBarcode resuelve un producto por su código de barras (flujo de
// escaneo en caja).
func (uc *UseCase) GetProductByBarcode(barcode string) (*dto.ProductResponse, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListProducts lista el catálogo paginado.
func (uc *UseCase) ListProducts(page dto.PageRequest) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// CreateCategory da de alta una categoría (idempotente por nombre).
func (uc *UseCase) CreateCategory(actorID, name string) (*entity.Category, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrNotAuthorized
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.categoryRepo.GetByName(name); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}
	category := &entity.Category{ID: uuid.New().String(), Name: name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista las categorías del catálogo.
func (uc *UseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

// CreateCustomer da de alta un cliente del programa de lealtad.
func (uc *UseCase) CreateCustomer(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetCustomer obtiene un cliente por ID.
func (uc *UseCase) GetCustomer(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		CategoryID:     p.CategoryID,
		Barcode:        p.Barcode,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		CostPrice:      p.CostPrice,
		CreatedAt:      p.CreatedAt,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		LoyaltyPoints: c.LoyaltyPoints,
	}
}

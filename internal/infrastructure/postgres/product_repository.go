package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category_id, barcode, retail_price, wholesale_price, cost_price, created_at, updated_at`

// Create persiste un producto nuevo del catálogo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.CategoryID), nullIfEmpty(product.Barcode),
		product.RetailPrice, product.WholesalePrice, product.CostPrice,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy("id", id)
}

// GetByBarcode obtiene un producto por código de barras. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	return r.getBy("barcode", barcode)
}

func (r *ProductRepo) getBy(column, value string) (*entity.Product, error) {
	query := fmt.Sprintf(`SELECT `+productColumns+` FROM products WHERE %s = $1`, column)
	var p entity.Product
	var categoryID, barcode *string
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&p.ID, &p.Name, &categoryID, &barcode,
		&p.RetailPrice, &p.WholesalePrice, &p.CostPrice,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.CategoryID = derefStr(categoryID)
	p.Barcode = derefStr(barcode)
	return &p, nil
}

// List lista el catálogo paginado por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var categoryID, barcode *string
		if err := rows.Scan(
			&p.ID, &p.Name, &categoryID, &barcode,
			&p.RetailPrice, &p.WholesalePrice, &p.CostPrice,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.CategoryID = derefStr(categoryID)
		p.Barcode = derefStr(barcode)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre, categoría y precios de un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, barcode = $4,
		    retail_price = $5, wholesale_price = $6, cost_price = $7,
		    updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.CategoryID), nullIfEmpty(product.Barcode),
		product.RetailPrice, product.WholesalePrice, product.CostPrice,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto del catálogo.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

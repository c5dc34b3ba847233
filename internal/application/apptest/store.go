// Package apptest provee un doble en memoria de la capa de persistencia
// para los tests de los casos de uso: implementa todos los puertos de
// repositorio más un TxRunner con semántica de rollback por snapshot.
// Solo para tests; no es seguro para uso concurrente.
package apptest

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/axlmendieta/POS-APEX/internal/application/ledger"
	"github.com/axlmendieta/POS-APEX/internal/domain"
	"github.com/axlmendieta/POS-APEX/internal/domain/entity"
	"github.com/axlmendieta/POS-APEX/internal/domain/repository"
)

// ErrForcedWriteFailure lo devuelve el repositorio de stock cuando el test
// pide simular un fallo de escritura (FailStockWriteAt).
var ErrForcedWriteFailure = errors.New("apptest: fallo de escritura forzado")

// Store estado en memoria compartido por todos los repositorios del doble.
type Store struct {
	locations  map[string]*entity.Location
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	employees  map[string]*entity.Employee
	customers  map[string]*entity.Customer
	stock      map[string]*entity.StockLevel // clave locationID|productID
	txs        map[string]*entity.Transaction
	transfers  []*entity.StockTransfer
	notes      []*entity.ReconciliationNote

	// FailStockWriteAt hace fallar todo Upsert de stock sobre esa ubicación.
	// Simula la caída de la fase de abono en una orden mayorista.
	FailStockWriteAt string
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		locations:  make(map[string]*entity.Location),
		products:   make(map[string]*entity.Product),
		categories: make(map[string]*entity.Category),
		employees:  make(map[string]*entity.Employee),
		customers:  make(map[string]*entity.Customer),
		stock:      make(map[string]*entity.StockLevel),
		txs:        make(map[string]*entity.Transaction),
	}
}

func stockKey(locationID, productID string) string { return locationID + "|" + productID }

// ── Seed y consultas de verificación ─────────────────────────────────────────

// AddLocation registra una ubicación en el doble.
func (s *Store) AddLocation(l *entity.Location) { s.locations[l.ID] = l }

// AddProduct registra un producto en el doble.
func (s *Store) AddProduct(p *entity.Product) { s.products[p.ID] = p }

// AddEmployee registra un empleado en el doble.
func (s *Store) AddEmployee(e *entity.Employee) { s.employees[e.ID] = e }

// AddCustomer registra un cliente en el doble.
func (s *Store) AddCustomer(c *entity.Customer) { s.customers[c.ID] = c }

// SetStock fija el stock de (ubicación, producto).
func (s *Store) SetStock(locationID, productID string, qty int64) {
	s.stock[stockKey(locationID, productID)] = &entity.StockLevel{
		ID:           stockKey(locationID, productID),
		LocationID:   locationID,
		ProductID:    productID,
		CurrentStock: qty,
		ReorderPoint: entity.DefaultReorderPoint,
	}
}

// StockOf devuelve el stock actual de (ubicación, producto); 0 si no hay fila.
func (s *Store) StockOf(locationID, productID string) int64 {
	if row, ok := s.stock[stockKey(locationID, productID)]; ok {
		return row.CurrentStock
	}
	return 0
}

// TransactionCount cantidad de transacciones persistidas.
func (s *Store) TransactionCount() int { return len(s.txs) }

// Transfers registros de traslado persistidos, en orden de inserción.
func (s *Store) Transfers() []*entity.StockTransfer { return s.transfers }

// Notes notas de conciliación persistidas, en orden de inserción.
func (s *Store) Notes() []*entity.ReconciliationNote { return s.notes }

// Customer devuelve el cliente almacenado (para verificar métricas).
func (s *Store) Customer(id string) *entity.Customer { return s.customers[id] }

// ── Puertos ──────────────────────────────────────────────────────────────────

// LocationRepo puerto de ubicaciones atado al Store.
func (s *Store) LocationRepo() repository.LocationRepository { return locationRepo{s} }

// ProductRepo puerto de productos atado al Store.
func (s *Store) ProductRepo() repository.ProductRepository { return productRepo{s} }

// CategoryRepo puerto de categorías atado al Store.
func (s *Store) CategoryRepo() repository.CategoryRepository { return categoryRepo{s} }

// EmployeeRepo puerto de empleados atado al Store.
func (s *Store) EmployeeRepo() repository.EmployeeRepository { return employeeRepo{s} }

// CustomerRepo puerto de clientes atado al Store.
func (s *Store) CustomerRepo() repository.CustomerRepository { return customerRepo{s} }

// StockRepo puerto de stock atado al Store.
func (s *Store) StockRepo() repository.StockRepository { return stockRepo{s} }

// TransactionRepo puerto de transacciones atado al Store.
func (s *Store) TransactionRepo() repository.TransactionRepository { return transactionRepo{s} }

// TransferRepo puerto de traslados atado al Store.
func (s *Store) TransferRepo() repository.StockTransferRepository { return transferRepo{s} }

// ReconRepo puerto de notas de conciliación atado al Store. Equivale a un
// repositorio atado al pool: sus escrituras no participan del rollback.
func (s *Store) ReconRepo() repository.ReconciliationRepository { return reconRepo{s} }

// TxRunner devuelve un runner que imita la semántica transaccional real:
// si fn falla, el estado de stock, transacciones, traslados y clientes
// vuelve al snapshot previo. Las notas de conciliación quedan fuera de la
// frontera, igual que en producción.
func (s *Store) TxRunner() ledger.TxRunner { return txRunner{s} }

// ── TxRunner con rollback por snapshot ───────────────────────────────────────

type txRunner struct{ s *Store }

type snapshot struct {
	stock     map[string]*entity.StockLevel
	txs       map[string]*entity.Transaction
	transfers []*entity.StockTransfer
	customers map[string]*entity.Customer
}

func (r txRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	txRepo repository.TransactionRepository,
	transferRepo repository.StockTransferRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(r.s.StockRepo(), r.s.TransactionRepo(), r.s.TransferRepo(), r.s.CustomerRepo())
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		stock:     make(map[string]*entity.StockLevel, len(s.stock)),
		txs:       make(map[string]*entity.Transaction, len(s.txs)),
		transfers: append([]*entity.StockTransfer(nil), s.transfers...),
		customers: make(map[string]*entity.Customer, len(s.customers)),
	}
	for k, v := range s.stock {
		row := *v
		snap.stock[k] = &row
	}
	for k, v := range s.txs {
		tx := *v
		tx.Details = make([]*entity.TransactionDetail, 0, len(v.Details))
		for _, d := range v.Details {
			detail := *d
			tx.Details = append(tx.Details, &detail)
		}
		snap.txs[k] = &tx
	}
	for k, v := range s.customers {
		c := *v
		snap.customers[k] = &c
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.stock = snap.stock
	s.txs = snap.txs
	s.transfers = snap.transfers
	s.customers = snap.customers
}

// ── Implementaciones de los puertos ──────────────────────────────────────────

type locationRepo struct{ s *Store }

func (r locationRepo) Create(l *entity.Location) error {
	for _, existing := range r.s.locations {
		if existing.Name == l.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.locations[l.ID] = l
	return nil
}

func (r locationRepo) GetByID(id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}

func (r locationRepo) GetByName(name string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, nil
}

func (r locationRepo) List(limit, offset int) ([]*entity.Location, error) {
	out := make([]*entity.Location, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		out = append(out, l)
	}
	return out, nil
}

type productRepo struct{ s *Store }

func (r productRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r productRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r productRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r productRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r productRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = p
	return nil
}

func (r productRepo) Delete(id string) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

type categoryRepo struct{ s *Store }

func (r categoryRepo) Create(c *entity.Category) error {
	r.s.categories[c.ID] = c
	return nil
}

func (r categoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r categoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	return out, nil
}

type employeeRepo struct{ s *Store }

func (r employeeRepo) Create(e *entity.Employee) error {
	r.s.employees[e.ID] = e
	return nil
}

func (r employeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.s.employees[id], nil
}

func (r employeeRepo) GetByUsername(username string) (*entity.Employee, error) {
	for _, e := range r.s.employees {
		if e.Username == username {
			return e, nil
		}
	}
	return nil, nil
}

func (r employeeRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.s.employees {
		if e.AssignedLocationID == locationID {
			out = append(out, e)
		}
	}
	return out, nil
}

type customerRepo struct{ s *Store }

func (r customerRepo) Create(c *entity.Customer) error {
	r.s.customers[c.ID] = c
	return nil
}

func (r customerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}

func (r customerRepo) UpdatePurchaseMetrics(id string, amount decimal.Decimal, date time.Time) error {
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	points := amount.IntPart()
	if points < 0 {
		points = 0
	}
	c.LoyaltyPoints += points
	c.LastPurchaseAmount = amount
	d := date
	c.LastPurchaseDate = &d
	return nil
}

type stockRepo struct{ s *Store }

func (r stockRepo) Get(locationID, productID string) (*entity.StockLevel, error) {
	if row, ok := r.s.stock[stockKey(locationID, productID)]; ok {
		out := *row
		return &out, nil
	}
	return &entity.StockLevel{
		LocationID:   locationID,
		ProductID:    productID,
		ReorderPoint: entity.DefaultReorderPoint,
	}, nil
}

// GetForUpdate materializa la fila en cero si no existe, igual que el
// adaptador real. Dentro de un TxRunner la fila recién creada participa del
// rollback por snapshot.
func (r stockRepo) GetForUpdate(locationID, productID string) (*entity.StockLevel, error) {
	key := stockKey(locationID, productID)
	if _, ok := r.s.stock[key]; !ok {
		r.s.stock[key] = &entity.StockLevel{
			ID:           key,
			LocationID:   locationID,
			ProductID:    productID,
			ReorderPoint: entity.DefaultReorderPoint,
		}
	}
	return r.Get(locationID, productID)
}

func (r stockRepo) Upsert(stock *entity.StockLevel) error {
	if r.s.FailStockWriteAt != "" && stock.LocationID == r.s.FailStockWriteAt {
		return ErrForcedWriteFailure
	}
	row := *stock
	if row.ID == "" {
		row.ID = stockKey(stock.LocationID, stock.ProductID)
	}
	r.s.stock[stockKey(stock.LocationID, stock.ProductID)] = &row
	return nil
}

func (r stockRepo) ListByLocation(locationID string) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, row := range r.s.stock {
		if row.LocationID == locationID {
			level := *row
			out = append(out, &level)
		}
	}
	return out, nil
}

type transactionRepo struct{ s *Store }

func (r transactionRepo) Create(tx *entity.Transaction) error {
	header := *tx
	header.Details = nil
	r.s.txs[tx.ID] = &header
	return nil
}

func (r transactionRepo) CreateDetail(detail *entity.TransactionDetail) error {
	tx, ok := r.s.txs[detail.TransactionID]
	if !ok {
		return domain.ErrNotFound
	}
	d := *detail
	tx.Details = append(tx.Details, &d)
	return nil
}

func (r transactionRepo) GetByID(id string) (*entity.Transaction, error) {
	tx, ok := r.s.txs[id]
	if !ok {
		return nil, nil
	}
	out := *tx
	out.Details = make([]*entity.TransactionDetail, 0, len(tx.Details))
	for _, d := range tx.Details {
		detail := *d
		out.Details = append(out.Details, &detail)
	}
	return &out, nil
}

// GetByIDForUpdate equivale a GetByID: el doble es secuencial, pero la
// llamada marca el punto donde producción bloquea la fila de cabecera.
func (r transactionRepo) GetByIDForUpdate(id string) (*entity.Transaction, error) {
	return r.GetByID(id)
}

func (r transactionRepo) UpdateStatus(id, status string) error {
	tx, ok := r.s.txs[id]
	if !ok {
		return domain.ErrNotFound
	}
	tx.Status = status
	return nil
}

func (r transactionRepo) UpdateTotal(id string, total decimal.Decimal) error {
	tx, ok := r.s.txs[id]
	if !ok {
		return domain.ErrNotFound
	}
	tx.TotalAmount = total
	return nil
}

func (r transactionRepo) UpdateDetailQuantity(detailID string, quantity int64) error {
	for _, tx := range r.s.txs {
		for _, d := range tx.Details {
			if d.ID == detailID {
				d.Quantity = quantity
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (r transactionRepo) DeleteDetail(detailID string) error {
	for _, tx := range r.s.txs {
		for i, d := range tx.Details {
			if d.ID == detailID {
				tx.Details = append(tx.Details[:i], tx.Details[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

type transferRepo struct{ s *Store }

func (r transferRepo) Create(t *entity.StockTransfer) error {
	record := *t
	r.s.transfers = append(r.s.transfers, &record)
	return nil
}

func (r transferRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.StockTransfer, error) {
	var out []*entity.StockTransfer
	for _, t := range r.s.transfers {
		if t.SourceLocationID == locationID || t.DestinationLocationID == locationID {
			out = append(out, t)
		}
	}
	return out, nil
}

type reconRepo struct{ s *Store }

func (r reconRepo) Create(note *entity.ReconciliationNote) error {
	n := *note
	r.s.notes = append(r.s.notes, &n)
	return nil
}

func (r reconRepo) ListPending(limit, offset int) ([]*entity.ReconciliationNote, error) {
	var out []*entity.ReconciliationNote
	for _, n := range r.s.notes {
		if n.Status == entity.ReconciliationStatusPending {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r reconRepo) Resolve(id string) error {
	for _, n := range r.s.notes {
		if n.ID == id && n.Status == entity.ReconciliationStatusPending {
			n.Status = entity.ReconciliationStatusResolved
			now := time.Now()
			n.ResolvedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/maderas-pos/internal/application/sales"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los casos de uso de ventas.
//
// memStore simula la base de datos con mapas; memTxRunner simula la transacción
// tomando un snapshot del store antes de ejecutar fn y restaurándolo si fn
// retorna error. Así los tests verifican la propiedad que importa: un fallo a
// mitad de la venta (ej: stock insuficiente en la línea 2) no deja escrito nada
// de lo anterior.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  map[string]*entity.Product
	customers map[string]*entity.Customer
	inventory map[string]*entity.Inventory
	sales     map[string]*entity.Sale
	saleItems map[string][]*entity.SaleItem
	movements []*entity.InventoryMovement
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		customers: make(map[string]*entity.Customer),
		inventory: make(map[string]*entity.Inventory),
		sales:     make(map[string]*entity.Sale),
		saleItems: make(map[string][]*entity.SaleItem),
	}
}

// snapshot copia profunda del estado. Las entidades se copian por valor; ninguna
// contiene punteros internos mutables (decimal.Decimal es inmutable en la práctica).
func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, p := range s.products {
		v := *p
		cp.products[id] = &v
	}
	for id, c := range s.customers {
		v := *c
		cp.customers[id] = &v
	}
	for id, inv := range s.inventory {
		v := *inv
		cp.inventory[id] = &v
	}
	for id, sale := range s.sales {
		v := *sale
		cp.sales[id] = &v
	}
	for saleID, items := range s.saleItems {
		cpItems := make([]*entity.SaleItem, 0, len(items))
		for _, item := range items {
			v := *item
			cpItems = append(cpItems, &v)
		}
		cp.saleItems[saleID] = cpItems
	}
	cp.movements = make([]*entity.InventoryMovement, 0, len(s.movements))
	for _, m := range s.movements {
		v := *m
		cp.movements = append(cp.movements, &v)
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.customers = snap.customers
	s.inventory = snap.inventory
	s.sales = snap.sales
	s.saleItems = snap.saleItems
	s.movements = snap.movements
}

// movementsByReference filtra el log por venta, en orden de inserción.
func (s *memStore) movementsByReference(reference string) []*entity.InventoryMovement {
	var out []*entity.InventoryMovement
	for _, m := range s.movements {
		if m.Reference == reference {
			out = append(out, m)
		}
	}
	return out
}

// ─── Repositorios fake ────────────────────────────────────────────────────────

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(product *entity.Product) error {
	r.store.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(product *entity.Product) error {
	r.store.products[product.ID] = product
	return nil
}

func (r *memProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	if p, ok := r.store.products[productID]; ok {
		p.Cost = cost
	}
	return nil
}

func (r *memProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Deactivate(id string, at time.Time) error {
	if p, ok := r.store.products[id]; ok {
		p.Active = false
		p.UpdatedAt = at
	}
	return nil
}

type memCustomerRepo struct{ store *memStore }

func (r *memCustomerRepo) Create(customer *entity.Customer) error {
	r.store.customers[customer.ID] = customer
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.store.customers[id], nil
}

func (r *memCustomerRepo) GetByDocument(document string) (*entity.Customer, error) {
	for _, c := range r.store.customers {
		if c.Document == document {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) Update(customer *entity.Customer) error {
	r.store.customers[customer.ID] = customer
	return nil
}

func (r *memCustomerRepo) List(search string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) Deactivate(id string, at time.Time) error {
	if c, ok := r.store.customers[id]; ok {
		c.Active = false
		c.UpdatedAt = at
	}
	return nil
}

type memInventoryRepo struct{ store *memStore }

// Get replica el contrato del repo real: sin fila registrada retorna un
// Inventory en cero para ese producto, no un error.
func (r *memInventoryRepo) Get(productID string) (*entity.Inventory, error) {
	if inv, ok := r.store.inventory[productID]; ok {
		return inv, nil
	}
	return &entity.Inventory{ProductID: productID}, nil
}

func (r *memInventoryRepo) GetForUpdate(productID string) (*entity.Inventory, error) {
	return r.Get(productID)
}

func (r *memInventoryRepo) Upsert(inv *entity.Inventory) error {
	r.store.inventory[inv.ProductID] = inv
	return nil
}

func (r *memInventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.store.inventory {
		out = append(out, inv)
	}
	return out, nil
}

func (r *memInventoryRepo) ListLow() ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.store.inventory {
		if inv.IsLow() {
			out = append(out, inv)
		}
	}
	return out, nil
}

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(movement *entity.InventoryMovement) error {
	r.store.movements = append(r.store.movements, movement)
	return nil
}

func (r *memMovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return r.store.movements, nil
}

func (r *memMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByReference(reference string) ([]*entity.InventoryMovement, error) {
	return r.store.movementsByReference(reference), nil
}

type memSaleRepo struct{ store *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.store.sales[sale.ID] = sale
	return nil
}

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.store.saleItems[item.SaleID] = append(r.store.saleItems[item.SaleID], item)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.store.sales[id], nil
}

func (r *memSaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.store.sales[id], nil
}

func (r *memSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	return r.store.saleItems[saleID], nil
}

func (r *memSaleRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	if sale, ok := r.store.sales[id]; ok {
		sale.Status = status
		sale.UpdatedAt = updatedAt
	}
	return nil
}

func (r *memSaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.store.sales {
		out = append(out, sale)
	}
	return out, nil
}

// ─── TxRunner fake ────────────────────────────────────────────────────────────

// memTxRunner simula la semántica transaccional: si fn falla, el store vuelve
// al estado previo, igual que un ROLLBACK.
type memTxRunner struct{ store *memStore }

func (r *memTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&memSaleRepo{store: r.store},
		&memInventoryRepo{store: r.store},
		&memMovementRepo{store: r.store},
		&memProductRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

var _ sales.TxRunner = (*memTxRunner)(nil)

package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/agro-inventario-api/internal/application/inventory"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store almacenamiento en memoria con transacciones por copia: Run trabaja sobre un
// clon de los datos y solo lo publica si fn termina sin error.
// Las transacciones se serializan con un único mutex.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

type dataset struct {
	products  map[string]entity.Product
	branches  map[string]entity.Branch
	suppliers map[string]entity.Supplier
	entries   map[string]entity.Entry
	stock     map[string]entity.Stock
	stockKeys map[entity.StockKey]string
}

func newDataset() *dataset {
	return &dataset{
		products:  map[string]entity.Product{},
		branches:  map[string]entity.Branch{},
		suppliers: map[string]entity.Supplier{},
		entries:   map[string]entity.Entry{},
		stock:     map[string]entity.Stock{},
		stockKeys: map[entity.StockKey]string{},
	}
}

func (d *dataset) clone() *dataset {
	return &dataset{
		products:  maps.Clone(d.products),
		branches:  maps.Clone(d.branches),
		suppliers: maps.Clone(d.suppliers),
		entries:   maps.Clone(d.entries),
		stock:     maps.Clone(d.stock),
		stockKeys: maps.Clone(d.stockKeys),
	}
}

// New crea un store vacío.
func New() *Store {
	return &Store{data: newDataset()}
}

// AddProduct registra un producto del catálogo.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.products[p.ID] = p
}

// AddBranch registra una sucursal.
func (s *Store) AddBranch(b entity.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.branches[b.ID] = b
}

// AddSupplier registra un proveedor.
func (s *Store) AddSupplier(sp entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.suppliers[sp.ID] = sp
}

// Repositories devuelve repositorios sobre los datos confirmados (fuera de transacción).
func (s *Store) Repositories() repository.Repositories {
	return newRepositories(view{store: s})
}

// Run ejecuta fn sobre una copia de los datos y la confirma si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(newRepositories(view{tx: work})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = work
	return nil
}

// view resuelve sobre qué datos opera un repositorio: los confirmados (con lock) o los de una tx.
type view struct {
	store *Store
	tx    *dataset
}

func (v view) read(fn func(d *dataset) error) error {
	if v.store == nil {
		return fn(v.tx)
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	return fn(v.store.data)
}

func (v view) write(fn func(d *dataset) error) error {
	if v.store == nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.data)
}

func newRepositories(v view) repository.Repositories {
	return repository.Repositories{
		Entries:   &EntryRepo{v: v},
		Stock:     &StockRepo{v: v},
		Products:  &ProductRepo{v: v},
		Branches:  &BranchRepo{v: v},
		Suppliers: &SupplierRepo{v: v},
	}
}

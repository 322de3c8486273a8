package memory

import (
	"context"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.BranchRepository   = (*BranchRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
)

// ProductRepo lectura de productos en memoria.
type ProductRepo struct {
	v view
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.read(func(d *dataset) error {
		if p, ok := d.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// BranchRepo sucursales en memoria.
type BranchRepo struct {
	v view
}

func (r *BranchRepo) Create(_ context.Context, branch *entity.Branch) error {
	return r.v.write(func(d *dataset) error {
		if _, ok := d.branches[branch.ID]; ok {
			return domain.ErrDuplicate
		}
		d.branches[branch.ID] = *branch
		return nil
	})
}

func (r *BranchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	var out *entity.Branch
	err := r.v.read(func(d *dataset) error {
		if b, ok := d.branches[id]; ok {
			out = &b
		}
		return nil
	})
	return out, err
}

// SupplierRepo lectura de proveedores en memoria.
type SupplierRepo struct {
	v view
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.v.read(func(d *dataset) error {
		if s, ok := d.suppliers[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

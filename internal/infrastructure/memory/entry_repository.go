package memory

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación en memoria de EntryRepository.
type EntryRepo struct {
	v view
}

// Create inserta la entrada validando sus referencias como lo haría una foreign key.
func (r *EntryRepo) Create(_ context.Context, entry *entity.Entry) error {
	return r.v.write(func(d *dataset) error {
		if _, ok := d.entries[entry.ID]; ok {
			return domain.ErrDuplicate
		}
		if !d.referencesExist(entry) {
			return domain.NewValidationError(domain.MsgInvalidReferences)
		}
		d.entries[entry.ID] = *entry
		return nil
	})
}

func (r *EntryRepo) GetByID(_ context.Context, id string) (*entity.Entry, error) {
	var out *entity.Entry
	err := r.v.read(func(d *dataset) error {
		if e, ok := d.entries[id]; ok {
			out = &e
		}
		return nil
	})
	return out, err
}

// GetForUpdate en memoria equivale a GetByID: la transacción ya es exclusiva.
func (r *EntryRepo) GetForUpdate(ctx context.Context, id string) (*entity.Entry, error) {
	return r.GetByID(ctx, id)
}

func (r *EntryRepo) GetDetail(_ context.Context, id string) (*entity.EntryDetail, error) {
	var out *entity.EntryDetail
	err := r.v.read(func(d *dataset) error {
		if e, ok := d.entries[id]; ok {
			out = d.detail(e)
		}
		return nil
	})
	return out, err
}

func (r *EntryRepo) Update(_ context.Context, entry *entity.Entry) error {
	return r.v.write(func(d *dataset) error {
		if _, ok := d.entries[entry.ID]; !ok {
			return domain.ErrEntryNotFound
		}
		if !d.referencesExist(entry) {
			return domain.NewValidationError(domain.MsgInvalidReferences)
		}
		d.entries[entry.ID] = *entry
		return nil
	})
}

func (r *EntryRepo) Delete(_ context.Context, id string) error {
	return r.v.write(func(d *dataset) error {
		if _, ok := d.entries[id]; !ok {
			return domain.ErrEntryNotFound
		}
		delete(d.entries, id)
		return nil
	})
}

// List filtra, ordena por fecha de entrada descendente y pagina.
func (r *EntryRepo) List(_ context.Context, filter repository.EntryFilter) ([]*entity.EntryDetail, int, error) {
	var (
		page  []*entity.EntryDetail
		total int
	)
	err := r.v.read(func(d *dataset) error {
		needle := cases.Fold().String(filter.Search)
		var matched []*entity.EntryDetail
		for _, e := range d.entries {
			if filter.LowStock && e.Quantity >= entity.LowStockThreshold {
				continue
			}
			det := d.detail(e)
			if needle != "" && !matchesSearch(det, needle) {
				continue
			}
			matched = append(matched, det)
		}
		sort.Slice(matched, func(i, j int) bool {
			a, b := matched[i], matched[j]
			if !a.EntryDate.Equal(b.EntryDate) {
				return a.EntryDate.After(b.EntryDate)
			}
			return a.ID < b.ID
		})
		total = len(matched)
		if filter.Offset < 0 || filter.Offset >= total {
			return nil
		}
		end := total
		if filter.Limit > 0 && filter.Offset+filter.Limit < total {
			end = filter.Offset + filter.Limit
		}
		page = matched[filter.Offset:end]
		return nil
	})
	return page, total, err
}

func (r *EntryRepo) SumByPair(_ context.Context, key entity.StockKey) (int, error) {
	sum := 0
	err := r.v.read(func(d *dataset) error {
		for _, e := range d.entries {
			if e.Pair() == key {
				sum += e.Quantity
			}
		}
		return nil
	})
	return sum, err
}

func (r *EntryRepo) TotalsByPair(_ context.Context, filter repository.PairFilter) ([]repository.PairTotal, error) {
	var out []repository.PairTotal
	err := r.v.read(func(d *dataset) error {
		sums := map[entity.StockKey]int{}
		for _, e := range d.entries {
			if filter.ProductID != "" && e.ProductID != filter.ProductID {
				continue
			}
			if filter.BranchID != "" && e.BranchID != filter.BranchID {
				continue
			}
			sums[e.Pair()] += e.Quantity
		}
		for k, q := range sums {
			out = append(out, repository.PairTotal{ProductID: k.ProductID, BranchID: k.BranchID, Quantity: q})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].ProductID != out[j].ProductID {
				return out[i].ProductID < out[j].ProductID
			}
			return out[i].BranchID < out[j].BranchID
		})
		return nil
	})
	return out, err
}

func (d *dataset) referencesExist(e *entity.Entry) bool {
	_, p := d.products[e.ProductID]
	_, b := d.branches[e.BranchID]
	_, s := d.suppliers[e.SupplierID]
	return p && b && s
}

func (d *dataset) detail(e entity.Entry) *entity.EntryDetail {
	det := &entity.EntryDetail{
		Entry:    e,
		Product:  entity.ProductSummary{ID: e.ProductID},
		Branch:   entity.BranchSummary{ID: e.BranchID},
		Supplier: entity.SupplierSummary{ID: e.SupplierID},
	}
	if p, ok := d.products[e.ProductID]; ok {
		det.Product = entity.ProductSummary{ID: p.ID, Code: p.Code, Name: p.Name, Unit: p.Unit}
	}
	if b, ok := d.branches[e.BranchID]; ok {
		det.Branch = entity.BranchSummary{ID: b.ID, Name: b.Name}
	}
	if s, ok := d.suppliers[e.SupplierID]; ok {
		det.Supplier = entity.SupplierSummary{ID: s.ID, Name: s.Name}
	}
	return det
}

func matchesSearch(det *entity.EntryDetail, needle string) bool {
	fold := cases.Fold()
	for _, field := range []string{det.Product.Name, det.Product.Code, det.Invoice, det.Memo} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

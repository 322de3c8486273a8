package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación en memoria de StockRepository.
type StockRepo struct {
	v view
}

func (r *StockRepo) GetForUpdate(_ context.Context, key entity.StockKey) (*entity.Stock, error) {
	var out *entity.Stock
	err := r.v.read(func(d *dataset) error {
		if id, ok := d.stockKeys[key]; ok {
			s := d.stock[id]
			out = &s
		}
		return nil
	})
	return out, err
}

// Create inserta la fila; el par (producto, sucursal) es único.
func (r *StockRepo) Create(_ context.Context, stock *entity.Stock) error {
	if stock.Quantity < 0 {
		return fmt.Errorf("create stock: quantity %d below zero", stock.Quantity)
	}
	return r.v.write(func(d *dataset) error {
		if _, ok := d.stockKeys[stock.Key()]; ok {
			return domain.ErrDuplicate
		}
		if _, ok := d.stock[stock.ID]; ok {
			return domain.ErrDuplicate
		}
		d.stock[stock.ID] = *stock
		d.stockKeys[stock.Key()] = stock.ID
		return nil
	})
}

func (r *StockRepo) UpdateQuantity(_ context.Context, id string, quantity int, updatedAt time.Time) error {
	if quantity < 0 {
		return fmt.Errorf("update stock: quantity %d below zero", quantity)
	}
	return r.v.write(func(d *dataset) error {
		s, ok := d.stock[id]
		if !ok {
			return fmt.Errorf("update stock: row %s not found", id)
		}
		s.Quantity = quantity
		s.UpdatedAt = updatedAt
		d.stock[id] = s
		return nil
	})
}

func (r *StockRepo) List(_ context.Context, filter repository.StockFilter) ([]*entity.Stock, error) {
	var out []*entity.Stock
	err := r.v.read(func(d *dataset) error {
		for _, s := range d.stock {
			if filter.ProductID != "" && s.ProductID != filter.ProductID {
				continue
			}
			if filter.BranchID != "" && s.BranchID != filter.BranchID {
				continue
			}
			if filter.LowStock && s.Quantity >= entity.LowStockThreshold {
				continue
			}
			s := s
			out = append(out, &s)
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
				return out[i].UpdatedAt.After(out[j].UpdatedAt)
			}
			return out[i].ID < out[j].ID
		})
		return nil
	})
	return out, err
}

package inventory

import (
	"context"
	"math"
	"strings"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

// MaxPageLimit tope de elementos por página.
const MaxPageLimit = 100

// ListEntriesInput parámetros del listado de entradas.
type ListEntriesInput struct {
	Page     int
	Limit    int
	Search   string
	LowStock bool
}

// Pagination metadatos de página.
type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

// EntryPage página de entradas con sus metadatos.
type EntryPage struct {
	Entries    []*entity.EntryDetail
	Pagination Pagination
}

// List devuelve una página de entradas filtrada por búsqueda libre y stock bajo.
func (uc *StockLedgerUseCase) List(ctx context.Context, in ListEntriesInput) (*EntryPage, error) {
	if in.Page < 1 || in.Limit < 1 {
		return nil, domain.NewValidationError(domain.MsgInvalidPagination)
	}
	limit := min(in.Limit, MaxPageLimit)

	items, total, err := uc.repos.Entries.List(ctx, repository.EntryFilter{
		Search:   strings.TrimSpace(in.Search),
		LowStock: in.LowStock,
		Limit:    limit,
		Offset:   pageOffset(in.Page, limit),
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entity.EntryDetail{}
	}
	return &EntryPage{
		Entries: items,
		Pagination: Pagination{
			Page:  in.Page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

// pageOffset calcula (page-1)*limit. Si no cabe en int se satura a math.MaxInt:
// la página queda vacía pero Total y Pages siguen siendo correctos.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// ListStock devuelve las filas de stock filtradas por producto, sucursal o stock bajo.
func (uc *StockLedgerUseCase) ListStock(ctx context.Context, filter repository.StockFilter) ([]*entity.Stock, error) {
	filter.Lock = false
	list, err := uc.repos.Stock.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Stock{}
	}
	return list, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
)

// EntryFilter criterios del listado paginado de entradas.
type EntryFilter struct {
	Search   string // subcadena sin distinguir mayúsculas: nombre/código de producto, factura o memo
	LowStock bool   // solo entradas con Quantity < LowStockThreshold
	Limit    int
	Offset   int
}

// PairFilter restringe operaciones por par a un producto y/o sucursal (vacío = todos).
type PairFilter struct {
	ProductID string
	BranchID  string
}

// PairTotal suma de cantidades de entradas vigentes de un par (producto, sucursal).
type PairTotal struct {
	ProductID string
	BranchID  string
	Quantity  int
}

// EntryRepository define el puerto de persistencia para entradas de inventario.
// GetByID/GetForUpdate devuelven (nil, nil) si la entrada no existe.
type EntryRepository interface {
	Create(ctx context.Context, entry *entity.Entry) error
	GetByID(ctx context.Context, id string) (*entity.Entry, error)
	// GetForUpdate bloquea la fila dentro de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Entry, error)
	GetDetail(ctx context.Context, id string) (*entity.EntryDetail, error)
	Update(ctx context.Context, entry *entity.Entry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EntryFilter) ([]*entity.EntryDetail, int, error)
	SumByPair(ctx context.Context, key entity.StockKey) (int, error)
	TotalsByPair(ctx context.Context, filter PairFilter) ([]PairTotal, error)
}

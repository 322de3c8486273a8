package repository

import (
	"context"
	"time"

	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
)

// StockFilter criterios del listado de stock.
type StockFilter struct {
	ProductID string
	BranchID  string
	LowStock  bool // Quantity < LowStockThreshold
	Lock      bool // bloquea las filas devueltas (solo dentro de una transacción)
}

// StockRepository define el puerto para consultar/actualizar stock por sucursal+producto.
// Usado dentro de transacciones para garantizar consistencia con las entradas.
type StockRepository interface {
	// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.Stock, error)
	// Create inserta una fila nueva; ErrDuplicate si el par ya existe.
	Create(ctx context.Context, stock *entity.Stock) error
	UpdateQuantity(ctx context.Context, id string, quantity int, updatedAt time.Time) error
	List(ctx context.Context, filter StockFilter) ([]*entity.Stock, error)
}

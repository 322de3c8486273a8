package entity

import "time"

// DefaultStockUnit unidad usada cuando el producto no define una.
const DefaultStockUnit = "unit"

// StockKey clave compuesta de una fila de stock.
type StockKey struct {
	ProductID string
	BranchID  string
}

// Stock cantidad disponible de un producto en una sucursal (una fila por par).
// Quantity nunca es negativa.
type Stock struct {
	ID        string
	ProductID string
	BranchID  string
	Quantity  int
	Unit      string
	Memo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key devuelve la clave (producto, sucursal) de la fila.
func (s *Stock) Key() StockKey {
	return StockKey{ProductID: s.ProductID, BranchID: s.BranchID}
}

// LowStockThreshold umbral de negocio para alertas y filtros de stock bajo (cantidad < 50).
const LowStockThreshold = 50

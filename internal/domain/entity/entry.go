package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una entrada de inventario.
const (
	EntryStatusActive   = "active"
	EntryStatusInactive = "inactive"
)

// Entry representa una recepción de mercancía (entrada de stock) de un proveedor en una sucursal.
// Su cantidad es la única fuente de ajuste del Stock del par (producto, sucursal).
type Entry struct {
	ID         string
	ProductID  string
	SupplierID string
	BranchID   string
	Quantity   int             // siempre > 0
	EntryPrice decimal.Decimal // costo unitario de adquisición, >= 0
	EntryDate  time.Time
	Invoice    string
	Memo       string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Pair devuelve la clave (producto, sucursal) a la que la entrada ajusta stock.
func (e *Entry) Pair() StockKey {
	return StockKey{ProductID: e.ProductID, BranchID: e.BranchID}
}

// ProductSummary resumen de producto para listados.
type ProductSummary struct {
	ID   string
	Code string
	Name string
	Unit string
}

// BranchSummary resumen de sucursal para listados.
type BranchSummary struct {
	ID   string
	Name string
}

// SupplierSummary resumen de proveedor para listados.
type SupplierSummary struct {
	ID   string
	Name string
}

// EntryDetail entrada con los resúmenes de sus referencias (lectura).
type EntryDetail struct {
	Entry
	Product  ProductSummary
	Branch   BranchSummary
	Supplier SupplierSummary
}

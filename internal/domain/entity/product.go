package entity

import "time"

// Product producto del catálogo (fertilizantes, insumos).
type Product struct {
	ID        string
	Code      string
	Name      string
	Unit      string // opcional (kg, saco, litro)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockUnit unidad a copiar en una fila de stock nueva.
func (p *Product) StockUnit() string {
	if p == nil || p.Unit == "" {
		return DefaultStockUnit
	}
	return p.Unit
}

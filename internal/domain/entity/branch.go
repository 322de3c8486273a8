package entity

import "time"

// Branch sucursal o punto físico que mantiene inventario.
type Branch struct {
	ID        string
	Name      string
	Location  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

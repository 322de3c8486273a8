package entity

import "time"

// Supplier proveedor de mercancía.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

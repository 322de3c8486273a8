package repository

import (
	"context"

	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura de proveedores.
type SupplierRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
}

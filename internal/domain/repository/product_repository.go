package repository

import (
	"context"

	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos. (nil, nil) si no existe.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

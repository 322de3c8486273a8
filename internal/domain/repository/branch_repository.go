package repository

import (
	"context"

	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
}

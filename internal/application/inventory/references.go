package inventory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

// references ids a verificar; nil = no se recibió y no se verifica.
type references struct {
	product  *string
	branch   *string
	supplier *string
}

type existsCheck func(ctx context.Context) (bool, error)

func (r references) checks(repos repository.Repositories) []existsCheck {
	var checks []existsCheck
	if r.product != nil {
		id := *r.product
		checks = append(checks, func(ctx context.Context) (bool, error) {
			p, err := repos.Products.GetByID(ctx, id)
			if err != nil {
				return false, fmt.Errorf("verify product: %w", err)
			}
			return p != nil, nil
		})
	}
	if r.branch != nil {
		id := *r.branch
		checks = append(checks, func(ctx context.Context) (bool, error) {
			b, err := repos.Branches.GetByID(ctx, id)
			if err != nil {
				return false, fmt.Errorf("verify branch: %w", err)
			}
			return b != nil, nil
		})
	}
	if r.supplier != nil {
		id := *r.supplier
		checks = append(checks, func(ctx context.Context) (bool, error) {
			s, err := repos.Suppliers.GetByID(ctx, id)
			if err != nil {
				return false, fmt.Errorf("verify supplier: %w", err)
			}
			return s != nil, nil
		})
	}
	return checks
}

// verifyConcurrently ejecuta las verificaciones en paralelo (repositorios del pool, fuera de tx).
func verifyConcurrently(ctx context.Context, checks []existsCheck) error {
	found := make([]bool, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			ok, err := check(gctx)
			found[i] = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, ok := range found {
		if !ok {
			return domain.NewValidationError(domain.MsgInvalidReferences)
		}
	}
	return nil
}

// verifySequentially se usa dentro de una transacción, cuya conexión no admite consultas concurrentes.
func verifySequentially(ctx context.Context, checks []existsCheck) error {
	for _, check := range checks {
		ok, err := check(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError(domain.MsgInvalidReferences)
		}
	}
	return nil
}

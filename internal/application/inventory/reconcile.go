package inventory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

// Acciones de una reconciliación por par.
const (
	ReconcileUnchanged = "unchanged"
	ReconcileAdjusted  = "adjusted"
	ReconcileCreated   = "created"
)

// ReconcileInput limita la reconciliación a un producto y/o sucursal. DryRun solo reporta.
type ReconcileInput struct {
	ProductID string
	BranchID  string
	DryRun    bool
}

// ReconcileResult resultado por par (producto, sucursal).
type ReconcileResult struct {
	ProductID  string
	BranchID   string
	Previous   int
	Recomputed int
	Action     string
}

// Reconcile recalcula el stock de cada par como la suma de sus entradas vigentes y
// corrige las filas desfasadas. Las filas sin entradas quedan en cero; nunca se borran.
func (uc *StockLedgerUseCase) Reconcile(ctx context.Context, in ReconcileInput) ([]ReconcileResult, error) {
	now := uc.now()
	var results []ReconcileResult
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		results = nil
		// Primero se bloquean las filas de stock; las entradas que otra tx inserte después
		// esperarán el bloqueo y sumarán sobre el valor reconciliado.
		stocks, err := repos.Stock.List(ctx, repository.StockFilter{
			ProductID: in.ProductID,
			BranchID:  in.BranchID,
			Lock:      true,
		})
		if err != nil {
			return err
		}
		totals, err := repos.Entries.TotalsByPair(ctx, repository.PairFilter{
			ProductID: in.ProductID,
			BranchID:  in.BranchID,
		})
		if err != nil {
			return err
		}

		rows := make(map[entity.StockKey]*entity.Stock, len(stocks))
		for _, s := range stocks {
			rows[s.Key()] = s
		}
		sums := make(map[entity.StockKey]int, len(totals))
		for _, t := range totals {
			sums[entity.StockKey{ProductID: t.ProductID, BranchID: t.BranchID}] = t.Quantity
		}
		keys := make([]entity.StockKey, 0, len(rows)+len(sums))
		for k := range rows {
			keys = append(keys, k)
		}
		for k := range sums {
			if _, ok := rows[k]; !ok {
				keys = append(keys, k)
			}
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].ProductID != keys[j].ProductID {
				return keys[i].ProductID < keys[j].ProductID
			}
			return keys[i].BranchID < keys[j].BranchID
		})

		for _, key := range keys {
			sum := sums[key]
			res := ReconcileResult{ProductID: key.ProductID, BranchID: key.BranchID, Recomputed: sum, Action: ReconcileUnchanged}
			row := rows[key]
			switch {
			case row == nil:
				res.Action = ReconcileCreated
				if !in.DryRun {
					product, err := repos.Products.GetByID(ctx, key.ProductID)
					if err != nil {
						return err
					}
					if err := repos.Stock.Create(ctx, &entity.Stock{
						ID:        uuid.New().String(),
						ProductID: key.ProductID,
						BranchID:  key.BranchID,
						Quantity:  sum,
						Unit:      product.StockUnit(),
						CreatedAt: now,
						UpdatedAt: now,
					}); err != nil {
						return err
					}
				}
			case row.Quantity != sum:
				res.Previous = row.Quantity
				res.Action = ReconcileAdjusted
				if !in.DryRun {
					if err := repos.Stock.UpdateQuantity(ctx, row.ID, sum, now); err != nil {
						return err
					}
				}
			default:
				res.Previous = row.Quantity
			}
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	changed := 0
	for _, r := range results {
		if r.Action != ReconcileUnchanged {
			changed++
		}
	}
	uc.log.Info().
		Int("pairs", len(results)).
		Int("changed", changed).
		Bool("dry_run", in.DryRun).
		Msg("reconciliación de stock")
	if results == nil {
		results = []ReconcileResult{}
	}
	return results, nil
}

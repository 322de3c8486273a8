package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
)

// StockLedgerUseCase aplica entradas de inventario (y sus ediciones y borrados) al stock
// de cada par (producto, sucursal). Cada escritura corre en una única transacción:
// la entrada y su ajuste de stock se confirman juntos o no se confirman.
type StockLedgerUseCase struct {
	txRunner TxRunner
	repos    repository.Repositories // atados al pool; lecturas fuera de transacción
	log      *logger.Logger
	now      func() time.Time
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner, repos repository.Repositories, log *logger.Logger) *StockLedgerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockLedgerUseCase{
		txRunner: txRunner,
		repos:    repos,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateEntryInput entrada para registrar una recepción de mercancía.
type CreateEntryInput struct {
	ProductID  string
	SupplierID string
	Branch     BranchRef
	Quantity   int
	EntryPrice decimal.Decimal
	EntryDate  *time.Time // nil = momento de creación
	Invoice    string
	Memo       string
	Status     string // vacío = active
}

// UpdateEntryInput cambios parciales de una entrada; nil = sin cambio.
type UpdateEntryInput struct {
	ProductID  *string
	SupplierID *string
	BranchID   *string
	Quantity   *int
	EntryPrice *decimal.Decimal
	EntryDate  *time.Time
	Invoice    *string
	Memo       *string
	Status     *string
}

// Create registra la entrada y suma su cantidad al stock del par (creando la fila si no existe).
func (uc *StockLedgerUseCase) Create(ctx context.Context, in CreateEntryInput) (*entity.Entry, error) {
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(in.EntryPrice); err != nil {
		return nil, err
	}
	status, err := resolveStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ProductID) == "" || strings.TrimSpace(in.SupplierID) == "" {
		return nil, domain.NewValidationError(domain.MsgInvalidReferences)
	}

	refs := references{product: &in.ProductID, supplier: &in.SupplierID}
	var newBranch *NewBranch
	switch ref := in.Branch.(type) {
	case ExistingBranch:
		if strings.TrimSpace(ref.ID) == "" {
			return nil, domain.NewValidationError(domain.MsgBranchRequired)
		}
		refs.branch = &ref.ID
	case NewBranch:
		if strings.TrimSpace(ref.Name) == "" {
			return nil, domain.NewValidationError("branch name is required")
		}
		newBranch = &ref
	default:
		return nil, domain.NewValidationError(domain.MsgBranchRequired)
	}

	// Producto, sucursal y proveedor se verifican en paralelo contra el pool.
	if err := verifyConcurrently(ctx, refs.checks(uc.repos)); err != nil {
		return nil, err
	}

	now := uc.now()
	entry := &entity.Entry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		EntryPrice: in.EntryPrice,
		EntryDate:  now,
		Invoice:    in.Invoice,
		Memo:       in.Memo,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if refs.branch != nil {
		entry.BranchID = *refs.branch
	}
	if in.EntryDate != nil {
		entry.EntryDate = in.EntryDate.UTC()
	}

	err = uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		if newBranch != nil {
			branch := &entity.Branch{
				ID:        uuid.New().String(),
				Name:      strings.TrimSpace(newBranch.Name),
				Location:  newBranch.Location,
				Phone:     newBranch.Phone,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := repos.Branches.Create(ctx, branch); err != nil {
				return err
			}
			entry.BranchID = branch.ID
		}
		if err := repos.Entries.Create(ctx, entry); err != nil {
			return err
		}
		return uc.applyDelta(ctx, repos, entry.Pair(), entry.Quantity, entry.Memo, now)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("entry_id", entry.ID).
		Str("product_id", entry.ProductID).
		Str("branch_id", entry.BranchID).
		Int("quantity", entry.Quantity).
		Msg("entrada de stock registrada")
	return entry, nil
}

// Update aplica los campos recibidos y ajusta el stock por la diferencia de cantidad.
// Si la entrada cambia de producto o sucursal, su cantidad se mueve del par anterior al nuevo.
func (uc *StockLedgerUseCase) Update(ctx context.Context, id string, in UpdateEntryInput) (*entity.Entry, error) {
	if in.Quantity != nil {
		if err := validateQuantity(*in.Quantity); err != nil {
			return nil, err
		}
	}
	if in.EntryPrice != nil {
		if err := validatePrice(*in.EntryPrice); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if _, err := resolveStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	var updated *entity.Entry
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Entries.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrEntryNotFound
		}

		refs := references{product: in.ProductID, branch: in.BranchID, supplier: in.SupplierID}
		if err := verifySequentially(ctx, refs.checks(repos)); err != nil {
			return err
		}

		next := *existing
		applyChanges(&next, in)
		next.UpdatedAt = now
		if err := repos.Entries.Update(ctx, &next); err != nil {
			return err
		}

		if next.Pair() == existing.Pair() {
			if err := uc.applyDelta(ctx, repos, next.Pair(), next.Quantity-existing.Quantity, next.Memo, now); err != nil {
				return err
			}
		} else {
			if err := uc.applyDelta(ctx, repos, existing.Pair(), -existing.Quantity, existing.Memo, now); err != nil {
				return err
			}
			if err := uc.applyDelta(ctx, repos, next.Pair(), next.Quantity, next.Memo, now); err != nil {
				return err
			}
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("entry_id", updated.ID).
		Int("quantity", updated.Quantity).
		Msg("entrada de stock actualizada")
	return updated, nil
}

// Delete elimina la entrada y descuenta su cantidad del stock del par.
func (uc *StockLedgerUseCase) Delete(ctx context.Context, id string) (string, error) {
	now := uc.now()
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Entries.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrEntryNotFound
		}
		if err := repos.Entries.Delete(ctx, id); err != nil {
			return err
		}
		return uc.applyDelta(ctx, repos, existing.Pair(), -existing.Quantity, existing.Memo, now)
	})
	if err != nil {
		return "", err
	}

	uc.log.Info().Str("entry_id", id).Msg("entrada de stock eliminada")
	return id, nil
}

// Get devuelve una entrada con los resúmenes de producto, sucursal y proveedor.
func (uc *StockLedgerUseCase) Get(ctx context.Context, id string) (*entity.EntryDetail, error) {
	detail, err := uc.repos.Entries.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrEntryNotFound
	}
	return detail, nil
}

// applyDelta suma delta a la fila de stock del par, bloqueándola primero.
// Un resultado negativo aborta la transacción con ErrStockBelowZero.
func (uc *StockLedgerUseCase) applyDelta(
	ctx context.Context,
	repos repository.Repositories,
	key entity.StockKey,
	delta int,
	memo string,
	now time.Time,
) error {
	if delta == 0 {
		return nil
	}
	stock, err := repos.Stock.GetForUpdate(ctx, key)
	if err != nil {
		return err
	}
	if stock == nil {
		return uc.createStockRow(ctx, repos, key, delta, memo, now)
	}
	newQty := stock.Quantity + delta
	if newQty < 0 {
		return domain.ErrStockBelowZero
	}
	return repos.Stock.UpdateQuantity(ctx, stock.ID, newQty, now)
}

// createStockRow crea la fila faltante con la suma de las entradas vigentes del par.
// Sin desfase esa suma coincide con delta; si no coincide, la fila se había perdido y queda reparada.
// Ojo: en Update con fila ausente y diferencia positiva la fila nueva recibe esa suma y no la
// diferencia, de modo que stock = Σ entradas del par se cumple al confirmar la transacción.
func (uc *StockLedgerUseCase) createStockRow(
	ctx context.Context,
	repos repository.Repositories,
	key entity.StockKey,
	delta int,
	memo string,
	now time.Time,
) error {
	total, err := repos.Entries.SumByPair(ctx, key)
	if err != nil {
		return err
	}
	if total != delta {
		uc.log.Warn().
			Str("product_id", key.ProductID).
			Str("branch_id", key.BranchID).
			Int("delta", delta).
			Int("recomputed", total).
			Msg("fila de stock ausente; se recalcula desde las entradas")
	}
	if total == 0 {
		return nil
	}
	product, err := repos.Products.GetByID(ctx, key.ProductID)
	if err != nil {
		return err
	}
	return repos.Stock.Create(ctx, &entity.Stock{
		ID:        uuid.New().String(),
		ProductID: key.ProductID,
		BranchID:  key.BranchID,
		Quantity:  total,
		Unit:      product.StockUnit(),
		Memo:      memo,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func applyChanges(e *entity.Entry, in UpdateEntryInput) {
	if in.ProductID != nil {
		e.ProductID = *in.ProductID
	}
	if in.SupplierID != nil {
		e.SupplierID = *in.SupplierID
	}
	if in.BranchID != nil {
		e.BranchID = *in.BranchID
	}
	if in.Quantity != nil {
		e.Quantity = *in.Quantity
	}
	if in.EntryPrice != nil {
		e.EntryPrice = *in.EntryPrice
	}
	if in.EntryDate != nil {
		e.EntryDate = in.EntryDate.UTC()
	}
	if in.Invoice != nil {
		e.Invoice = *in.Invoice
	}
	if in.Memo != nil {
		e.Memo = *in.Memo
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
}

func validateQuantity(q int) error {
	if q <= 0 {
		return domain.NewValidationError("quantity must be a positive integer")
	}
	return nil
}

func validatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return domain.NewValidationError("entryPrice must not be negative")
	}
	return nil
}

func resolveStatus(s string) (string, error) {
	switch s {
	case "":
		return entity.EntryStatusActive, nil
	case entity.EntryStatusActive, entity.EntryStatusInactive:
		return s, nil
	default:
		return "", domain.NewValidationError("status must be active or inactive")
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, product_id, branch_id, quantity, unit, memo, created_at, updated_at`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate bloquea la fila del par (SELECT ... FOR UPDATE). Devuelve nil si no existe.
func (r *StockRepo) GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE product_id = $1 AND branch_id = $2 FOR UPDATE`
	var s entity.Stock
	err := scanStock(r.q.QueryRow(ctx, query, key.ProductID, key.BranchID), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Create inserta la fila de stock. UNIQUE(product_id, branch_id) se traduce a ErrDuplicate.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, product_id, branch_id, quantity, unit, memo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		stock.ID, stock.ProductID, stock.BranchID, stock.Quantity, stock.Unit, stock.Memo, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.NewValidationError(domain.MsgInvalidReferences)
		case isCheckViolation(err):
			return domain.ErrStockBelowZero
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de la fila. CHECK (quantity >= 0) respalda el invariante.
func (r *StockRepo) UpdateQuantity(ctx context.Context, id string, quantity int, updatedAt time.Time) error {
	cmd, err := r.q.Exec(ctx, `UPDATE stock SET quantity = $2, updated_at = $3 WHERE id = $1`, id, quantity, updatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrStockBelowZero
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update stock: row %s not found", id)
	}
	return nil
}

// List lista filas de stock filtradas. Con Lock=true bloquea las filas devueltas.
func (r *StockRepo) List(ctx context.Context, filter repository.StockFilter) ([]*entity.Stock, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.BranchID != "" {
		args = append(args, filter.BranchID)
		conds = append(conds, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.LowStock {
		args = append(args, entity.LowStockThreshold)
		conds = append(conds, fmt.Sprintf("quantity < $%d", len(args)))
	}
	query := `SELECT ` + stockColumns + ` FROM stock`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY updated_at DESC, id"
	if filter.Lock {
		query += " FOR UPDATE"
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return nil, domain.NewValidationError(domain.MsgInvalidReferences)
		}
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := scanStock(rows, &s); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func scanStock(row pgx.Row, s *entity.Stock) error {
	return row.Scan(&s.ID, &s.ProductID, &s.BranchID, &s.Quantity, &s.Unit, &s.Memo, &s.CreatedAt, &s.UpdatedAt)
}

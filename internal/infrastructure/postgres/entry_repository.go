package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

const entryColumns = `e.id, e.product_id, e.supplier_id, e.branch_id, e.quantity, e.entry_price,
	e.entry_date, e.invoice, e.memo, e.status, e.created_at, e.updated_at`

const entryDetailColumns = entryColumns + `,
	p.code, p.name, COALESCE(p.unit, ''), b.name, s.name`

const entryJoins = `
	FROM stock_entries e
	JOIN products p ON p.id = e.product_id
	JOIN branches b ON b.id = e.branch_id
	JOIN suppliers s ON s.id = e.supplier_id`

// EntryRepo implementación de EntryRepository sobre PostgreSQL (usable con pool o tx).
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste una entrada de inventario.
func (r *EntryRepo) Create(ctx context.Context, entry *entity.Entry) error {
	query := `
		INSERT INTO stock_entries (id, product_id, supplier_id, branch_id, quantity, entry_price, entry_date, invoice, memo, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.SupplierID, entry.BranchID, entry.Quantity, entry.EntryPrice,
		entry.EntryDate, entry.Invoice, entry.Memo, entry.Status, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return mapEntryWriteError("insert stock entry", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *EntryRepo) GetByID(ctx context.Context, id string) (*entity.Entry, error) {
	return r.getOne(ctx, `SELECT `+entryColumns+` FROM stock_entries e WHERE e.id = $1`, id)
}

// GetForUpdate obtiene la entrada y bloquea la fila hasta el fin de la transacción.
func (r *EntryRepo) GetForUpdate(ctx context.Context, id string) (*entity.Entry, error) {
	return r.getOne(ctx, `SELECT `+entryColumns+` FROM stock_entries e WHERE e.id = $1 FOR UPDATE`, id)
}

func (r *EntryRepo) getOne(ctx context.Context, query, id string) (*entity.Entry, error) {
	var e entity.Entry
	err := scanEntry(r.q.QueryRow(ctx, query, id), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// GetDetail obtiene la entrada con los nombres de producto, sucursal y proveedor.
func (r *EntryRepo) GetDetail(ctx context.Context, id string) (*entity.EntryDetail, error) {
	query := `SELECT ` + entryDetailColumns + entryJoins + ` WHERE e.id = $1`
	var d entity.EntryDetail
	err := scanEntryDetail(r.q.QueryRow(ctx, query, id), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry detail: %w", err)
	}
	return &d, nil
}

// Update reescribe los campos editables de la entrada.
func (r *EntryRepo) Update(ctx context.Context, entry *entity.Entry) error {
	query := `
		UPDATE stock_entries
		SET product_id = $2, supplier_id = $3, branch_id = $4, quantity = $5, entry_price = $6,
		    entry_date = $7, invoice = $8, memo = $9, status = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.SupplierID, entry.BranchID, entry.Quantity, entry.EntryPrice,
		entry.EntryDate, entry.Invoice, entry.Memo, entry.Status, entry.UpdatedAt,
	)
	if err != nil {
		return mapEntryWriteError("update stock entry", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Delete elimina una entrada por ID.
func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// List lista entradas con búsqueda ILIKE y filtro de stock bajo, paginado. Devuelve también el total.
func (r *EntryRepo) List(ctx context.Context, filter repository.EntryFilter) ([]*entity.EntryDetail, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.code ILIKE $%d OR e.invoice ILIKE $%d OR e.memo ILIKE $%d)", n, n, n, n))
	}
	if filter.LowStock {
		args = append(args, entity.LowStockThreshold)
		conds = append(conds, fmt.Sprintf("e.quantity < $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+entryJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock entries: %w", err)
	}

	query := `SELECT ` + entryDetailColumns + entryJoins + where +
		fmt.Sprintf(" ORDER BY e.entry_date DESC, e.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, max(filter.Offset, 0))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.EntryDetail
	for rows.Next() {
		var d entity.EntryDetail
		if err := scanEntryDetail(rows, &d); err != nil {
			return nil, 0, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &d)
	}
	return list, total, rows.Err()
}

// SumByPair suma las cantidades de las entradas vigentes de un par.
func (r *EntryRepo) SumByPair(ctx context.Context, key entity.StockKey) (int, error) {
	var sum int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE product_id = $1 AND branch_id = $2`,
		key.ProductID, key.BranchID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum stock entries: %w", err)
	}
	return sum, nil
}

// TotalsByPair agrupa la suma de entradas por (producto, sucursal).
func (r *EntryRepo) TotalsByPair(ctx context.Context, filter repository.PairFilter) ([]repository.PairTotal, error) {
	query := `SELECT product_id, branch_id, SUM(quantity) FROM stock_entries`
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
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY product_id, branch_id ORDER BY product_id, branch_id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("totals by pair: %w", err)
	}
	defer rows.Close()
	var out []repository.PairTotal
	for rows.Next() {
		var t repository.PairTotal
		if err := rows.Scan(&t.ProductID, &t.BranchID, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan pair total: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanEntry(row pgx.Row, e *entity.Entry) error {
	return row.Scan(
		&e.ID, &e.ProductID, &e.SupplierID, &e.BranchID, &e.Quantity, &e.EntryPrice,
		&e.EntryDate, &e.Invoice, &e.Memo, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
}

func scanEntryDetail(row pgx.Row, d *entity.EntryDetail) error {
	err := row.Scan(
		&d.ID, &d.ProductID, &d.SupplierID, &d.BranchID, &d.Quantity, &d.EntryPrice,
		&d.EntryDate, &d.Invoice, &d.Memo, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.Product.Code, &d.Product.Name, &d.Product.Unit, &d.Branch.Name, &d.Supplier.Name,
	)
	if err != nil {
		return err
	}
	d.Product.ID = d.ProductID
	d.Branch.ID = d.BranchID
	d.Supplier.ID = d.SupplierID
	return nil
}

func mapEntryWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err), isInvalidID(err):
		return domain.NewValidationError(domain.MsgInvalidReferences)
	case isCheckViolation(err):
		return domain.NewValidationError("entry violates quantity or price constraints")
	}
	return fmt.Errorf("%s: %w", op, err)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agro-inventario-api/internal/application/inventory"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
)

// BranchCreateRequest datos para crear la sucursal en la misma operación.
type BranchCreateRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location,omitempty" validate:"max=255"`
	Phone    string `json:"phone,omitempty" validate:"max=50"`
}

// BranchConnectRequest referencia a una sucursal existente.
type BranchConnectRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// BranchInputRequest variante de sucursal: create o connect (exactamente una).
type BranchInputRequest struct {
	Create  *BranchCreateRequest  `json:"create,omitempty" validate:"omitempty"`
	Connect *BranchConnectRequest `json:"connect,omitempty" validate:"omitempty"`
}

// CreateEntryRequest body para POST /api/inventory.
type CreateEntryRequest struct {
	ProductID   string              `json:"productId" validate:"required,uuid"`
	SupplierID  string              `json:"supplierId" validate:"required,uuid"`
	BranchID    string              `json:"branchId,omitempty" validate:"omitempty,uuid"`
	BranchInput *BranchInputRequest `json:"branchInput,omitempty" validate:"omitempty"`
	Quantity    int                 `json:"quantity" validate:"gt=0"`
	EntryPrice  decimal.Decimal     `json:"entryPrice" validate:"dgt0"`
	EntryDate   *string             `json:"entryDate,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Invoice     string              `json:"invoice,omitempty" validate:"max=100"`
	Memo        string              `json:"memo,omitempty"`
	Status      string              `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UpdateEntryRequest body para PUT /api/inventory/:id; campos ausentes no cambian.
type UpdateEntryRequest struct {
	ProductID  *string          `json:"productId,omitempty" validate:"omitempty,uuid"`
	SupplierID *string          `json:"supplierId,omitempty" validate:"omitempty,uuid"`
	BranchID   *string          `json:"branchId,omitempty" validate:"omitempty,uuid"`
	Quantity   *int             `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	EntryPrice *decimal.Decimal `json:"entryPrice,omitempty" validate:"omitempty,dgt0"`
	EntryDate  *string          `json:"entryDate,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Invoice    *string          `json:"invoice,omitempty" validate:"omitempty,max=100"`
	Memo       *string          `json:"memo,omitempty"`
	Status     *string          `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ReconcileRequest body para POST /api/inventory/stock/reconcile.
type ReconcileRequest struct {
	ProductID string `json:"productId,omitempty" validate:"omitempty,uuid"`
	BranchID  string `json:"branchId,omitempty" validate:"omitempty,uuid"`
	DryRun    bool   `json:"dryRun,omitempty"`
}

// EntryResponse entrada de inventario.
type EntryResponse struct {
	EntryID    string          `json:"entryId"`
	ProductID  string          `json:"productId"`
	SupplierID string          `json:"supplierId"`
	BranchID   string          `json:"branchId"`
	Quantity   int             `json:"quantity"`
	EntryPrice decimal.Decimal `json:"entryPrice"`
	EntryDate  time.Time       `json:"entryDate"`
	Invoice    string          `json:"invoice"`
	Memo       string          `json:"memo"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ProductSummaryResponse resumen del producto en listados.
type ProductSummaryResponse struct {
	ProductID string `json:"productId"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Unit      string `json:"unit,omitempty"`
}

// BranchSummaryResponse resumen de la sucursal.
type BranchSummaryResponse struct {
	BranchID string `json:"branchId"`
	Name     string `json:"name"`
}

// SupplierSummaryResponse resumen del proveedor.
type SupplierSummaryResponse struct {
	SupplierID string `json:"supplierId"`
	Name       string `json:"name"`
}

// EntryDetailResponse entrada con sus resúmenes.
type EntryDetailResponse struct {
	EntryResponse
	Product  ProductSummaryResponse  `json:"product"`
	Branch   BranchSummaryResponse   `json:"branch"`
	Supplier SupplierSummaryResponse `json:"supplier"`
}

// ListEntriesResponse respuesta de GET /api/inventory.
type ListEntriesResponse struct {
	StockEntries []EntryDetailResponse `json:"stockEntries"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// DeleteEntryResponse respuesta de DELETE /api/inventory/:id.
type DeleteEntryResponse struct {
	EntryID string `json:"entryId"`
}

// StockResponse fila de stock por (producto, sucursal).
type StockResponse struct {
	StockID   string    `json:"stockId"`
	ProductID string    `json:"productId"`
	BranchID  string    `json:"branchId"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockListResponse respuesta de GET /api/inventory/stock.
type StockListResponse struct {
	Stock []StockResponse `json:"stock"`
	Total int             `json:"total"`
}

// ReconcileResultResponse resultado por par.
type ReconcileResultResponse struct {
	ProductID  string `json:"productId"`
	BranchID   string `json:"branchId"`
	Previous   int    `json:"previous"`
	Recomputed int    `json:"recomputed"`
	Action     string `json:"action"`
}

// ReconcileResponse respuesta de la reconciliación.
type ReconcileResponse struct {
	DryRun  bool                      `json:"dryRun"`
	Changed int                       `json:"changed"`
	Results []ReconcileResultResponse `json:"results"`
}

// ToEntryResponse mapea la entidad a su respuesta.
func ToEntryResponse(e *entity.Entry) EntryResponse {
	return EntryResponse{
		EntryID:    e.ID,
		ProductID:  e.ProductID,
		SupplierID: e.SupplierID,
		BranchID:   e.BranchID,
		Quantity:   e.Quantity,
		EntryPrice: e.EntryPrice,
		EntryDate:  e.EntryDate,
		Invoice:    e.Invoice,
		Memo:       e.Memo,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToEntryDetailResponse mapea la entrada con sus resúmenes.
func ToEntryDetailResponse(d *entity.EntryDetail) EntryDetailResponse {
	return EntryDetailResponse{
		EntryResponse: ToEntryResponse(&d.Entry),
		Product: ProductSummaryResponse{
			ProductID: d.Product.ID,
			Code:      d.Product.Code,
			Name:      d.Product.Name,
			Unit:      d.Product.Unit,
		},
		Branch:   BranchSummaryResponse{BranchID: d.Branch.ID, Name: d.Branch.Name},
		Supplier: SupplierSummaryResponse{SupplierID: d.Supplier.ID, Name: d.Supplier.Name},
	}
}

// ToListEntriesResponse mapea una página del ledger.
func ToListEntriesResponse(page *inventory.EntryPage) ListEntriesResponse {
	out := ListEntriesResponse{
		StockEntries: make([]EntryDetailResponse, 0, len(page.Entries)),
		Pagination: PaginationResponse{
			Page:  page.Pagination.Page,
			Limit: page.Pagination.Limit,
			Total: page.Pagination.Total,
			Pages: page.Pagination.Pages,
		},
	}
	for _, d := range page.Entries {
		out.StockEntries = append(out.StockEntries, ToEntryDetailResponse(d))
	}
	return out
}

// ToStockListResponse mapea filas de stock.
func ToStockListResponse(list []*entity.Stock) StockListResponse {
	out := StockListResponse{Stock: make([]StockResponse, 0, len(list)), Total: len(list)}
	for _, s := range list {
		out.Stock = append(out.Stock, StockResponse{
			StockID:   s.ID,
			ProductID: s.ProductID,
			BranchID:  s.BranchID,
			Quantity:  s.Quantity,
			Unit:      s.Unit,
			Memo:      s.Memo,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return out
}

// ToReconcileResponse mapea los resultados de la reconciliación.
func ToReconcileResponse(dryRun bool, results []inventory.ReconcileResult) ReconcileResponse {
	out := ReconcileResponse{DryRun: dryRun, Results: make([]ReconcileResultResponse, 0, len(results))}
	for _, r := range results {
		if r.Action != inventory.ReconcileUnchanged {
			out.Changed++
		}
		out.Results = append(out.Results, ReconcileResultResponse{
			ProductID:  r.ProductID,
			BranchID:   r.BranchID,
			Previous:   r.Previous,
			Recomputed: r.Recomputed,
			Action:     r.Action,
		})
	}
	return out
}

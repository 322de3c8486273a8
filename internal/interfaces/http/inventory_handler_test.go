package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario-api/internal/application/dto"
	"github.com/jhoicas/agro-inventario-api/internal/application/inventory"
	"github.com/jhoicas/agro-inventario-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/agro-inventario-api/internal/interfaces/http"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
)

const missingID = "00000000-0000-4000-8000-000000000099"

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewDemo()
	uc := inventory.NewStockLedgerUseCase(store, store.Repositories(), logger.Nop())
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, apphttp.RouterDeps{Ledger: uc, Log: logger.Nop()})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func validCreateBody(qty int) map[string]any {
	return map[string]any{
		"productId":  memory.DemoProductUreaID,
		"supplierId": memory.DemoSupplierID,
		"branchId":   memory.DemoBranchCentralID,
		"quantity":   qty,
		"entryPrice": "125000.50",
		"invoice":    "FAC-1001",
	}
}

func createEntry(t *testing.T, app *fiber.App, qty int) dto.EntryResponse {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/api/inventory", validCreateBody(qty))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	return decode[dto.EntryResponse](t, raw)
}

func stockQuantity(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodGet,
		"/api/inventory/stock?productId="+memory.DemoProductUreaID+"&branchId="+memory.DemoBranchCentralID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	list := decode[dto.StockListResponse](t, raw)
	require.Len(t, list.Stock, 1)
	return list.Stock[0].Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios del ledger vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryHTTP_FlujoCompleto(t *testing.T) {
	app, _ := buildTestApp(t)

	first := createEntry(t, app, 10)
	assert.Equal(t, "active", first.Status)
	assert.Equal(t, "125000.5", first.EntryPrice.String())
	assert.Equal(t, 10, stockQuantity(t, app))

	createEntry(t, app, 5)
	assert.Equal(t, 15, stockQuantity(t, app))

	resp, raw := doJSON(t, app, http.MethodPut, "/api/inventory/"+first.EntryID, map[string]any{"quantity": 3})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, 3, decode[dto.EntryResponse](t, raw).Quantity)
	assert.Equal(t, 8, stockQuantity(t, app))

	resp, raw = doJSON(t, app, http.MethodDelete, "/api/inventory/"+first.EntryID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, first.EntryID, decode[dto.DeleteEntryResponse](t, raw).EntryID)
	assert.Equal(t, 5, stockQuantity(t, app))

	resp, _ = doJSON(t, app, http.MethodGet, "/api/inventory/"+first.EntryID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInventoryHTTP_ListPaginaCeroEs400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/inventory?page=0", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "Invalid pagination parameters", body.Error)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/inventory?limit=abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInventoryHTTP_ListPaginadoYLecturaIdempotente(t *testing.T) {
	app, _ := buildTestApp(t)
	for i := 0; i < 3; i++ {
		createEntry(t, app, 10+i)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/api/inventory?page=2&limit=2&search=urea", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	page := decode[dto.ListEntriesResponse](t, raw)
	assert.Equal(t, dto.PaginationResponse{Page: 2, Limit: 2, Total: 3, Pages: 2}, page.Pagination)
	require.Len(t, page.StockEntries, 1)
	assert.Equal(t, "Urea 46%", page.StockEntries[0].Product.Name)
	assert.Equal(t, "Bodega central", page.StockEntries[0].Branch.Name)

	_, again := doJSON(t, app, http.MethodGet, "/api/inventory?page=2&limit=2&search=urea", nil)
	assert.JSONEq(t, string(raw), string(again))
}

func TestInventoryHTTP_ListPaginaEnormeDevuelvePaginaVacia(t *testing.T) {
	app, _ := buildTestApp(t)
	createEntry(t, app, 10)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/inventory?limit=10&page="+strconv.Itoa(math.MaxInt), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	page := decode[dto.ListEntriesResponse](t, raw)
	assert.Empty(t, page.StockEntries)
	assert.Equal(t, dto.PaginationResponse{Page: math.MaxInt, Limit: 10, Total: 1, Pages: 1}, page.Pagination)
}

func TestInventoryHTTP_ListSinResultadosDevuelveArregloVacio(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/inventory", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"stockEntries":[],"pagination":{"page":1,"limit":10,"total":0,"pages":0}}`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y clasificación de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryHTTP_CreateEsquemaInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	body := validCreateBody(0)
	body["productId"] = "no-es-uuid"
	body["status"] = "archived"
	resp, raw := doJSON(t, app, http.MethodPost, "/api/inventory", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errBody := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, apphttp.CodeValidation, errBody.Code)
	fields := map[string]string{}
	for _, d := range errBody.Details {
		fields[d.Field] = d.Tag
	}
	assert.Equal(t, "uuid", fields["productId"])
	assert.Equal(t, "gt", fields["quantity"])
	assert.Equal(t, "oneof", fields["status"])
}

func TestInventoryHTTP_CreateCuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBufferString("{no json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInventoryHTTP_CreateReferenciaInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	body := validCreateBody(4)
	body["supplierId"] = missingID
	resp, raw := doJSON(t, app, http.MethodPost, "/api/inventory", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid product, branch, or supplier ID", decode[dto.ErrorResponse](t, raw).Error)
}

func TestInventoryHTTP_CreateVarianteDeSucursal(t *testing.T) {
	app, _ := buildTestApp(t)

	both := validCreateBody(4)
	both["branchInput"] = map[string]any{"create": map[string]any{"name": "Bodega norte"}}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory", both)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "branchId y branchInput son excluyentes")

	none := validCreateBody(4)
	delete(none, "branchId")
	resp, _ = doJSON(t, app, http.MethodPost, "/api/inventory", none)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	inline := validCreateBody(4)
	delete(inline, "branchId")
	inline["branchInput"] = map[string]any{"create": map[string]any{"name": "Bodega norte", "location": "Vereda El Alto"}}
	resp, raw := doJSON(t, app, http.MethodPost, "/api/inventory", inline)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	created := decode[dto.EntryResponse](t, raw)
	assert.NotEqual(t, memory.DemoBranchCentralID, created.BranchID)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/inventory/"+created.EntryID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bodega norte", decode[dto.EntryDetailResponse](t, raw).Branch.Name)

	connect := validCreateBody(2)
	delete(connect, "branchId")
	connect["branchInput"] = map[string]any{"connect": map[string]any{"id": memory.DemoBranchCentralID}}
	resp, raw = doJSON(t, app, http.MethodPost, "/api/inventory", connect)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	assert.Equal(t, memory.DemoBranchCentralID, decode[dto.EntryResponse](t, raw).BranchID)
}

func TestInventoryHTTP_EntradaInexistenteEs404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPut, "/api/inventory/"+missingID, map[string]any{"quantity": 3})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Stock entry not found", decode[dto.ErrorResponse](t, raw).Error)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/inventory/"+missingID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/inventory/no-es-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInventoryHTTP_StockBajoCeroEs400(t *testing.T) {
	app, store := buildTestApp(t)
	entry := createEntry(t, app, 10)

	// Desfase provocado: la fila de stock queda por debajo de la suma de entradas.
	resp, raw := doJSON(t, app, http.MethodGet, "/api/inventory/stock", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	row := decode[dto.StockListResponse](t, raw).Stock[0]
	require.NoError(t, store.Repositories().Stock.UpdateQuantity(t.Context(), row.StockID, 2, row.UpdatedAt))

	resp, raw = doJSON(t, app, http.MethodPut, "/api/inventory/"+entry.EntryID, map[string]any{"quantity": 1})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, apphttp.CodeStockBelowZero, errBody.Code)
	assert.Equal(t, "Cannot reduce stock below zero", errBody.Error)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/inventory/"+entry.EntryID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, decode[dto.EntryDetailResponse](t, raw).Quantity, "la entrada no cambia")
	assert.Equal(t, 2, stockQuantity(t, app))

	// La reconciliación repara el desfase.
	resp, raw = doJSON(t, app, http.MethodPost, "/api/inventory/stock/reconcile", map[string]any{})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	rec := decode[dto.ReconcileResponse](t, raw)
	assert.Equal(t, 1, rec.Changed)
	require.Len(t, rec.Results, 1)
	assert.Equal(t, inventory.ReconcileAdjusted, rec.Results[0].Action)
	assert.Equal(t, 10, stockQuantity(t, app))
}

func TestInventoryHTTP_Health(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"test"}`, string(raw))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

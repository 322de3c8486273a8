package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/agro-inventario-api/internal/application/dto"
	"github.com/jhoicas/agro-inventario-api/internal/application/inventory"
	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
	"github.com/jhoicas/agro-inventario-api/pkg/validator"
)

// Valores por defecto del listado.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// InventoryHandler maneja las peticiones HTTP de entradas de inventario y stock.
type InventoryHandler struct {
	uc  *inventory.StockLedgerUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockLedgerUseCase, log *logger.Logger) *InventoryHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar entradas de inventario
// @Tags         inventory
// @Produce      json
// @Param        page      query  int     false  "Página (>= 1)"           default(1)
// @Param        limit     query  int     false  "Tamaño de página (1-100)" default(10)
// @Param        search    query  string  false  "Producto, código, factura o memo"
// @Param        lowStock  query  bool    false  "Solo entradas con cantidad < 50"
// @Success      200  {object}  dto.ListEntriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page, okPage := queryInt(c, "page", defaultPage)
	limit, okLimit := queryInt(c, "limit", defaultLimit)
	if !okPage || !okLimit {
		return writeBadRequest(c, CodeValidation, domain.MsgInvalidPagination)
	}
	out, err := h.uc.List(c.UserContext(), inventory.ListEntriesInput{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		LowStock: c.QueryBool("lowStock", false),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ToListEntriesResponse(out))
}

// Create godoc
// @Summary      Registrar entrada de inventario
// @Description  Crea la entrada y suma su cantidad al stock del par (producto, sucursal) en una sola transacción.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "productId, supplierId, branchId o branchInput, quantity, entryPrice"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadRequest(c, CodeInvalidBody, MsgInvalidBody)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeSchemaErrors(c, errs)
	}
	branch, msg := branchRef(in)
	if msg != "" {
		return writeBadRequest(c, CodeValidation, msg)
	}
	entryDate, ok := parseEntryDate(in.EntryDate)
	if !ok {
		return writeBadRequest(c, CodeValidation, MsgInvalidEntryDate)
	}

	entry, err := h.uc.Create(c.UserContext(), inventory.CreateEntryInput{
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Branch:     branch,
		Quantity:   in.Quantity,
		EntryPrice: in.EntryPrice,
		EntryDate:  entryDate,
		Invoice:    in.Invoice,
		Memo:       in.Memo,
		Status:     in.Status,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToEntryResponse(entry))
}

// Get godoc
// @Summary      Obtener entrada por ID
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.EntryDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, ok := entryID(c)
	if !ok {
		return writeBadRequest(c, CodeValidation, MsgInvalidEntryID)
	}
	detail, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ToEntryDetailResponse(detail))
}

// Update godoc
// @Summary      Actualizar entrada de inventario
// @Description  Aplica los campos recibidos y ajusta el stock por la diferencia de cantidad.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la entrada"
// @Param        body  body  dto.UpdateEntryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, ok := entryID(c)
	if !ok {
		return writeBadRequest(c, CodeValidation, MsgInvalidEntryID)
	}
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadRequest(c, CodeInvalidBody, MsgInvalidBody)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeSchemaErrors(c, errs)
	}
	entryDate, ok := parseEntryDate(in.EntryDate)
	if !ok {
		return writeBadRequest(c, CodeValidation, MsgInvalidEntryDate)
	}

	entry, err := h.uc.Update(c.UserContext(), id, inventory.UpdateEntryInput{
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		BranchID:   in.BranchID,
		Quantity:   in.Quantity,
		EntryPrice: in.EntryPrice,
		EntryDate:  entryDate,
		Invoice:    in.Invoice,
		Memo:       in.Memo,
		Status:     in.Status,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ToEntryResponse(entry))
}

// Delete godoc
// @Summary      Eliminar entrada de inventario
// @Description  Elimina la entrada y descuenta su cantidad del stock del par.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.DeleteEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := entryID(c)
	if !ok {
		return writeBadRequest(c, CodeValidation, MsgInvalidEntryID)
	}
	deleted, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.DeleteEntryResponse{EntryID: deleted})
}

// ListStock godoc
// @Summary      Listar stock por producto y sucursal
// @Tags         stock
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto (UUID)"
// @Param        branchId   query  string  false  "Filtrar por sucursal (UUID)"
// @Param        lowStock   query  bool    false  "Solo filas con cantidad < 50"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	productID := c.Query("productId")
	branchID := c.Query("branchId")
	if !optionalUUID(productID) || !optionalUUID(branchID) {
		return writeBadRequest(c, CodeValidation, domain.MsgInvalidReferences)
	}
	list, err := h.uc.ListStock(c.UserContext(), repository.StockFilter{
		ProductID: productID,
		BranchID:  branchID,
		LowStock:  c.QueryBool("lowStock", false),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ToStockListResponse(list))
}

// Reconcile godoc
// @Summary      Reconciliar stock con las entradas
// @Description  Recalcula el stock de cada par como la suma de sus entradas y corrige las filas desfasadas.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  false  "Filtro opcional por producto y/o sucursal"
// @Success      200   {object}  dto.ReconcileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/reconcile [post]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return writeBadRequest(c, CodeInvalidBody, MsgInvalidBody)
		}
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeSchemaErrors(c, errs)
	}
	results, err := h.uc.Reconcile(c.UserContext(), inventory.ReconcileInput{
		ProductID: in.ProductID,
		BranchID:  in.BranchID,
		DryRun:    in.DryRun,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ToReconcileResponse(in.DryRun, results))
}

// branchRef traduce branchId / branchInput a la variante del caso de uso.
// Devuelve un mensaje no vacío si la combinación es inválida.
func branchRef(in dto.CreateEntryRequest) (inventory.BranchRef, string) {
	hasID := in.BranchID != ""
	hasInput := in.BranchInput != nil
	switch {
	case hasID && hasInput:
		return nil, domain.MsgBranchAmbiguous
	case hasID:
		return inventory.ExistingBranch{ID: in.BranchID}, ""
	case !hasInput:
		return nil, domain.MsgBranchRequired
	}
	bi := in.BranchInput
	switch {
	case bi.Create != nil && bi.Connect == nil:
		return inventory.NewBranch{Name: bi.Create.Name, Location: bi.Create.Location, Phone: bi.Create.Phone}, ""
	case bi.Connect != nil && bi.Create == nil:
		return inventory.ExistingBranch{ID: bi.Connect.ID}, ""
	}
	return nil, MsgInvalidBranchForm
}

func parseEntryDate(s *string) (*time.Time, bool) {
	if s == nil {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*s))
	if err != nil {
		return nil, false
	}
	return &t, true
}

func entryID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func optionalUUID(s string) bool {
	if s == "" {
		return true
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// queryInt lee un entero de la query; ausente = def. ok=false si no es numérico.
func queryInt(c *fiber.Ctx, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

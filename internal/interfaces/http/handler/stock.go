package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appinventory "github.com/restopos/backend/internal/application/inventory"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockService is what StockHandler needs from the stock ledger
type StockService interface {
	Adjust(ctx context.Context, in appinventory.AdjustInput) (*inventory.StockRecord, error)
	ProcessWaste(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference, notes string, actor *uuid.UUID) (*inventory.StockRecord, error)
	SetLimits(ctx context.Context, key inventory.StockKey, minQty, maxQty decimal.Decimal) (*inventory.StockRecord, error)
	ListStock(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID) ([]inventory.StockRecord, error)
	LowStock(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID) ([]inventory.StockRecord, error)
	Movements(ctx context.Context, filter inventory.MovementFilter) ([]inventory.InventoryMovement, error)
}

// StockHandler handles stock level and movement endpoints
type StockHandler struct {
	BaseHandler
	stock StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stock StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

// RegisterRoutes registers the stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	stock.GET("", h.List)
	stock.GET("/low", h.Low)
	stock.POST("/adjust", h.Adjust)
	stock.POST("/waste", h.Waste)
	stock.PUT("/limits", h.SetLimits)
	stock.GET("/movements", h.Movements)
}

// StockQuery filters stock listings by branch
type StockQuery struct {
	BranchID string `form:"branch_id" binding:"omitempty,uuid"`
}

func (h *StockHandler) listQuery(c *gin.Context) (uuid.UUID, *uuid.UUID, bool) {
	businessID, ok := h.businessID(c)
	if !ok {
		return uuid.Nil, nil, false
	}
	var q StockQuery
	if !h.bindQuery(c, &q) {
		return uuid.Nil, nil, false
	}
	branchID, _ := parseOptionalUUID(q.BranchID)
	return businessID, branchID, true
}

// List returns stock rows; without a branch filter one row per item
//
//	@ID				listStock
//	@Summary		List stock
//	@Description	List stock rows. Without a branch filter each item appears once.
//	@Tags			stock
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			branch_id		query		string	false	"Branch ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]StockResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/stock [get]
func (h *StockHandler) List(c *gin.Context) {
	businessID, branchID, ok := h.listQuery(c)
	if !ok {
		return
	}
	records, err := h.stock.ListStock(c.Request.Context(), businessID, branchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, toStockResponses(records), int64(len(records)), 0, 0)
}

// Low returns rows at or below their minimum
//
//	@ID				listLowStock
//	@Summary		List low stock
//	@Description	List stock rows at or below their minimum quantity
//	@Tags			stock
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			branch_id		query		string	false	"Branch ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]StockResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/stock/low [get]
func (h *StockHandler) Low(c *gin.Context) {
	businessID, branchID, ok := h.listQuery(c)
	if !ok {
		return
	}
	records, err := h.stock.LowStock(c.Request.Context(), businessID, branchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, toStockResponses(records), int64(len(records)), 0, 0)
}

// AdjustStockRequest is the body of POST /stock/adjust
type AdjustStockRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	BranchID *uuid.UUID      `json:"branch_id"`
	Delta    decimal.Decimal `json:"delta"`
	UnitCost decimal.Decimal `json:"unit_cost" binding:"gte=0"`
	Notes    string          `json:"notes" binding:"max=500"`
}

// Adjust applies a manual on-hand correction
//
//	@ID				adjustStock
//	@Summary		Adjust stock
//	@Description	Apply a manual on-hand correction in storage units
//	@Tags			stock
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string				false	"Acting user ID"	format(uuid)
//	@Param			request			body		AdjustStockRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[StockResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/stock/adjust [post]
func (h *StockHandler) Adjust(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var req AdjustStockRequest
	if !h.bind(c, &req) {
		return
	}
	if req.Delta.IsZero() {
		h.HandleError(c, shared.NewValidationError("delta must not be zero"))
		return
	}

	rec, err := h.stock.Adjust(c.Request.Context(), appinventory.AdjustInput{
		Key:          inventory.StockKey{BusinessID: businessID, BranchID: req.BranchID, ItemID: req.ItemID},
		Delta:        req.Delta,
		MovementType: inventory.MovementManualAdjustment,
		Reference:    inventory.Reference{Type: inventory.ReferenceManual},
		UnitCost:     req.UnitCost,
		Notes:        req.Notes,
		ActorID:      h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toStockResponse(rec))
}

// WasteStockRequest is the body of POST /stock/waste
type WasteStockRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	BranchID *uuid.UUID      `json:"branch_id"`
	Quantity decimal.Decimal `json:"quantity" binding:"gt=0"`
	OrderID  *uuid.UUID      `json:"order_id"`
	Notes    string          `json:"notes" binding:"max=500"`
}

// Waste books spoiled or dropped stock that was never reserved
//
//	@ID				wasteStock
//	@Summary		Record waste
//	@Description	Deduct spoiled or dropped stock that was never reserved
//	@Tags			stock
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string				false	"Acting user ID"	format(uuid)
//	@Param			request			body		WasteStockRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[StockResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/stock/waste [post]
func (h *StockHandler) Waste(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var req WasteStockRequest
	if !h.bind(c, &req) {
		return
	}

	ref := inventory.Reference{Type: inventory.ReferenceManual}
	if req.OrderID != nil {
		ref = inventory.RefTo(inventory.ReferenceOrder, *req.OrderID)
	}
	key := inventory.StockKey{BusinessID: businessID, BranchID: req.BranchID, ItemID: req.ItemID}
	rec, err := h.stock.ProcessWaste(c.Request.Context(), key, req.Quantity, ref, req.Notes, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toStockResponse(rec))
}

// SetLimitsRequest is the body of PUT /stock/limits
type SetLimitsRequest struct {
	ItemID      uuid.UUID       `json:"item_id" binding:"required"`
	BranchID    *uuid.UUID      `json:"branch_id"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	MaxQuantity decimal.Decimal `json:"max_quantity"`
}

// SetLimits sets the reorder thresholds of a stock row
//
//	@ID				setStockLimits
//	@Summary		Set stock limits
//	@Description	Set the minimum and maximum quantities of a stock row
//	@Tags			stock
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			request			body		SetLimitsRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[StockResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/stock/limits [put]
func (h *StockHandler) SetLimits(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var req SetLimitsRequest
	if !h.bind(c, &req) {
		return
	}
	key := inventory.StockKey{BusinessID: businessID, BranchID: req.BranchID, ItemID: req.ItemID}
	rec, err := h.stock.SetLimits(c.Request.Context(), key, req.MinQuantity, req.MaxQuantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toStockResponse(rec))
}

// MovementQuery filters the movement log
type MovementQuery struct {
	BranchID      string `form:"branch_id" binding:"omitempty,uuid"`
	ItemID        string `form:"item_id" binding:"omitempty,uuid"`
	MovementType  string `form:"movement_type"`
	ReferenceType string `form:"reference_type"`
	ReferenceID   string `form:"reference_id" binding:"omitempty,uuid"`
	Since         string `form:"since" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// Movements queries the append-only movement log
//
//	@ID				listStockMovements
//	@Summary		List stock movements
//	@Description	Query the append-only movement log, newest first unless sorted otherwise
//	@Tags			stock
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			branch_id		query		string	false	"Branch ID"	format(uuid)
//	@Param			item_id			query		string	false	"Item ID"	format(uuid)
//	@Param			movement_type	query		string	false	"Movement type"
//	@Param			reference_type	query		string	false	"Reference type"
//	@Param			reference_id	query		string	false	"Reference ID"	format(uuid)
//	@Param			since			query		string	false	"Only movements at or after this RFC 3339 time"	format(date-time)
//	@Param			sort_by			query		string	false	"Sort field"
//	@Param			sort_order		query		string	false	"Sort order"
//	@Param			page			query		integer	false	"Page number"
//	@Param			page_size		query		integer	false	"Page size"
//	@Success		200				{object}	APIResponse[[]MovementResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/stock/movements [get]
func (h *StockHandler) Movements(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var q MovementQuery
	if !h.bindQuery(c, &q) {
		return
	}

	filter := inventory.MovementFilter{
		BusinessID: businessID,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
		Filter:     shared.Filter{Page: q.Page, PageSize: q.PageSize},
	}
	filter.BranchID, _ = parseOptionalUUID(q.BranchID)
	filter.ItemID, _ = parseOptionalUUID(q.ItemID)
	filter.ReferenceID, _ = parseOptionalUUID(q.ReferenceID)
	if q.MovementType != "" {
		mt := inventory.MovementType(q.MovementType)
		if !mt.IsValid() {
			h.HandleError(c, shared.NewValidationError("unknown movement type %q", q.MovementType))
			return
		}
		filter.MovementType = &mt
	}
	if q.ReferenceType != "" {
		rt := inventory.ReferenceType(q.ReferenceType)
		filter.ReferenceType = &rt
	}
	if q.Since != "" {
		since, _ := time.Parse(time.RFC3339, q.Since)
		filter.Since = &since
	}

	movements, err := h.stock.Movements(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, toMovementResponses(movements), int64(len(movements)), filter.Page, filter.Limit())
}

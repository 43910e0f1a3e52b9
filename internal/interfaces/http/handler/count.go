package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// CountService is what CountHandler needs from physical inventory counts
type CountService interface {
	Create(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, notes string, actor *uuid.UUID) (*inventory.InventoryCount, error)
	Get(ctx context.Context, businessID, id uuid.UUID) (*inventory.InventoryCount, error)
	RecordCount(ctx context.Context, businessID, id, itemID uuid.UUID, counted decimal.Decimal) (*inventory.CountLine, error)
	Complete(ctx context.Context, businessID, id uuid.UUID, actor *uuid.UUID) (*inventory.InventoryCount, error)
	Cancel(ctx context.Context, businessID, id uuid.UUID) (*inventory.InventoryCount, error)
}

// CountHandler handles inventory count endpoints
type CountHandler struct {
	BaseHandler
	counts CountService
}

// NewCountHandler creates a new CountHandler
func NewCountHandler(counts CountService) *CountHandler {
	return &CountHandler{counts: counts}
}

// RegisterRoutes registers the count routes
func (h *CountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	counts := rg.Group("/counts")
	counts.POST("", h.Create)
	counts.GET("/:id", h.Get)
	counts.PUT("/:id/items/:itemId", h.RecordCount)
	counts.POST("/:id/complete", h.Complete)
	counts.POST("/:id/cancel", h.Cancel)
}

// CreateCountRequest is the body of POST /counts
type CreateCountRequest struct {
	BranchID *uuid.UUID `json:"branch_id"`
	Notes    string     `json:"notes" binding:"max=2000"`
}

// Create snapshots the expected quantities of a branch into a new count
//
//	@ID				createCount
//	@Summary		Start a count
//	@Description	Snapshot the expected quantities of a branch into a new inventory count
//	@Tags			counts
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string				false	"Acting user ID"	format(uuid)
//	@Param			request			body		CreateCountRequest	false	"Request body"
//	@Success		201				{object}	APIResponse[CountResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/counts [post]
func (h *CountHandler) Create(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var req CreateCountRequest
	if c.Request.ContentLength != 0 && !h.bind(c, &req) {
		return
	}
	count, err := h.counts.Create(c.Request.Context(), businessID, req.BranchID, req.Notes, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toCountResponse(count))
}

// Get returns a count with its lines
//
//	@ID				getCount
//	@Summary		Get a count
//	@Description	Get an inventory count with its lines
//	@Tags			counts
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Count ID"	format(uuid)
//	@Success		200				{object}	APIResponse[CountResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/counts/{id} [get]
func (h *CountHandler) Get(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	count, err := h.counts.Get(c.Request.Context(), businessID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCountResponse(count))
}

// RecordCountRequest is the body of PUT /counts/:id/items/:itemId
type RecordCountRequest struct {
	CountedQuantity decimal.Decimal `json:"counted_quantity" binding:"gte=0"`
}

// RecordCount sets the counted quantity of one item
//
//	@ID				recordCountLine
//	@Summary		Record a counted quantity
//	@Description	Set the counted quantity of one item of an in-progress count
//	@Tags			counts
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			id				path		string				true	"Count ID"	format(uuid)
//	@Param			itemId			path		string				true	"Item ID"	format(uuid)
//	@Param			request			body		RecordCountRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[CountLineResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/counts/{id}/items/{itemId} [put]
func (h *CountHandler) RecordCount(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.uuidParam(c, "itemId")
	if !ok {
		return
	}
	var req RecordCountRequest
	if !h.bind(c, &req) {
		return
	}
	line, err := h.counts.RecordCount(c.Request.Context(), businessID, id, itemID, req.CountedQuantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCountLineResponse(line))
}

// Complete books the variance of every counted line into stock
//
//	@ID				completeCount
//	@Summary		Complete a count
//	@Description	Book the variance of every counted line into stock
//	@Tags			counts
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string	false	"Acting user ID"	format(uuid)
//	@Param			id				path		string	true	"Count ID"	format(uuid)
//	@Success		200				{object}	APIResponse[CountResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/counts/{id}/complete [post]
func (h *CountHandler) Complete(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	count, err := h.counts.Complete(c.Request.Context(), businessID, id, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCountResponse(count))
}

// Cancel abandons an in-progress count
//
//	@ID				cancelCount
//	@Summary		Cancel a count
//	@Description	Abandon an in-progress count
//	@Tags			counts
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Count ID"	format(uuid)
//	@Success		200				{object}	APIResponse[CountResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/counts/{id}/cancel [post]
func (h *CountHandler) Cancel(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	count, err := h.counts.Cancel(c.Request.Context(), businessID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCountResponse(count))
}

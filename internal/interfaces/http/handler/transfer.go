package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appinventory "github.com/restopos/backend/internal/application/inventory"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// TransferService is what TransferHandler needs from branch transfers
type TransferService interface {
	Create(ctx context.Context, in appinventory.CreateTransferInput) (*inventory.Transfer, error)
	Get(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error)
	Dispatch(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error)
	Receive(ctx context.Context, businessID, id uuid.UUID, received map[uuid.UUID]decimal.Decimal, actor *uuid.UUID) (*inventory.Transfer, error)
	Cancel(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error)
}

// TransferHandler handles stock transfer endpoints
type TransferHandler struct {
	BaseHandler
	transfers TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transfers TransferService) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

// RegisterRoutes registers the transfer routes
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transfers := rg.Group("/transfers")
	transfers.POST("", h.Create)
	transfers.GET("/:id", h.Get)
	transfers.POST("/:id/dispatch", h.Dispatch)
	transfers.POST("/:id/receive", h.Receive)
	transfers.POST("/:id/cancel", h.Cancel)
}

// TransferLineRequest is one requested line
type TransferLineRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"gt=0"`
}

// CreateTransferRequest is the body of POST /transfers
type CreateTransferRequest struct {
	FromBranchID uuid.UUID             `json:"from_branch_id" binding:"required"`
	ToBusinessID uuid.UUID             `json:"to_business_id"`
	ToBranchID   uuid.UUID             `json:"to_branch_id" binding:"required"`
	Notes        string                `json:"notes" binding:"max=2000"`
	Lines        []TransferLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Create creates a pending transfer. A blank destination business means the caller's own.
//
//	@ID				createTransfer
//	@Summary		Create a transfer
//	@Description	Create a pending transfer between branches. A blank destination business means the caller.
//	@Tags			transfers
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string					true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string					false	"Acting user ID"	format(uuid)
//	@Param			request			body		CreateTransferRequest	true	"Request body"
//	@Success		201				{object}	APIResponse[TransferResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/transfers [post]
func (h *TransferHandler) Create(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var req CreateTransferRequest
	if !h.bind(c, &req) {
		return
	}

	lines := make([]inventory.TransferLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = inventory.TransferLineInput{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	t, err := h.transfers.Create(c.Request.Context(), appinventory.CreateTransferInput{
		BusinessID:   businessID,
		FromBranchID: req.FromBranchID,
		ToBusinessID: req.ToBusinessID,
		ToBranchID:   req.ToBranchID,
		Lines:        lines,
		Notes:        req.Notes,
		ActorID:      h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toTransferResponse(t))
}

// Get returns a transfer visible to the source or destination business
//
//	@ID				getTransfer
//	@Summary		Get a transfer
//	@Description	Get a transfer visible to its source or destination business
//	@Tags			transfers
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Transfer ID"	format(uuid)
//	@Success		200				{object}	APIResponse[TransferResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/transfers/{id} [get]
func (h *TransferHandler) Get(c *gin.Context) {
	h.run(c, h.transfers.Get)
}

// Dispatch holds the source stock of a pending transfer
//
//	@ID				dispatchTransfer
//	@Summary		Dispatch a transfer
//	@Description	Hold the source stock of a pending transfer
//	@Tags			transfers
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Transfer ID"	format(uuid)
//	@Success		200				{object}	APIResponse[TransferResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/transfers/{id}/dispatch [post]
func (h *TransferHandler) Dispatch(c *gin.Context) {
	h.run(c, h.transfers.Dispatch)
}

// Cancel cancels a transfer that was not received, releasing any hold
//
//	@ID				cancelTransfer
//	@Summary		Cancel a transfer
//	@Description	Cancel a transfer that was not received, releasing any held stock
//	@Tags			transfers
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Transfer ID"	format(uuid)
//	@Success		200				{object}	APIResponse[TransferResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/transfers/{id}/cancel [post]
func (h *TransferHandler) Cancel(c *gin.Context) {
	h.run(c, h.transfers.Cancel)
}

func (h *TransferHandler) run(c *gin.Context, fn func(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error)) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	t, err := fn(c.Request.Context(), businessID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toTransferResponse(t))
}

// ReceivedLineRequest is the quantity that arrived on one line
type ReceivedLineRequest struct {
	LineID           uuid.UUID       `json:"line_id" binding:"required"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity" binding:"gte=0"`
}

// ReceiveTransferRequest is the body of POST /transfers/:id/receive.
// Lines left out arrive in full.
type ReceiveTransferRequest struct {
	Lines []ReceivedLineRequest `json:"lines" binding:"dive"`
}

// Receive moves the stock from the source to the destination branch
//
//	@ID				receiveTransfer
//	@Summary		Receive a transfer
//	@Description	Move the stock to the destination branch. Lines left out arrive in full.
//	@Tags			transfers
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string					true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string					false	"Acting user ID"	format(uuid)
//	@Param			id				path		string					true	"Transfer ID"	format(uuid)
//	@Param			request			body		ReceiveTransferRequest	false	"Request body"
//	@Success		200				{object}	APIResponse[TransferResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/transfers/{id}/receive [post]
func (h *TransferHandler) Receive(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req ReceiveTransferRequest
	if c.Request.ContentLength != 0 && !h.bind(c, &req) {
		return
	}

	received := make(map[uuid.UUID]decimal.Decimal, len(req.Lines))
	for _, l := range req.Lines {
		received[l.LineID] = l.ReceivedQuantity
	}
	t, err := h.transfers.Receive(c.Request.Context(), businessID, id, received, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toTransferResponse(t))
}

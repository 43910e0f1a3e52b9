package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apppurchasing "github.com/restopos/backend/internal/application/purchasing"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/restopos/backend/internal/infrastructure/storage"
	"github.com/restopos/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// ReceivingService is what PurchaseOrderHandler needs from purchase receiving
type ReceivingService interface {
	Create(ctx context.Context, in apppurchasing.CreatePurchaseOrderInput) (*purchasing.PurchaseOrder, error)
	Get(ctx context.Context, businessID, id uuid.UUID) (*purchasing.PurchaseOrder, error)
	History(ctx context.Context, businessID, id uuid.UUID) ([]purchasing.Activity, error)
	Count(ctx context.Context, businessID, id uuid.UUID, entries []purchasing.LineCount, actor *uuid.UUID) (*purchasing.PurchaseOrder, error)
	Receive(ctx context.Context, businessID, id uuid.UUID, in apppurchasing.ReceiveInput, actor *uuid.UUID) (*purchasing.PurchaseOrder, error)
	Cancel(ctx context.Context, businessID, id uuid.UUID, reason string, actor *uuid.UUID) (*purchasing.PurchaseOrder, error)
}

// InvoiceUploader presigns invoice image uploads
type InvoiceUploader interface {
	UploadURL(ctx context.Context, businessID, purchaseOrderID uuid.UUID, contentType string) (*storage.UploadTarget, error)
}

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	receiving ReceivingService
	uploader  InvoiceUploader
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler.
// uploader may be nil when object storage is not configured.
func NewPurchaseOrderHandler(receiving ReceivingService, uploader InvoiceUploader) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{receiving: receiving, uploader: uploader}
}

// RegisterRoutes registers the purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pos := rg.Group("/purchase-orders")
	pos.POST("", h.Create)
	pos.GET("/:id", h.Get)
	pos.GET("/:id/history", h.History)
	pos.POST("/:id/count", h.Count)
	pos.POST("/:id/receive", h.Receive)
	pos.POST("/:id/cancel", h.Cancel)
	pos.POST("/:id/invoice-upload-url", h.InvoiceUploadURL)
}

// PurchaseOrderLineRequest is one ordered line
type PurchaseOrderLineRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"gt=0"`
}

// CreatePurchaseOrderRequest is the body of POST /purchase-orders
type CreatePurchaseOrderRequest struct {
	BranchID    *uuid.UUID                 `json:"branch_id"`
	VendorName  string                     `json:"vendor_name" binding:"required,max=200"`
	OrderNumber string                     `json:"order_number" binding:"max=50"`
	Notes       string                     `json:"notes" binding:"max=2000"`
	Lines       []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Create creates a pending purchase order. The order number is generated when blank.
//
//	@ID				createPurchaseOrder
//	@Summary		Create a purchase order
//	@Description	Create a pending purchase order. The order number is generated when blank.
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string						true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string						false	"Acting user ID"	format(uuid)
//	@Param			request			body		CreatePurchaseOrderRequest	true	"Request body"
//	@Success		201				{object}	APIResponse[PurchaseOrderResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var req CreatePurchaseOrderRequest
	if !h.bind(c, &req) {
		return
	}

	lines := make([]purchasing.LineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = purchasing.LineInput{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	po, err := h.receiving.Create(c.Request.Context(), apppurchasing.CreatePurchaseOrderInput{
		BusinessID:  businessID,
		BranchID:    req.BranchID,
		VendorName:  req.VendorName,
		OrderNumber: req.OrderNumber,
		Notes:       req.Notes,
		Lines:       lines,
		ActorID:     h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPurchaseOrderResponse(po))
}

// Get returns one purchase order
//
//	@ID				getPurchaseOrder
//	@Summary		Get a purchase order
//	@Description	Get one purchase order with its lines and totals
//	@Tags			purchase-orders
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Purchase order ID"	format(uuid)
//	@Success		200				{object}	APIResponse[PurchaseOrderResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	businessID, id, ok := h.idParams(c)
	if !ok {
		return
	}
	po, err := h.receiving.Get(c.Request.Context(), businessID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPurchaseOrderResponse(po))
}

// History returns the audit trail of a purchase order, oldest first
//
//	@ID				getPurchaseOrderHistory
//	@Summary		Get purchase order history
//	@Description	Get the audit trail of a purchase order, oldest first
//	@Tags			purchase-orders
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Purchase order ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]ActivityResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/purchase-orders/{id}/history [get]
func (h *PurchaseOrderHandler) History(c *gin.Context) {
	businessID, id, ok := h.idParams(c)
	if !ok {
		return
	}
	activities, err := h.receiving.History(c.Request.Context(), businessID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toActivityResponses(activities))
}

// LineCountRequest is the door count of one line
type LineCountRequest struct {
	LineID          uuid.UUID       `json:"line_id" binding:"required"`
	CountedQuantity decimal.Decimal `json:"counted_quantity" binding:"gte=0"`
	VarianceReason  string          `json:"variance_reason" binding:"omitempty,oneof=missing canceled rejected"`
	VarianceNote    string          `json:"variance_note" binding:"max=500"`
	BarcodeScans    int             `json:"barcode_scans" binding:"gte=0"`
}

// CountRequest is the body of POST /purchase-orders/:id/count
type CountRequest struct {
	Lines []LineCountRequest `json:"lines" binding:"required,min=1,dive"`
}

// Count records the door count of every line
//
//	@ID				countPurchaseOrder
//	@Summary		Count a delivery
//	@Description	Record the door count of every line of a pending purchase order
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string			true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string			false	"Acting user ID"	format(uuid)
//	@Param			id				path		string			true	"Purchase order ID"	format(uuid)
//	@Param			request			body		CountRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[PurchaseOrderResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/purchase-orders/{id}/count [post]
func (h *PurchaseOrderHandler) Count(c *gin.Context) {
	businessID, id, ok := h.idParams(c)
	if !ok {
		return
	}
	var req CountRequest
	if !h.bind(c, &req) {
		return
	}

	entries := make([]purchasing.LineCount, len(req.Lines))
	for i, l := range req.Lines {
		entries[i] = purchasing.LineCount{
			LineID:          l.LineID,
			CountedQuantity: l.CountedQuantity,
			VarianceReason:  purchasing.VarianceReason(l.VarianceReason),
			VarianceNote:    l.VarianceNote,
			BarcodeScans:    l.BarcodeScans,
		}
	}
	po, err := h.receiving.Count(c.Request.Context(), businessID, id, entries, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPurchaseOrderResponse(po))
}

// LineReceiptRequest is the invoiced cost of one line
type LineReceiptRequest struct {
	LineID           uuid.UUID        `json:"line_id" binding:"required"`
	TotalCost        *decimal.Decimal `json:"total_cost" binding:"omitempty,gte=0"`
	ReceivedQuantity *decimal.Decimal `json:"received_quantity" binding:"omitempty,gte=0"`
}

// ReceiveRequest is the body of POST /purchase-orders/:id/receive
type ReceiveRequest struct {
	InvoiceImageRef string               `json:"invoice_image_ref" binding:"required,max=500"`
	Lines           []LineReceiptRequest `json:"lines" binding:"required,min=1,dive"`
}

// Receive books the order into stock and cost against its invoice
//
//	@ID				receivePurchaseOrder
//	@Summary		Receive a purchase order
//	@Description	Book a counted purchase order into stock and cost against its invoice
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string			true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string			false	"Acting user ID"	format(uuid)
//	@Param			id				path		string			true	"Purchase order ID"	format(uuid)
//	@Param			request			body		ReceiveRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[PurchaseOrderResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/purchase-orders/{id}/receive [post]
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	businessID, id, ok := h.idParams(c)
	if !ok {
		return
	}
	var req ReceiveRequest
	if !h.bind(c, &req) {
		return
	}

	receipts := make([]purchasing.LineReceipt, len(req.Lines))
	for i, l := range req.Lines {
		receipts[i] = purchasing.LineReceipt{
			LineID:           l.LineID,
			TotalCost:        l.TotalCost,
			ReceivedQuantity: l.ReceivedQuantity,
		}
	}
	po, err := h.receiving.Receive(c.Request.Context(), businessID, id, apppurchasing.ReceiveInput{
		InvoiceImageRef: req.InvoiceImageRef,
		Lines:           receipts,
	}, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPurchaseOrderResponse(po))
}

// CancelPurchaseOrderRequest is the body of POST /purchase-orders/:id/cancel
type CancelPurchaseOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// Cancel cancels a pending or counted purchase order
//
//	@ID				cancelPurchaseOrder
//	@Summary		Cancel a purchase order
//	@Description	Cancel a pending or counted purchase order
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string						true	"Business ID"	format(uuid)
//	@Param			X-Actor-ID		header		string						false	"Acting user ID"	format(uuid)
//	@Param			id				path		string						true	"Purchase order ID"	format(uuid)
//	@Param			request			body		CancelPurchaseOrderRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[PurchaseOrderResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/purchase-orders/{id}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	businessID, id, ok := h.idParams(c)
	if !ok {
		return
	}
	var req CancelPurchaseOrderRequest
	if !h.bind(c, &req) {
		return
	}
	po, err := h.receiving.Cancel(c.Request.Context(), businessID, id, req.Reason, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPurchaseOrderResponse(po))
}

// UploadURLRequest is the body of POST /purchase-orders/:id/invoice-upload-url
type UploadURLRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp application/pdf"`
}

// InvoiceUploadURL presigns an upload for the invoice image of a purchase
// order. The returned ref is what the receive request names.
//
//	@ID				createInvoiceUploadURL
//	@Summary		Presign an invoice upload
//	@Description	Presign an upload for the invoice image of a purchase order. The returned ref is what the receive request names.
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			id				path		string				true	"Purchase order ID"	format(uuid)
//	@Param			request			body		UploadURLRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[UploadURLResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Failure		503				{object}	ErrorResponse
//	@Router			/purchase-orders/{id}/invoice-upload-url [post]
func (h *PurchaseOrderHandler) InvoiceUploadURL(c *gin.Context) {
	businessID, id, ok := h.idParams(c)
	if !ok {
		return
	}
	if h.uploader == nil {
		h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, "Invoice storage is not configured")
		return
	}
	var req UploadURLRequest
	if !h.bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.receiving.Get(ctx, businessID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	target, err := h.uploader.UploadURL(ctx, businessID, id, req.ContentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, UploadURLResponse{
		Ref:       target.Ref,
		URL:       target.URL,
		ExpiresAt: target.ExpiresAt,
	})
}

func (h *PurchaseOrderHandler) idParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	businessID, ok := h.businessID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return businessID, id, true
}

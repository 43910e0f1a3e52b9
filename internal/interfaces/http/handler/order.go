package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appinventory "github.com/restopos/backend/internal/application/inventory"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// RecipeService expands order lines into stock requirements
type RecipeService interface {
	Resolve(ctx context.Context, lines []inventory.OrderLine) []inventory.Requirement
}

// OrderWorkflow is what OrderHandler needs from the order inventory workflow
type OrderWorkflow interface {
	ReserveOrder(ctx context.Context, in appinventory.ReserveOrderInput) ([]inventory.OrderReservation, error)
	ConsumeOrder(ctx context.Context, businessID, orderID uuid.UUID) ([]inventory.OrderReservation, error)
	ReleaseOrder(ctx context.Context, businessID, orderID uuid.UUID) ([]inventory.OrderReservation, error)
	CancelOrderItem(ctx context.Context, businessID, orderID, orderItemID uuid.UUID, prepared bool) (*inventory.OrderReservation, error)
	DecideCancelledItem(ctx context.Context, businessID, orderID, orderItemID uuid.UUID, decision inventory.WasteDecision) (*inventory.OrderReservation, error)
}

// OrderHandler handles recipe resolution and order stock endpoints
type OrderHandler struct {
	BaseHandler
	recipes  RecipeService
	workflow OrderWorkflow
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(recipes RecipeService, workflow OrderWorkflow) *OrderHandler {
	return &OrderHandler{recipes: recipes, workflow: workflow}
}

// RegisterRoutes registers the recipe and order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes/resolve", h.Resolve)

	orders := rg.Group("/orders/:id")
	orders.POST("/reserve", h.Reserve)
	orders.POST("/consume", h.Consume)
	orders.POST("/release", h.Release)
	orders.POST("/items/:itemId/cancel", h.CancelItem)
	orders.POST("/items/:itemId/decision", h.Decide)
}

// LineModifierRequest is a modifier applied to an order line
type LineModifierRequest struct {
	ModifierID *uuid.UUID `json:"modifier_id"`
	Name       string     `json:"name"`
	Type       string     `json:"type" binding:"required,oneof=extra removal"`
	Count      int        `json:"count" binding:"gte=0"`
}

// OrderLineRequest is one order item
type OrderLineRequest struct {
	OrderItemID uuid.UUID             `json:"order_item_id"`
	ProductID   uuid.UUID             `json:"product_id" binding:"required"`
	VariantID   *uuid.UUID            `json:"variant_id"`
	Quantity    decimal.Decimal       `json:"quantity" binding:"gt=0"`
	Modifiers   []LineModifierRequest `json:"modifiers" binding:"dive"`
}

func toOrderLines(reqs []OrderLineRequest) []inventory.OrderLine {
	lines := make([]inventory.OrderLine, len(reqs))
	for i, r := range reqs {
		modifiers := make([]inventory.LineModifier, len(r.Modifiers))
		for j, m := range r.Modifiers {
			modifiers[j] = inventory.LineModifier{
				ModifierID: m.ModifierID,
				Name:       m.Name,
				Type:       inventory.ModifierType(m.Type),
				Count:      m.Count,
			}
		}
		lines[i] = inventory.OrderLine{
			OrderItemID: r.OrderItemID,
			ProductID:   r.ProductID,
			VariantID:   r.VariantID,
			Quantity:    r.Quantity,
			Modifiers:   modifiers,
		}
	}
	return lines
}

// ResolveRequest is the body of POST /recipes/resolve
type ResolveRequest struct {
	Lines []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Resolve returns the stock requirements of a set of order lines.
// Unknown products, variants and modifiers contribute nothing.
//
//	@ID				resolveRecipes
//	@Summary		Resolve recipes
//	@Description	Compute the stock requirements of order lines. Unknown products, variants and modifiers contribute nothing.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string			true	"Business ID"	format(uuid)
//	@Param			request			body		ResolveRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[[]RequirementResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/recipes/resolve [post]
func (h *OrderHandler) Resolve(c *gin.Context) {
	if _, ok := h.businessID(c); !ok {
		return
	}
	var req ResolveRequest
	if !h.bind(c, &req) {
		return
	}
	reqs := h.recipes.Resolve(c.Request.Context(), toOrderLines(req.Lines))
	h.Success(c, toRequirementResponses(reqs))
}

// ReserveOrderRequest is the body of POST /orders/:id/reserve
type ReserveOrderRequest struct {
	BranchID *uuid.UUID         `json:"branch_id"`
	Lines    []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Reserve reserves the stock of every order item not reserved yet
//
//	@ID				reserveOrder
//	@Summary		Reserve order stock
//	@Description	Reserve the stock of every order item that is not reserved yet
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			id				path		string				true	"Order ID"	format(uuid)
//	@Param			request			body		ReserveOrderRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[[]ReservationResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/orders/{id}/reserve [post]
func (h *OrderHandler) Reserve(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	orderID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req ReserveOrderRequest
	if !h.bind(c, &req) {
		return
	}
	for _, l := range req.Lines {
		if l.OrderItemID == uuid.Nil {
			h.BadRequest(c, "order_item_id is required on every line")
			return
		}
	}

	reservations, err := h.workflow.ReserveOrder(c.Request.Context(), appinventory.ReserveOrderInput{
		BusinessID: businessID,
		BranchID:   req.BranchID,
		OrderID:    orderID,
		Lines:      toOrderLines(req.Lines),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toReservationResponses(reservations))
}

// Consume deducts the reserved stock of a completed order
//
//	@ID				consumeOrder
//	@Summary		Consume order stock
//	@Description	Deduct the reserved stock of a completed order
//	@Tags			orders
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Order ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]ReservationResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/orders/{id}/consume [post]
func (h *OrderHandler) Consume(c *gin.Context) {
	h.settle(c, h.workflow.ConsumeOrder)
}

// Release returns the reserved stock of a cancelled order
//
//	@ID				releaseOrder
//	@Summary		Release order stock
//	@Description	Return the reserved stock of a cancelled order to available
//	@Tags			orders
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Order ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]ReservationResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/orders/{id}/release [post]
func (h *OrderHandler) Release(c *gin.Context) {
	h.settle(c, h.workflow.ReleaseOrder)
}

func (h *OrderHandler) settle(c *gin.Context, fn func(ctx context.Context, businessID, orderID uuid.UUID) ([]inventory.OrderReservation, error)) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	orderID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	reservations, err := fn(c.Request.Context(), businessID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toReservationResponses(reservations))
}

// CancelItemRequest is the body of POST /orders/:id/items/:itemId/cancel
type CancelItemRequest struct {
	Prepared bool `json:"prepared"`
}

// CancelItem releases a cancelled item, or parks it for a waste decision
// when it was already prepared
//
//	@ID				cancelOrderItem
//	@Summary		Cancel an order item
//	@Description	Release a cancelled item, or hold it for a waste decision when it was already prepared
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			id				path		string				true	"Order ID"	format(uuid)
//	@Param			itemId			path		string				true	"Order item ID"	format(uuid)
//	@Param			request			body		CancelItemRequest	false	"Request body"
//	@Success		200				{object}	APIResponse[ReservationResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/orders/{id}/items/{itemId}/cancel [post]
func (h *OrderHandler) CancelItem(c *gin.Context) {
	businessID, orderID, itemID, ok := h.orderItemParams(c)
	if !ok {
		return
	}
	// An empty body cancels an unprepared item
	var req CancelItemRequest
	if c.Request.ContentLength != 0 && !h.bind(c, &req) {
		return
	}
	res, err := h.workflow.CancelOrderItem(c.Request.Context(), businessID, orderID, itemID, req.Prepared)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toReservationResponse(res))
}

// DecisionRequest is the body of POST /orders/:id/items/:itemId/decision
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=waste return"`
}

// Decide wastes or returns a prepared item awaiting a decision
//
//	@ID				decideOrderItem
//	@Summary		Decide a cancelled item
//	@Description	Waste or return a prepared item that is awaiting a decision
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string			true	"Business ID"	format(uuid)
//	@Param			id				path		string			true	"Order ID"	format(uuid)
//	@Param			itemId			path		string			true	"Order item ID"	format(uuid)
//	@Param			request			body		DecisionRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[ReservationResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/orders/{id}/items/{itemId}/decision [post]
func (h *OrderHandler) Decide(c *gin.Context) {
	businessID, orderID, itemID, ok := h.orderItemParams(c)
	if !ok {
		return
	}
	var req DecisionRequest
	if !h.bind(c, &req) {
		return
	}
	res, err := h.workflow.DecideCancelledItem(c.Request.Context(), businessID, orderID, itemID, inventory.WasteDecision(req.Decision))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toReservationResponse(res))
}

func (h *OrderHandler) orderItemParams(c *gin.Context) (businessID, orderID, itemID uuid.UUID, ok bool) {
	if businessID, ok = h.businessID(c); !ok {
		return
	}
	if orderID, ok = h.uuidParam(c, "id"); !ok {
		return
	}
	itemID, ok = h.uuidParam(c, "itemId")
	return
}

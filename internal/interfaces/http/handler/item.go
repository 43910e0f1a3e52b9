package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appinventory "github.com/restopos/backend/internal/application/inventory"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// ItemService is what ItemHandler needs from the item catalog
type ItemService interface {
	Create(ctx context.Context, in appinventory.CreateItemInput) (*inventory.Item, error)
	Get(ctx context.Context, businessID, itemID uuid.UUID) (*inventory.Item, error)
	ListActive(ctx context.Context, businessID uuid.UUID) ([]inventory.Item, error)
	Components(ctx context.Context, businessID, compositeID uuid.UUID) ([]inventory.CompositeComponent, error)
	ReplaceComponents(ctx context.Context, businessID, compositeID uuid.UUID, inputs []appinventory.ComponentInput) ([]inventory.CompositeComponent, error)
	SetBusinessPrice(ctx context.Context, businessID, itemID uuid.UUID, price decimal.Decimal) (*inventory.BusinessItemPrice, error)
	EffectiveCost(ctx context.Context, businessID, itemID uuid.UUID) (decimal.Decimal, error)
}

// StockValuer reports a business's cost position for an item
type StockValuer interface {
	StockValue(ctx context.Context, businessID, itemID uuid.UUID) (*appinventory.CostUpdate, error)
}

// ItemHandler handles item catalog endpoints
type ItemHandler struct {
	BaseHandler
	items ItemService
	costs StockValuer
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(items ItemService, costs StockValuer) *ItemHandler {
	return &ItemHandler{items: items, costs: costs}
}

// RegisterRoutes registers the item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	items.POST("", h.Create)
	items.GET("", h.List)
	items.GET("/:id", h.Get)
	items.GET("/:id/components", h.Components)
	items.POST("/:id/components", h.ReplaceComponents)
	items.PUT("/:id/business-price", h.SetBusinessPrice)
	items.GET("/:id/cost", h.Cost)
}

// CreateItemRequest is the body of POST /items
type CreateItemRequest struct {
	Name          string          `json:"name" binding:"required,max=200"`
	Category      string          `json:"category" binding:"max=100"`
	Barcode       string          `json:"barcode" binding:"max=100"`
	ServingUnit   string          `json:"serving_unit" binding:"required"`
	StorageUnit   string          `json:"storage_unit" binding:"required"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit" binding:"gte=0"`
	Shared        bool            `json:"shared"`
	IsComposite   bool            `json:"is_composite"`
	BatchQuantity decimal.Decimal `json:"batch_quantity" binding:"gte=0"`
	BatchUnit     string          `json:"batch_unit"`
}

// Create creates a raw or composite item. Shared items have no owning business.
//
//	@ID				createItem
//	@Summary		Create an item
//	@Description	Create a raw or composite item. Shared items have no owning business.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string				true	"Business ID"	format(uuid)
//	@Param			request			body		CreateItemRequest	true	"Request body"
//	@Success		201				{object}	APIResponse[ItemResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	var req CreateItemRequest
	if !h.bind(c, &req) {
		return
	}

	in := appinventory.CreateItemInput{
		Name:          req.Name,
		Category:      req.Category,
		Barcode:       req.Barcode,
		ServingUnit:   req.ServingUnit,
		StorageUnit:   req.StorageUnit,
		CostPerUnit:   req.CostPerUnit,
		IsComposite:   req.IsComposite,
		BatchQuantity: req.BatchQuantity,
		BatchUnit:     req.BatchUnit,
	}
	if !req.Shared {
		in.BusinessID = &businessID
	}

	item, err := h.items.Create(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toItemResponse(item))
}

// List returns the active items visible to the business
//
//	@ID				listItems
//	@Summary		List items
//	@Description	List the active items visible to the business, shared items included
//	@Tags			items
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]ItemResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	items, err := h.items.ListActive(c.Request.Context(), businessID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = toItemResponse(&items[i])
	}
	h.SuccessWithMeta(c, out, int64(len(out)), 0, 0)
}

// Get returns one item
//
//	@ID				getItem
//	@Summary		Get an item
//	@Description	Get one item visible to the business
//	@Tags			items
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Item ID"	format(uuid)
//	@Success		200				{object}	APIResponse[ItemResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	itemID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.items.Get(c.Request.Context(), businessID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toItemResponse(item))
}

// Components returns the recipe of a composite item
//
//	@ID				listItemComponents
//	@Summary		List composite components
//	@Description	List the components of a composite item, quantities in storage units
//	@Tags			items
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Composite item ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]ComponentResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/items/{id}/components [get]
func (h *ItemHandler) Components(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	itemID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	components, err := h.items.Components(c.Request.Context(), businessID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toComponentResponses(components))
}

// ComponentRequest is one component of a composite
type ComponentRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"gt=0"`
}

// ReplaceComponentsRequest is the body of POST /items/:id/components
type ReplaceComponentsRequest struct {
	Components []ComponentRequest `json:"components" binding:"required,min=1,dive"`
}

// ReplaceComponents replaces the recipe of a composite item and recomputes its cost
//
//	@ID				replaceItemComponents
//	@Summary		Replace composite components
//	@Description	Replace the recipe of a composite item and recompute its cost
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string						true	"Business ID"	format(uuid)
//	@Param			id				path		string						true	"Composite item ID"	format(uuid)
//	@Param			request			body		ReplaceComponentsRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[[]ComponentResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/items/{id}/components [post]
func (h *ItemHandler) ReplaceComponents(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	itemID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req ReplaceComponentsRequest
	if !h.bind(c, &req) {
		return
	}

	inputs := make([]appinventory.ComponentInput, len(req.Components))
	for i, cmp := range req.Components {
		inputs[i] = appinventory.ComponentInput{ItemID: cmp.ItemID, Quantity: cmp.Quantity}
	}
	components, err := h.items.ReplaceComponents(c.Request.Context(), businessID, itemID, inputs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toComponentResponses(components))
}

// SetBusinessPriceRequest is the body of PUT /items/:id/business-price
type SetBusinessPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"gte=0"`
}

// SetBusinessPrice overrides a shared item's cost for the calling business
//
//	@ID				setItemBusinessPrice
//	@Summary		Set a business price
//	@Description	Override a shared item's cost per serving unit for the calling business
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Business-ID	header		string					true	"Business ID"	format(uuid)
//	@Param			id				path		string					true	"Item ID"	format(uuid)
//	@Param			request			body		SetBusinessPriceRequest	true	"Request body"
//	@Success		200				{object}	APIResponse[BusinessPriceResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/items/{id}/business-price [put]
func (h *ItemHandler) SetBusinessPrice(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	itemID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req SetBusinessPriceRequest
	if !h.bind(c, &req) {
		return
	}
	price, err := h.items.SetBusinessPrice(c.Request.Context(), businessID, itemID, req.Price)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toBusinessPriceResponse(price))
}

// ItemCostResponse is the effective cost and stock value of an item for a business
type ItemCostResponse struct {
	ItemID             uuid.UUID       `json:"item_id"`
	CostPerUnit        decimal.Decimal `json:"cost_per_unit"`
	TotalStockQuantity decimal.Decimal `json:"total_stock_quantity"`
	TotalStockValue    decimal.Decimal `json:"total_stock_value"`
}

// Cost returns the business's effective cost per serving unit and stock value
//
//	@ID				getItemCost
//	@Summary		Get item cost
//	@Description	Get the business's effective cost per serving unit and the value of its stock
//	@Tags			items
//	@Produce		json
//	@Param			X-Business-ID	header		string	true	"Business ID"	format(uuid)
//	@Param			id				path		string	true	"Item ID"	format(uuid)
//	@Success		200				{object}	APIResponse[ItemCostResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/items/{id}/cost [get]
func (h *ItemHandler) Cost(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	itemID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cost, err := h.items.EffectiveCost(ctx, businessID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	value, err := h.costs.StockValue(ctx, businessID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ItemCostResponse{
		ItemID:             itemID,
		CostPerUnit:        cost,
		TotalStockQuantity: value.TotalStockQuantity,
		TotalStockValue:    value.TotalStockValue,
	})
}

package purchasing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	appinventory "github.com/restopos/backend/internal/application/inventory"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StockAdjuster applies on-hand deltas to the stock ledger
type StockAdjuster interface {
	Adjust(ctx context.Context, in appinventory.AdjustInput) (*inventory.StockRecord, error)
}

// CostReceiver folds purchases into the weighted average cost
type CostReceiver interface {
	Receive(ctx context.Context, businessID, itemID uuid.UUID, receivedQty, totalCost decimal.Decimal) (*appinventory.CostUpdate, error)
}

// ItemFinder resolves the items a purchase order refers to
type ItemFinder interface {
	FindVisible(ctx context.Context, businessID, id uuid.UUID) (*inventory.Item, error)
}

// CreatePurchaseOrderInput describes a new purchase order
type CreatePurchaseOrderInput struct {
	BusinessID  uuid.UUID
	BranchID    *uuid.UUID
	VendorName  string
	OrderNumber string // generated when blank
	Notes       string
	Lines       []purchasing.LineInput
	ActorID     *uuid.UUID
}

// ReceiveInput is the invoice a purchase order is received against
type ReceiveInput struct {
	InvoiceImageRef string
	Lines           []purchasing.LineReceipt
}

// Config holds receiving settings
type Config struct {
	// DefaultTaxRate applies when the business has no tax setting
	DefaultTaxRate decimal.Decimal
}

// ReceivingService runs purchase orders through count and receive, feeding
// received goods into the stock and cost ledgers
type ReceivingService struct {
	orders     purchasing.PurchaseOrderRepository
	activities purchasing.ActivityRepository
	items      ItemFinder
	stock      StockAdjuster
	costs      CostReceiver
	taxRates   purchasing.TaxRateProvider
	invoices   purchasing.InvoiceStorage
	publisher  shared.EventPublisher
	config     Config
	logger     *zap.Logger
}

// NewReceivingService creates a new ReceivingService
func NewReceivingService(
	orders purchasing.PurchaseOrderRepository,
	activities purchasing.ActivityRepository,
	items ItemFinder,
	stock StockAdjuster,
	costs CostReceiver,
	config Config,
	logger *zap.Logger,
) *ReceivingService {
	return &ReceivingService{
		orders:     orders,
		activities: activities,
		items:      items,
		stock:      stock,
		costs:      costs,
		config:     config,
		logger:     logger,
	}
}

// SetEventPublisher sets the event publisher for PurchaseOrderReceived events
func (s *ReceivingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// SetTaxRateProvider sets the source of per-business tax rates
func (s *ReceivingService) SetTaxRateProvider(provider purchasing.TaxRateProvider) {
	s.taxRates = provider
}

// SetInvoiceStorage enables the invoice image existence check
func (s *ReceivingService) SetInvoiceStorage(storage purchasing.InvoiceStorage) {
	s.invoices = storage
}

// Create validates and stores a pending purchase order
func (s *ReceivingService) Create(ctx context.Context, in CreatePurchaseOrderInput) (*purchasing.PurchaseOrder, error) {
	lines := make([]purchasing.LineInput, len(in.Lines))
	for i, l := range in.Lines {
		item, err := s.items.FindVisible(ctx, in.BusinessID, l.ItemID)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(l.ItemName) == "" {
			l.ItemName = item.Name
		}
		lines[i] = l
	}

	orderNumber := strings.TrimSpace(in.OrderNumber)
	if orderNumber == "" {
		orderNumber = generateOrderNumber(time.Now())
	}
	po, err := purchasing.NewPurchaseOrder(in.BusinessID, in.BranchID, in.VendorName, orderNumber, lines)
	if err != nil {
		return nil, err
	}
	po.Notes = strings.TrimSpace(in.Notes)
	if in.ActorID != nil {
		po.SetCreatedBy(*in.ActorID)
	}

	exists, err := s.orders.ExistsByOrderNumber(ctx, in.BusinessID, po.OrderNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("purchase order %s already exists", po.OrderNumber)
	}

	if err := s.orders.Save(ctx, po); err != nil {
		return nil, err
	}
	s.logActivity(ctx, po, purchasing.ActionCreated, nil, map[string]any{
		"order_number": po.OrderNumber,
		"vendor_name":  po.VendorName,
		"lines":        len(po.Lines),
	}, in.ActorID)

	s.logger.Info("Purchase order created",
		zap.String("purchase_order_id", po.ID.String()),
		zap.String("order_number", po.OrderNumber),
		zap.Int("lines", len(po.Lines)),
	)
	return po, nil
}

// Get returns a purchase order owned by the business
func (s *ReceivingService) Get(ctx context.Context, businessID, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	po, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !po.BelongsTo(businessID) {
		return nil, shared.NewNotFoundError("purchase order", id)
	}
	return po, nil
}

// History lists the audit trail of a purchase order
func (s *ReceivingService) History(ctx context.Context, businessID, id uuid.UUID) ([]purchasing.Activity, error) {
	if _, err := s.Get(ctx, businessID, id); err != nil {
		return nil, err
	}
	return s.activities.ListByPurchaseOrder(ctx, id)
}

// Count records the door count of every line
func (s *ReceivingService) Count(ctx context.Context, businessID, id uuid.UUID, entries []purchasing.LineCount, actor *uuid.UUID) (*purchasing.PurchaseOrder, error) {
	po, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	old := po.Status
	if err := po.Count(entries, actor); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, po); err != nil {
		return nil, err
	}

	counted := make(map[string]any, len(po.Lines))
	for _, l := range po.Lines {
		if l.CountedQuantity != nil {
			counted[l.ID.String()] = l.CountedQuantity.String()
		}
	}
	s.logActivity(ctx, po, purchasing.ActionCounted, &old, map[string]any{"counted": counted}, actor)
	return po, nil
}

// Receive prices the order against its invoice and books every line with a
// positive quantity into stock and cost. Lines are applied one by one; a
// failure part way leaves earlier lines applied and the order unreceived.
func (s *ReceivingService) Receive(ctx context.Context, businessID, id uuid.UUID, in ReceiveInput, actor *uuid.UUID) (*purchasing.PurchaseOrder, error) {
	po, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	ref := strings.TrimSpace(in.InvoiceImageRef)
	if ref != "" && s.invoices != nil {
		ok, err := s.invoices.Exists(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("check invoice image: %w", err)
		}
		if !ok {
			return nil, shared.NewValidationError("invoice image %q was not uploaded", ref)
		}
	}

	rate, err := s.taxRate(ctx, businessID)
	if err != nil {
		return nil, err
	}

	old := po.Status
	received, err := po.Receive(ref, in.Lines, rate, actor)
	if err != nil {
		return nil, err
	}

	poRef := inventory.RefTo(inventory.ReferencePurchaseOrder, po.ID)
	for _, rl := range received {
		if !rl.Quantity.IsPositive() {
			continue
		}
		key := inventory.StockKey{BusinessID: businessID, BranchID: po.BranchID, ItemID: rl.ItemID}
		if _, err := s.stock.Adjust(ctx, appinventory.AdjustInput{
			Key:          key,
			Delta:        rl.Quantity,
			MovementType: inventory.MovementPurchaseReceive,
			Reference:    poRef,
			UnitCost:     rl.UnitCost,
			ActorID:      actor,
		}); err != nil {
			return nil, fmt.Errorf("receive stock for line %s: %w", rl.LineID, err)
		}
		// Stock first: the cost blend reads the on-hand rows this just updated
		if _, err := s.costs.Receive(ctx, businessID, rl.ItemID, rl.Quantity, rl.TotalCost); err != nil {
			return nil, fmt.Errorf("update cost for line %s: %w", rl.LineID, err)
		}
	}

	if err := s.orders.Save(ctx, po); err != nil {
		return nil, err
	}
	s.logActivity(ctx, po, purchasing.ActionReceived, &old, map[string]any{
		"invoice_image_ref": po.InvoiceImageRef,
		"subtotal":          po.Subtotal.String(),
		"tax_rate":          po.TaxRate.String(),
		"tax_amount":        po.TaxAmount.String(),
		"total":             po.Total.String(),
	}, actor)
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, purchasing.NewPurchaseOrderReceivedEvent(po, received))
	}

	s.logger.Info("Purchase order received",
		zap.String("purchase_order_id", po.ID.String()),
		zap.String("order_number", po.OrderNumber),
		zap.String("from_status", old.String()),
		zap.Int("lines", len(received)),
		zap.String("total", po.Total.String()),
	)
	return po, nil
}

// Cancel abandons a purchase order that has not been received
func (s *ReceivingService) Cancel(ctx context.Context, businessID, id uuid.UUID, reason string, actor *uuid.UUID) (*purchasing.PurchaseOrder, error) {
	po, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	old := po.Status
	if err := po.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, po); err != nil {
		return nil, err
	}
	s.logActivity(ctx, po, purchasing.ActionCancelled, &old, map[string]any{"reason": po.CancelReason}, actor)
	return po, nil
}

func (s *ReceivingService) taxRate(ctx context.Context, businessID uuid.UUID) (decimal.Decimal, error) {
	if s.taxRates == nil {
		return s.config.DefaultTaxRate, nil
	}
	rate, ok, err := s.taxRates.TaxRate(ctx, businessID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load tax rate: %w", err)
	}
	if !ok {
		return s.config.DefaultTaxRate, nil
	}
	return rate, nil
}

// logActivity appends to the audit trail. Failures are logged, never returned.
func (s *ReceivingService) logActivity(ctx context.Context, po *purchasing.PurchaseOrder, action string, old *purchasing.Status, changes map[string]any, actor *uuid.UUID) {
	if s.activities == nil {
		return
	}
	if err := s.activities.Create(ctx, purchasing.NewActivity(po, action, old, changes, actor)); err != nil {
		s.logger.Error("Failed to record purchase order activity",
			zap.String("purchase_order_id", po.ID.String()),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// generateOrderNumber builds PO-YYYYMMDD-XXXXXX from the date and a random suffix
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), suffix)
}

package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	// DefaultDecisionWindow is how long a prepared, cancelled item waits for
	// a waste or return decision
	DefaultDecisionWindow = 30 * time.Minute

	// DefaultExpireBatchSize caps how many pending decisions one sweep handles
	DefaultExpireBatchSize = 500
)

// ReserveOrderInput is an order whose stock should be reserved
type ReserveOrderInput struct {
	BusinessID uuid.UUID
	BranchID   *uuid.UUID
	OrderID    uuid.UUID
	Lines      []inventory.OrderLine
}

// WorkflowConfig tunes the order workflow
type WorkflowConfig struct {
	DecisionWindow  time.Duration
	ExpireBatchSize int
}

// OrderInventoryWorkflow drives an order item's stock through reserve,
// consume or release, and the waste-or-return decision for cancelled items
type OrderInventoryWorkflow struct {
	resolver     *RecipeResolver
	ledger       *StockLedger
	reservations inventory.ReservationRepository
	config       WorkflowConfig
	logger       *zap.Logger
	now          func() time.Time
}

// NewOrderInventoryWorkflow creates a new OrderInventoryWorkflow
func NewOrderInventoryWorkflow(
	resolver *RecipeResolver,
	ledger *StockLedger,
	reservations inventory.ReservationRepository,
	config WorkflowConfig,
	logger *zap.Logger,
) *OrderInventoryWorkflow {
	if config.DecisionWindow <= 0 {
		config.DecisionWindow = DefaultDecisionWindow
	}
	if config.ExpireBatchSize <= 0 {
		config.ExpireBatchSize = DefaultExpireBatchSize
	}
	return &OrderInventoryWorkflow{
		resolver:     resolver,
		ledger:       ledger,
		reservations: reservations,
		config:       config,
		logger:       logger,
		now:          time.Now,
	}
}

// ReserveOrder reserves the stock of every order item not reserved yet
func (w *OrderInventoryWorkflow) ReserveOrder(ctx context.Context, in ReserveOrderInput) ([]inventory.OrderReservation, error) {
	if in.BusinessID == uuid.Nil || in.OrderID == uuid.Nil {
		return nil, shared.NewValidationError("business and order are required")
	}
	ref := inventory.RefTo(inventory.ReferenceOrder, in.OrderID)

	out := make([]inventory.OrderReservation, 0, len(in.Lines))
	for _, line := range in.Lines {
		if line.OrderItemID == uuid.Nil {
			return nil, shared.NewValidationError("order item id is required")
		}
		_, err := w.reservations.FindByOrderItem(ctx, in.BusinessID, in.OrderID, line.OrderItemID)
		if err == nil {
			w.logger.Debug("Order item already reserved",
				zap.String("order_id", in.OrderID.String()),
				zap.String("order_item_id", line.OrderItemID.String()),
			)
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		reqs := w.resolver.ResolveLine(ctx, line)
		res := inventory.NewOrderReservation(in.BusinessID, in.BranchID, in.OrderID, line.OrderItemID, reqs)
		if err := w.reserveComponents(ctx, res, ref); err != nil {
			return nil, err
		}
		if err := w.reservations.Save(ctx, res); err != nil {
			w.undoReserve(ctx, res, res.Components, ref)
			return nil, err
		}
		out = append(out, *res)
	}

	w.logger.Info("Order reserved",
		zap.String("order_id", in.OrderID.String()),
		zap.Int("lines", len(in.Lines)),
		zap.Int("reserved", len(out)),
	)
	return out, nil
}

// ConsumeOrder deducts the reserved stock of every reserved item of an order
func (w *OrderInventoryWorkflow) ConsumeOrder(ctx context.Context, businessID, orderID uuid.UUID) ([]inventory.OrderReservation, error) {
	return w.settleOrder(ctx, businessID, orderID, func(res *inventory.OrderReservation) error {
		ref := inventory.RefTo(inventory.ReferenceOrder, orderID)
		for _, c := range res.Components {
			if _, err := w.ledger.Consume(ctx, res.StockKey(c.ItemID), c.Quantity, ref); err != nil {
				return fmt.Errorf("consume item %s: %w", c.ItemID, err)
			}
		}
		return res.MarkConsumed()
	})
}

// ReleaseOrder returns the reserved stock of every reserved item of an order
func (w *OrderInventoryWorkflow) ReleaseOrder(ctx context.Context, businessID, orderID uuid.UUID) ([]inventory.OrderReservation, error) {
	return w.settleOrder(ctx, businessID, orderID, func(res *inventory.OrderReservation) error {
		if err := w.releaseComponents(ctx, res); err != nil {
			return err
		}
		return res.MarkReleased("")
	})
}

func (w *OrderInventoryWorkflow) settleOrder(ctx context.Context, businessID, orderID uuid.UUID, settle func(*inventory.OrderReservation) error) ([]inventory.OrderReservation, error) {
	reservations, err := w.reservations.FindByOrder(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, shared.NewNotFoundError("reservations for order", orderID)
	}

	out := make([]inventory.OrderReservation, 0, len(reservations))
	for i := range reservations {
		res := &reservations[i]
		if res.Status != inventory.ReservationReserved {
			continue
		}
		if err := settle(res); err != nil {
			return nil, err
		}
		if err := w.reservations.Save(ctx, res); err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, nil
}

// CancelOrderItem cancels one order item. An item not yet prepared goes
// straight back to available; a prepared one waits for a waste or return
// decision until the decision window closes.
func (w *OrderInventoryWorkflow) CancelOrderItem(ctx context.Context, businessID, orderID, orderItemID uuid.UUID, prepared bool) (*inventory.OrderReservation, error) {
	res, err := w.reservations.FindByOrderItem(ctx, businessID, orderID, orderItemID)
	if err != nil {
		return nil, err
	}
	if res.Status != inventory.ReservationReserved {
		return nil, shared.NewStateError("order item %s is %s and cannot be cancelled", orderItemID, res.Status)
	}

	if prepared {
		if err := res.MarkPendingDecision(w.now(), w.config.DecisionWindow); err != nil {
			return nil, err
		}
	} else {
		if err := w.releaseComponents(ctx, res); err != nil {
			return nil, err
		}
		if err := res.MarkReleased(""); err != nil {
			return nil, err
		}
	}

	if err := w.reservations.Save(ctx, res); err != nil {
		return nil, err
	}
	w.logger.Info("Order item cancelled",
		zap.String("order_id", orderID.String()),
		zap.String("order_item_id", orderItemID.String()),
		zap.Bool("prepared", prepared),
		zap.String("status", string(res.Status)),
	)
	return res, nil
}

// DecideCancelledItem settles a prepared, cancelled item as waste or return
func (w *OrderInventoryWorkflow) DecideCancelledItem(ctx context.Context, businessID, orderID, orderItemID uuid.UUID, decision inventory.WasteDecision) (*inventory.OrderReservation, error) {
	if !decision.IsValid() {
		return nil, shared.NewValidationError("decision must be waste or return")
	}
	res, err := w.reservations.FindByOrderItem(ctx, businessID, orderID, orderItemID)
	if err != nil {
		return nil, err
	}
	if err := w.decide(ctx, res, decision); err != nil {
		return nil, err
	}
	return res, nil
}

func (w *OrderInventoryWorkflow) decide(ctx context.Context, res *inventory.OrderReservation, decision inventory.WasteDecision) error {
	if res.Status != inventory.ReservationPendingDecision {
		return shared.NewStateError("order item %s is %s, not awaiting a decision", res.OrderItemID, res.Status)
	}

	if decision == inventory.DecisionReturn {
		if err := w.releaseComponents(ctx, res); err != nil {
			return err
		}
		if err := res.MarkReleased(decision); err != nil {
			return err
		}
	} else {
		ref := inventory.RefTo(inventory.ReferenceOrder, res.OrderID)
		for _, c := range res.Components {
			if _, err := w.ledger.ReleaseAndDeductWaste(ctx, res.StockKey(c.ItemID), c.Quantity, ref); err != nil {
				return fmt.Errorf("waste item %s: %w", c.ItemID, err)
			}
		}
		if err := res.MarkWasted(decision); err != nil {
			return err
		}
	}
	return w.reservations.Save(ctx, res)
}

// reserveComponents reserves every component of res or none of them
func (w *OrderInventoryWorkflow) reserveComponents(ctx context.Context, res *inventory.OrderReservation, ref inventory.Reference) error {
	for i, c := range res.Components {
		if _, err := w.ledger.Reserve(ctx, res.StockKey(c.ItemID), c.Quantity, ref); err != nil {
			w.undoReserve(ctx, res, res.Components[:i], ref)
			return fmt.Errorf("reserve item %s: %w", c.ItemID, err)
		}
	}
	return nil
}

func (w *OrderInventoryWorkflow) undoReserve(ctx context.Context, res *inventory.OrderReservation, done []inventory.ReservationComponent, ref inventory.Reference) {
	for _, c := range done {
		if _, err := w.ledger.Release(ctx, res.StockKey(c.ItemID), c.Quantity, ref); err != nil {
			w.logger.Error("Failed to undo partial reservation",
				zap.String("order_item_id", res.OrderItemID.String()),
				zap.String("item_id", c.ItemID.String()),
				zap.Error(err),
			)
		}
	}
}

func (w *OrderInventoryWorkflow) releaseComponents(ctx context.Context, res *inventory.OrderReservation) error {
	ref := inventory.RefTo(inventory.ReferenceOrder, res.OrderID)
	for _, c := range res.Components {
		if _, err := w.ledger.Release(ctx, res.StockKey(c.ItemID), c.Quantity, ref); err != nil {
			return fmt.Errorf("release item %s: %w", c.ItemID, err)
		}
	}
	return nil
}

// ExpirationStats contains statistics about one pending-decision sweep
type ExpirationStats struct {
	TotalExpired int       `json:"total_expired"`
	Wasted       int       `json:"wasted"`
	Failed       int       `json:"failed"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// ExpirePendingDecisions wastes every pending decision past its deadline.
// Re-running it only touches items still pending.
func (w *OrderInventoryWorkflow) ExpirePendingDecisions(ctx context.Context, now time.Time) (*ExpirationStats, error) {
	stats := &ExpirationStats{ProcessedAt: now}

	expired, err := w.reservations.FindExpiredPendingDecisions(ctx, now, w.config.ExpireBatchSize)
	if err != nil {
		w.logger.Error("Failed to find expired pending decisions", zap.Error(err))
		return nil, err
	}

	stats.TotalExpired = len(expired)
	if stats.TotalExpired == 0 {
		w.logger.Debug("No expired pending decisions found")
		return stats, nil
	}

	for i := range expired {
		res := &expired[i]
		if !res.IsDecisionExpired(now) {
			continue
		}
		if err := w.decide(ctx, res, inventory.DecisionAutoWaste); err != nil {
			w.logger.Error("Failed to auto-waste cancelled item",
				zap.String("order_id", res.OrderID.String()),
				zap.String("order_item_id", res.OrderItemID.String()),
				zap.Error(err),
			)
			stats.Failed++
			continue
		}
		stats.Wasted++
	}

	w.logger.Info("Completed pending decision sweep",
		zap.Int("total", stats.TotalExpired),
		zap.Int("wasted", stats.Wasted),
		zap.Int("failed", stats.Failed),
	)
	return stats, nil
}

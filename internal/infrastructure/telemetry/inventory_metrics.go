package telemetry

import (
	"context"
	"time"

	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/restopos/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
)

const inventoryMeterName = "restopos-inventory/inventory"

// InventoryMetrics turns inventory domain events into OpenTelemetry metrics.
// It subscribes to the event bus like any other handler and never fails an event.
type InventoryMetrics struct {
	movements      *Counter
	belowMinimum   *Counter
	costChanges    *Counter
	receipts       *Counter
	receiptValue   *Histogram
	transfers      *Counter
	countsDone     *Counter
	countAdjusted  *Counter
	sweepDuration  *Histogram
	sweepDecisions *Counter
}

// Ensure InventoryMetrics implements EventHandler
var _ shared.EventHandler = (*InventoryMetrics)(nil)

// NewInventoryMetrics creates the inventory instruments on meter
func NewInventoryMetrics(meter metric.Meter) (*InventoryMetrics, error) {
	m := &InventoryMetrics{}
	var err error

	counters := []struct {
		dst              **Counter
		name, desc, unit string
	}{
		{&m.movements, "inventory_movements_total", "Committed stock movements", "{movement}"},
		{&m.belowMinimum, "inventory_stock_below_minimum_total", "Movements leaving a stock row below its minimum", "{movement}"},
		{&m.costChanges, "inventory_cost_changes_total", "Item cost changes", "{change}"},
		{&m.receipts, "purchase_orders_received_total", "Purchase orders received into stock", "{order}"},
		{&m.transfers, "inventory_transfers_received_total", "Transfers received", "{transfer}"},
		{&m.countsDone, "inventory_counts_completed_total", "Inventory counts completed", "{count}"},
		{&m.countAdjusted, "inventory_count_adjusted_lines_total", "Count lines that produced an adjustment", "{line}"},
		{&m.sweepDecisions, "inventory_decision_sweep_items_total", "Pending decisions handled by the sweep", "{item}"},
	}
	for _, c := range counters {
		if *c.dst, err = NewCounter(meter, c.name, c.desc, c.unit); err != nil {
			return nil, err
		}
	}

	if m.receiptValue, err = NewHistogram(meter, HistogramOpts{
		Name:        "purchase_order_received_value",
		Description: "Total value of received purchase orders",
		Unit:        "{currency}",
		Boundaries:  ReceiptValueBuckets,
	}); err != nil {
		return nil, err
	}
	if m.sweepDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "inventory_decision_sweep_duration_seconds",
		Description: "Duration of the pending decision sweep",
		Unit:        "s",
		Boundaries:  SweepDurationBuckets,
	}); err != nil {
		return nil, err
	}
	return m, nil
}

// EventTypes returns the events the metrics are derived from
func (m *InventoryMetrics) EventTypes() []string {
	return []string{
		inventory.EventTypeStockAdjusted,
		inventory.EventTypeItemCostChanged,
		inventory.EventTypeTransferReceived,
		inventory.EventTypeInventoryCountCompleted,
		purchasing.EventTypePurchaseOrderReceived,
	}
}

// Handle records the event. Unknown events are ignored.
func (m *InventoryMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	business := AttrBusinessID.String(event.BusinessID().String())

	switch e := event.(type) {
	case *inventory.StockAdjustedEvent:
		m.movements.Inc(ctx, business, AttrMovementType.String(string(e.MovementType)))
		if e.BelowMinimum {
			m.belowMinimum.Inc(ctx, business)
		}
	case *inventory.ItemCostChangedEvent:
		m.costChanges.Inc(ctx, business, AttrCostSource.String(string(e.Source)))
	case *inventory.TransferReceivedEvent:
		m.transfers.Inc(ctx, business)
	case *inventory.InventoryCountCompletedEvent:
		m.countsDone.Inc(ctx, business)
		m.countAdjusted.Add(ctx, int64(e.AdjustedLines), business)
	case *purchasing.PurchaseOrderReceivedEvent:
		m.receipts.Inc(ctx, business)
		m.receiptValue.Record(ctx, e.Total.InexactFloat64(), business)
	}
	return nil
}

// RecordSweep records one run of the pending decision sweep
func (m *InventoryMetrics) RecordSweep(ctx context.Context, d time.Duration, wasted, failed int) {
	m.sweepDuration.RecordDuration(ctx, d)
	if wasted > 0 {
		m.sweepDecisions.Add(ctx, int64(wasted), AttrOutcome.String("wasted"))
	}
	if failed > 0 {
		m.sweepDecisions.Add(ctx, int64(failed), AttrOutcome.String("failed"))
	}
}

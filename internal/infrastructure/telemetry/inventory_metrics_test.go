package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestInventoryMetrics_Handle(t *testing.T) {
	reader, mp := newTestMeter(t)
	m, err := NewInventoryMetrics(mp.Meter(inventoryMeterName))
	require.NoError(t, err)
	ctx := context.Background()
	businessID := uuid.New()

	assert.Contains(t, m.EventTypes(), inventory.EventTypeStockAdjusted)
	assert.Contains(t, m.EventTypes(), purchasing.EventTypePurchaseOrderReceived)

	rec, err := inventory.NewStockRecord(inventory.StockKey{BusinessID: businessID, ItemID: uuid.New()})
	require.NoError(t, err)
	before, after := rec.ApplyDelta(decimal.NewFromInt(3))
	movement, err := inventory.NewInventoryMovement(rec, inventory.MovementPurchaseReceive, decimal.NewFromInt(3), before, after)
	require.NoError(t, err)

	require.NoError(t, m.Handle(ctx, inventory.NewStockAdjustedEvent(rec, movement)))
	require.NoError(t, m.Handle(ctx, inventory.NewItemCostChangedEvent(businessID, rec.ItemID,
		decimal.NewFromInt(1), decimal.NewFromInt(2), inventory.CostSourceReceipt)))
	require.NoError(t, m.Handle(ctx, inventory.NewItemCostChangedEvent(businessID, rec.ItemID,
		decimal.NewFromInt(2), decimal.NewFromInt(3), inventory.CostSourceCascade)))

	po, err := purchasing.NewPurchaseOrder(businessID, nil, "Fresh Farms", "PO-1", []purchasing.LineInput{
		{ItemID: rec.ItemID, ItemName: "Tomato", Quantity: decimal.NewFromInt(3)},
	})
	require.NoError(t, err)
	po.Total = decimal.NewFromInt(420)
	require.NoError(t, m.Handle(ctx, purchasing.NewPurchaseOrderReceivedEvent(po, nil)))

	metrics := collect(t, reader)
	assert.Equal(t, int64(1), sumValue(t, metrics["inventory_movements_total"]))
	assert.Equal(t, int64(2), sumValue(t, metrics["inventory_cost_changes_total"]))
	assert.Equal(t, int64(1), sumValue(t, metrics["purchase_orders_received_total"]))

	sum := metrics["inventory_movements_total"].Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	mt, ok := sum.DataPoints[0].Attributes.Value(AttrMovementType)
	require.True(t, ok)
	assert.Equal(t, string(inventory.MovementPurchaseReceive), mt.AsString())

	value := metrics["purchase_order_received_value"].Data.(metricdata.Histogram[float64])
	require.Len(t, value.DataPoints, 1)
	assert.Equal(t, 420.0, value.DataPoints[0].Sum)
}

func TestInventoryMetrics_RecordSweep(t *testing.T) {
	reader, mp := newTestMeter(t)
	m, err := NewInventoryMetrics(mp.Meter(inventoryMeterName))
	require.NoError(t, err)

	m.RecordSweep(context.Background(), 30*time.Millisecond, 3, 1)
	m.RecordSweep(context.Background(), 10*time.Millisecond, 0, 0)

	metrics := collect(t, reader)
	assert.Equal(t, int64(4), sumValue(t, metrics["inventory_decision_sweep_items_total"]))

	h := metrics["inventory_decision_sweep_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.Len(t, h.DataPoints, 1)
	assert.Equal(t, uint64(2), h.DataPoints[0].Count)
}

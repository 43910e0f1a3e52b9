package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// harness wires the inventory services over in-memory fakes
type harness struct {
	business uuid.UUID

	items        *fakeItemRepo
	prices       *fakePriceRepo
	components   *fakeComponentRepo
	stock        *fakeStockRepo
	movements    *fakeMovementRepo
	recipes      *fakeRecipeRepo
	reservations *fakeReservationRepo
	transfers    *fakeTransferRepo
	counts       *fakeCountRepo
	events       *recordingPublisher

	ledger    *StockLedger
	costs     *CostLedger
	itemSvc   *ItemService
	cascade   *CostCascadeHandler
	resolver  *RecipeResolver
	workflow  *OrderInventoryWorkflow
	transfer  *TransferService
	countSvc  *InventoryCountService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := zap.NewNop()
	h := &harness{
		business:     uuid.New(),
		items:        newFakeItemRepo(),
		prices:       newFakePriceRepo(),
		components:   newFakeComponentRepo(),
		stock:        newFakeStockRepo(),
		movements:    &fakeMovementRepo{},
		recipes:      newFakeRecipeRepo(),
		reservations: newFakeReservationRepo(),
		transfers:    newFakeTransferRepo(),
		counts:       newFakeCountRepo(),
		events:       &recordingPublisher{},
	}
	scope := NewNoOpTransactionScope(h.stock, h.movements, h.items, h.prices)

	h.ledger = NewStockLedger(scope, h.stock, h.movements, logger)
	h.ledger.SetEventPublisher(h.events)
	h.costs = NewCostLedger(scope, h.items, h.prices, h.components, logger)
	h.costs.SetEventPublisher(h.events)
	h.itemSvc = NewItemService(h.items, h.prices, h.components, h.costs, logger)
	h.itemSvc.SetEventPublisher(h.events)
	h.cascade = NewCostCascadeHandler(h.costs, h.items, h.components, h.recipes, logger)
	h.resolver = NewRecipeResolver(h.recipes, logger)
	h.workflow = NewOrderInventoryWorkflow(h.resolver, h.ledger, h.reservations, WorkflowConfig{}, logger)
	h.transfer = NewTransferService(h.transfers, h.items, h.ledger, logger)
	h.transfer.SetEventPublisher(h.events)
	h.countSvc = NewInventoryCountService(h.counts, h.items, h.ledger, logger)
	h.countSvc.SetEventPublisher(h.events)
	return h
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// addItem stores a business-owned raw item
func (h *harness) addItem(t *testing.T, name string, serving, storage valueobject.Unit, cost string) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(&h.business, name, "test", serving, storage, dec(cost))
	require.NoError(t, err)
	h.items.put(item)
	return item
}

func (h *harness) key(itemID uuid.UUID, branch *uuid.UUID) inventory.StockKey {
	return inventory.StockKey{BusinessID: h.business, BranchID: branch, ItemID: itemID}
}

// setStock seeds on-hand quantity for a row without writing a movement
func (h *harness) setStock(t *testing.T, key inventory.StockKey, qty string) {
	t.Helper()
	rec, err := inventory.NewStockRecord(key)
	require.NoError(t, err)
	rec.Quantity = dec(qty)
	h.stock.put(rec)
}

func (r *fakeItemRepo) put(item *inventory.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = *item
}

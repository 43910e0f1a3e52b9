package inventory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
)

// The fakes store copies so that a service only sees what it saved, as it
// would with a database.

type fakeItemRepo struct {
	mu          sync.Mutex
	items       map[uuid.UUID]inventory.Item
	order       []uuid.UUID
	lockedReads map[uuid.UUID]int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:       make(map[uuid.UUID]inventory.Item),
		lockedReads: make(map[uuid.UUID]int),
	}
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, shared.NewNotFoundError("item", id)
	}
	return &item, nil
}

func (r *fakeItemRepo) FindVisible(ctx context.Context, businessID, id uuid.UUID) (*inventory.Item, error) {
	item, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.VisibleTo(businessID) {
		return nil, shared.NewNotFoundError("item", id)
	}
	return item, nil
}

func (r *fakeItemRepo) FindVisibleForUpdate(ctx context.Context, businessID, id uuid.UUID) (*inventory.Item, error) {
	r.mu.Lock()
	r.lockedReads[id]++
	r.mu.Unlock()
	return r.FindVisible(ctx, businessID, id)
}

func (r *fakeItemRepo) locked(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lockedReads[id]
}

func (r *fakeItemRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListActive(_ context.Context, businessID uuid.UUID) ([]inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.Item, 0)
	for _, id := range r.order {
		item := r.items[id]
		if item.IsActive() && item.VisibleTo(businessID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ExistsByName(_ context.Context, businessID *uuid.UUID, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if sameScope(item.BusinessID, businessID) && strings.EqualFold(item.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeItemRepo) ExistsByBarcode(_ context.Context, businessID *uuid.UUID, barcode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if sameScope(item.BusinessID, businessID) && item.Barcode == barcode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeItemRepo) Save(_ context.Context, item *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = *item
	return nil
}

func sameScope(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type priceKey struct{ business, item uuid.UUID }

type fakePriceRepo struct {
	mu     sync.Mutex
	prices map[priceKey]inventory.BusinessItemPrice
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{prices: make(map[priceKey]inventory.BusinessItemPrice)}
}

func (r *fakePriceRepo) Find(_ context.Context, businessID, itemID uuid.UUID) (*inventory.BusinessItemPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prices[priceKey{businessID, itemID}]
	if !ok {
		return nil, shared.NewNotFoundError("business item price", itemID)
	}
	return &p, nil
}

func (r *fakePriceRepo) Save(_ context.Context, price *inventory.BusinessItemPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prices[priceKey{price.BusinessID, price.ItemID}] = *price
	return nil
}

type fakeComponentRepo struct {
	mu         sync.Mutex
	components map[uuid.UUID][]inventory.CompositeComponent
	failUsing  error
}

func newFakeComponentRepo() *fakeComponentRepo {
	return &fakeComponentRepo{components: make(map[uuid.UUID][]inventory.CompositeComponent)}
}

func (r *fakeComponentRepo) FindByComposite(_ context.Context, compositeID uuid.UUID) ([]inventory.CompositeComponent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]inventory.CompositeComponent(nil), r.components[compositeID]...), nil
}

func (r *fakeComponentRepo) FindCompositeIDsUsing(_ context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUsing != nil {
		return nil, r.failUsing
	}
	var out []uuid.UUID
	for compositeID, comps := range r.components {
		for _, c := range comps {
			if c.ComponentItemID == itemID {
				out = append(out, compositeID)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeComponentRepo) ReplaceForComposite(_ context.Context, compositeID uuid.UUID, components []inventory.CompositeComponent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[compositeID] = append([]inventory.CompositeComponent(nil), components...)
	return nil
}

type fakeStockRepo struct {
	mu       sync.Mutex
	records  map[string]inventory.StockRecord
	order    []string
	saves    int
	failLock map[string]error
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{records: make(map[string]inventory.StockRecord)}
}

func (r *fakeStockRepo) Find(_ context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[key.String()]
	if !ok {
		return nil, shared.NewNotFoundError("stock record", key)
	}
	return &rec, nil
}

func (r *fakeStockRepo) FindForUpdate(ctx context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	r.mu.Lock()
	err := r.failLock[key.String()]
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.Find(ctx, key)
}

func (r *fakeStockRepo) failLockOn(key inventory.StockKey, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLock == nil {
		r.failLock = make(map[string]error)
	}
	r.failLock[key.String()] = err
}

func (r *fakeStockRepo) GetOrCreate(ctx context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	if rec, err := r.Find(ctx, key); err == nil {
		return rec, nil
	}
	rec, err := inventory.NewStockRecord(key)
	if err != nil {
		return nil, err
	}
	return rec, r.Save(ctx, rec)
}

func (r *fakeStockRepo) ListByBusiness(_ context.Context, businessID uuid.UUID, branchID *uuid.UUID) ([]inventory.StockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.StockRecord, 0)
	for _, k := range r.order {
		rec := r.records[k]
		if rec.BusinessID != businessID {
			continue
		}
		if branchID != nil && (rec.BranchID == nil || *rec.BranchID != *branchID) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeStockRepo) ListByItem(_ context.Context, businessID, itemID uuid.UUID) ([]inventory.StockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.StockRecord, 0)
	for _, k := range r.order {
		rec := r.records[k]
		if rec.BusinessID == businessID && rec.ItemID == itemID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) Save(_ context.Context, record *inventory.StockRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := record.Key().String()
	if _, ok := r.records[k]; !ok {
		r.order = append(r.order, k)
	}
	r.records[k] = *record
	r.saves++
	return nil
}

func (r *fakeStockRepo) get(key inventory.StockKey) inventory.StockRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[key.String()]
}

func (r *fakeStockRepo) put(rec *inventory.StockRecord) {
	_ = r.Save(context.Background(), rec)
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []inventory.InventoryMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *inventory.InventoryMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, f inventory.MovementFilter) ([]inventory.InventoryMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.InventoryMovement, 0)
	for _, m := range r.movements {
		if m.BusinessID != f.BusinessID {
			continue
		}
		if f.ItemID != nil && m.ItemID != *f.ItemID {
			continue
		}
		if f.MovementType != nil && m.MovementType != *f.MovementType {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMovementRepo) all() []inventory.InventoryMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]inventory.InventoryMovement(nil), r.movements...)
}

type fakeRecipeRepo struct {
	mu        sync.Mutex
	products  map[uuid.UUID]inventory.Product
	modifiers map[uuid.UUID]inventory.Modifier
	saved     map[uuid.UUID]inventory.Product
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{
		products:  make(map[uuid.UUID]inventory.Product),
		modifiers: make(map[uuid.UUID]inventory.Modifier),
		saved:     make(map[uuid.UUID]inventory.Product),
	}
}

func (r *fakeRecipeRepo) FindProduct(_ context.Context, id uuid.UUID) (*inventory.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, shared.NewNotFoundError("product", id)
	}
	return &p, nil
}

func (r *fakeRecipeRepo) FindModifier(_ context.Context, id uuid.UUID) (*inventory.Modifier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modifiers[id]
	if !ok {
		return nil, shared.NewNotFoundError("modifier", id)
	}
	return &m, nil
}

func (r *fakeRecipeRepo) FindProductsUsingItems(_ context.Context, businessID uuid.UUID, itemIDs []uuid.UUID) ([]inventory.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		set[id] = struct{}{}
	}
	out := make([]inventory.Product, 0)
	for _, p := range r.products {
		if p.BusinessID == businessID && p.UsesAny(set) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) SaveCosts(_ context.Context, product *inventory.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved[product.ID] = *product
	return nil
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]inventory.OrderReservation
	order        []uuid.UUID
	failSave     error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[uuid.UUID]inventory.OrderReservation)}
}

func (r *fakeReservationRepo) FindByOrder(_ context.Context, businessID, orderID uuid.UUID) ([]inventory.OrderReservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.OrderReservation, 0)
	for _, id := range r.order {
		res := r.reservations[id]
		if res.BusinessID == businessID && res.OrderID == orderID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) FindByOrderItem(_ context.Context, businessID, orderID, orderItemID uuid.UUID) (*inventory.OrderReservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.BusinessID == businessID && res.OrderID == orderID && res.OrderItemID == orderItemID {
			return &res, nil
		}
	}
	return nil, shared.NewNotFoundError("reservation", orderItemID)
}

func (r *fakeReservationRepo) FindExpiredPendingDecisions(_ context.Context, now time.Time, limit int) ([]inventory.OrderReservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.OrderReservation, 0)
	for _, id := range r.order {
		res := r.reservations[id]
		if res.IsDecisionExpired(now) && len(out) < limit {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) Save(_ context.Context, res *inventory.OrderReservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave != nil {
		return r.failSave
	}
	if _, ok := r.reservations[res.ID]; !ok {
		r.order = append(r.order, res.ID)
	}
	r.reservations[res.ID] = *res
	return nil
}

type fakeTransferRepo struct {
	mu        sync.Mutex
	transfers map[uuid.UUID]inventory.Transfer
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{transfers: make(map[uuid.UUID]inventory.Transfer)}
}

func (r *fakeTransferRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transfers[id]
	if !ok {
		return nil, shared.NewNotFoundError("transfer", id)
	}
	t.Lines = append([]inventory.TransferLine(nil), t.Lines...)
	return &t, nil
}

func (r *fakeTransferRepo) Save(_ context.Context, t *inventory.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	cp.Lines = append([]inventory.TransferLine(nil), t.Lines...)
	r.transfers[t.ID] = cp
	return nil
}

type fakeCountRepo struct {
	mu     sync.Mutex
	counts map[uuid.UUID]inventory.InventoryCount
}

func newFakeCountRepo() *fakeCountRepo {
	return &fakeCountRepo{counts: make(map[uuid.UUID]inventory.InventoryCount)}
}

func (r *fakeCountRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.InventoryCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counts[id]
	if !ok {
		return nil, shared.NewNotFoundError("inventory count", id)
	}
	c.Lines = append([]inventory.CountLine(nil), c.Lines...)
	return &c, nil
}

func (r *fakeCountRepo) Save(_ context.Context, c *inventory.InventoryCount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	cp.Lines = append([]inventory.CountLine(nil), c.Lines...)
	r.counts[c.ID] = cp
	return nil
}

// recordingPublisher is an EventPublisher that keeps what it was given
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) byType(eventType string) []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.DomainEvent, 0)
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

var errBoom = errors.New("boom")

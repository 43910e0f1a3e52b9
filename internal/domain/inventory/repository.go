package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ItemRepository defines the interface for item persistence
type ItemRepository interface {
	// FindByID returns shared.ErrNotFound when the item does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindVisible finds an item owned by the business or shared with everyone
	FindVisible(ctx context.Context, businessID, id uuid.UUID) (*Item, error)

	// FindVisibleForUpdate is FindVisible holding a write lock on the item
	// row until the surrounding transaction ends. Cost positions of the item
	// are only changed under this lock.
	FindVisibleForUpdate(ctx context.Context, businessID, id uuid.UUID) (*Item, error)

	// FindByIDs returns the items that exist among ids
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Item, error)

	// ListActive lists active items owned by the business plus shared items
	ListActive(ctx context.Context, businessID uuid.UUID) ([]Item, error)

	// ExistsByName checks name uniqueness within a business scope (nil = shared scope)
	ExistsByName(ctx context.Context, businessID *uuid.UUID, name string) (bool, error)

	// ExistsByBarcode checks barcode uniqueness within a business scope
	ExistsByBarcode(ctx context.Context, businessID *uuid.UUID, barcode string) (bool, error)

	Save(ctx context.Context, item *Item) error
}

// BusinessItemPriceRepository persists per-business overrides of shared items
type BusinessItemPriceRepository interface {
	// Find returns shared.ErrNotFound when the business has no override
	Find(ctx context.Context, businessID, itemID uuid.UUID) (*BusinessItemPrice, error)

	// Save upserts on (business, item)
	Save(ctx context.Context, price *BusinessItemPrice) error
}

// CompositeComponentRepository persists the composite recipe graph
type CompositeComponentRepository interface {
	FindByComposite(ctx context.Context, compositeID uuid.UUID) ([]CompositeComponent, error)

	// FindCompositeIDsUsing lists composites that directly contain the item
	FindCompositeIDsUsing(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error)

	// ReplaceForComposite swaps the whole component list of a composite
	ReplaceForComposite(ctx context.Context, compositeID uuid.UUID, components []CompositeComponent) error
}

// StockRecordRepository defines the interface for stock row persistence
type StockRecordRepository interface {
	// Find returns shared.ErrNotFound when the row does not exist
	Find(ctx context.Context, key StockKey) (*StockRecord, error)

	// FindForUpdate reads the row under a write lock held until the
	// surrounding transaction ends
	FindForUpdate(ctx context.Context, key StockKey) (*StockRecord, error)

	// GetOrCreate returns the row, inserting an empty one when missing
	GetOrCreate(ctx context.Context, key StockKey) (*StockRecord, error)

	// ListByBusiness lists rows of a business; a non-nil branch narrows to that branch
	ListByBusiness(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID) ([]StockRecord, error)

	// ListByItem lists every row of one item across the business's branches
	ListByItem(ctx context.Context, businessID, itemID uuid.UUID) ([]StockRecord, error)

	Save(ctx context.Context, record *StockRecord) error
}

// MovementRepository is the append-only movement ledger
type MovementRepository interface {
	Create(ctx context.Context, movement *InventoryMovement) error
	List(ctx context.Context, filter MovementFilter) ([]InventoryMovement, error)
}

// RecipeRepository reads the menu catalog the recipe resolver works on
type RecipeRepository interface {
	// FindProduct loads a product with its variants and ingredients
	FindProduct(ctx context.Context, id uuid.UUID) (*Product, error)

	FindModifier(ctx context.Context, id uuid.UUID) (*Modifier, error)

	// FindProductsUsingItems lists the business's products whose recipes use any of the items
	FindProductsUsingItems(ctx context.Context, businessID uuid.UUID, itemIDs []uuid.UUID) ([]Product, error)

	// SaveCosts stores the product and variant costs
	SaveCosts(ctx context.Context, product *Product) error
}

// ReservationRepository persists order item reservations
type ReservationRepository interface {
	FindByOrder(ctx context.Context, businessID, orderID uuid.UUID) ([]OrderReservation, error)

	// FindByOrderItem returns shared.ErrNotFound when the item was never reserved
	FindByOrderItem(ctx context.Context, businessID, orderID, orderItemID uuid.UUID) (*OrderReservation, error)

	// FindExpiredPendingDecisions lists pending decisions with a deadline at or before now
	FindExpiredPendingDecisions(ctx context.Context, now time.Time, limit int) ([]OrderReservation, error)

	Save(ctx context.Context, reservation *OrderReservation) error
}

// TransferRepository persists transfers with their lines
type TransferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transfer, error)
	Save(ctx context.Context, transfer *Transfer) error
}

// CountRepository persists inventory counts with their lines
type CountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryCount, error)
	Save(ctx context.Context, count *InventoryCount) error
}

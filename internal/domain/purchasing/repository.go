package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID returns shared.ErrNotFound when the order does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	ExistsByOrderNumber(ctx context.Context, businessID uuid.UUID, orderNumber string) (bool, error)

	// Save upserts the order and its lines
	Save(ctx context.Context, po *PurchaseOrder) error
}

// ActivityRepository is the append-only purchase order audit trail
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	ListByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]Activity, error)
}

// TaxRateProvider reads a business's purchase tax setting. ok is false when
// the business has not configured one.
type TaxRateProvider interface {
	TaxRate(ctx context.Context, businessID uuid.UUID) (rate decimal.Decimal, ok bool, err error)
}

// InvoiceStorage checks uploaded invoice images
type InvoiceStorage interface {
	// Exists reports whether the referenced object has been uploaded
	Exists(ctx context.Context, ref string) (bool, error)
}

package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateTransferInput describes a new transfer
type CreateTransferInput struct {
	BusinessID   uuid.UUID
	FromBranchID uuid.UUID
	ToBusinessID uuid.UUID // zero means the same business
	ToBranchID   uuid.UUID
	Lines        []inventory.TransferLineInput
	Notes        string
	ActorID      *uuid.UUID
}

// TransferService moves stock between branches. Stock only moves on receive.
type TransferService struct {
	transfers inventory.TransferRepository
	items     inventory.ItemRepository
	ledger    *StockLedger
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewTransferService creates a new TransferService
func NewTransferService(
	transfers inventory.TransferRepository,
	items inventory.ItemRepository,
	ledger *StockLedger,
	logger *zap.Logger,
) *TransferService {
	return &TransferService{
		transfers: transfers,
		items:     items,
		ledger:    ledger,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for TransferReceived events
func (s *TransferService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// Create validates and stores a pending transfer
func (s *TransferService) Create(ctx context.Context, in CreateTransferInput) (*inventory.Transfer, error) {
	toBusiness := in.ToBusinessID
	if toBusiness == uuid.Nil {
		toBusiness = in.BusinessID
	}
	t, err := inventory.NewTransfer(in.BusinessID, in.FromBranchID, toBusiness, in.ToBranchID, in.Lines, in.Notes)
	if err != nil {
		return nil, err
	}
	for _, l := range t.Lines {
		if _, err := s.items.FindVisible(ctx, in.BusinessID, l.ItemID); err != nil {
			return nil, err
		}
	}
	if in.ActorID != nil {
		t.SetCreatedBy(*in.ActorID)
	}

	if err := s.transfers.Save(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info("Transfer created",
		zap.String("transfer_id", t.ID.String()),
		zap.String("from_branch_id", t.FromBranchID.String()),
		zap.String("to_branch_id", t.ToBranchID.String()),
		zap.Int("lines", len(t.Lines)),
	)
	return t, nil
}

// Get returns a transfer visible to the business from either side
func (s *TransferService) Get(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error) {
	t, err := s.transfers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.VisibleTo(businessID) {
		return nil, shared.NewNotFoundError("transfer", id)
	}
	return t, nil
}

// getOwned returns a transfer the business sends
func (s *TransferService) getOwned(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error) {
	t, err := s.transfers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.BelongsTo(businessID) {
		return nil, shared.NewNotFoundError("transfer", id)
	}
	return t, nil
}

// Dispatch marks the transfer in transit and holds the requested stock at the source
func (s *TransferService) Dispatch(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error) {
	t, err := s.getOwned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := t.Dispatch(); err != nil {
		return nil, err
	}

	ref := inventory.RefTo(inventory.ReferenceTransfer, t.ID)
	for _, l := range t.Lines {
		if _, err := s.ledger.Hold(ctx, t.SourceKey(l.ItemID), l.RequestedQuantity, ref); err != nil {
			return nil, fmt.Errorf("hold item %s: %w", l.ItemID, err)
		}
	}
	if err := s.transfers.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Receive moves the stock: the requested quantity leaves the source and the
// received quantity, which may be lower after loss in transit, arrives at the
// destination. Lines without a received quantity take the requested one.
func (s *TransferService) Receive(ctx context.Context, businessID, id uuid.UUID, received map[uuid.UUID]decimal.Decimal, actor *uuid.UUID) (*inventory.Transfer, error) {
	t, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	dispatched := t.Status == inventory.TransferInTransit
	if err := t.Receive(received, actor); err != nil {
		return nil, err
	}

	ref := inventory.RefTo(inventory.ReferenceTransfer, t.ID)
	for _, l := range t.Lines {
		held := decimal.Zero
		if dispatched {
			held = l.RequestedQuantity
		}
		if _, err := s.ledger.TransferOut(ctx, t.SourceKey(l.ItemID), l.RequestedQuantity, held, ref, actor); err != nil {
			return nil, fmt.Errorf("transfer out item %s: %w", l.ItemID, err)
		}
		if l.ReceivedQuantity == nil || !l.ReceivedQuantity.IsPositive() {
			continue
		}
		if _, err := s.ledger.Adjust(ctx, AdjustInput{
			Key:          t.DestinationKey(l.ItemID),
			Delta:        *l.ReceivedQuantity,
			MovementType: inventory.MovementTransferIn,
			Reference:    ref,
			ActorID:      actor,
		}); err != nil {
			return nil, fmt.Errorf("transfer in item %s: %w", l.ItemID, err)
		}
	}

	if err := s.transfers.Save(ctx, t); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, inventory.NewTransferReceivedEvent(t))
	}
	s.logger.Info("Transfer received",
		zap.String("transfer_id", t.ID.String()),
		zap.Bool("was_dispatched", dispatched),
	)
	return t, nil
}

// Cancel abandons the transfer. A pending transfer never touched stock; an
// in-transit one gives its holds back.
func (s *TransferService) Cancel(ctx context.Context, businessID, id uuid.UUID) (*inventory.Transfer, error) {
	t, err := s.getOwned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	dispatched, err := t.Cancel()
	if err != nil {
		return nil, err
	}

	if dispatched {
		ref := inventory.RefTo(inventory.ReferenceTransfer, t.ID)
		for _, l := range t.Lines {
			if _, err := s.ledger.ReleaseHold(ctx, t.SourceKey(l.ItemID), l.RequestedQuantity, ref); err != nil {
				return nil, fmt.Errorf("release hold on item %s: %w", l.ItemID, err)
			}
		}
	}
	if err := s.transfers.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

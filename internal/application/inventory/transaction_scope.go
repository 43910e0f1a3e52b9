package inventory

import (
	"context"

	"github.com/restopos/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// All repository operations made through the repos passed to fn are
// committed or rolled back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories that take part in a
// stock or cost write. They all share one underlying transaction.
//
// StockRepo().FindForUpdate holds the row lock until the transaction ends,
// which is what serializes concurrent adjustments of one stock row.
type TransactionalRepositories interface {
	StockRepo() inventory.StockRecordRepository
	// MovementRepo is append-only
	MovementRepo() inventory.MovementRepository
	ItemRepo() inventory.ItemRepository
	PriceRepo() inventory.BusinessItemPriceRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	stockRepo    inventory.StockRecordRepository
	movementRepo inventory.MovementRepository
	itemRepo     inventory.ItemRepository
	priceRepo    inventory.BusinessItemPriceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	stockRepo inventory.StockRecordRepository,
	movementRepo inventory.MovementRepository,
	itemRepo inventory.ItemRepository,
	priceRepo inventory.BusinessItemPriceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		priceRepo:    priceRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockRepo returns the stock record repository.
func (s *NoOpTransactionScope) StockRepo() inventory.StockRecordRepository {
	return s.stockRepo
}

// MovementRepo returns the movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.MovementRepository {
	return s.movementRepo
}

// ItemRepo returns the item repository.
func (s *NoOpTransactionScope) ItemRepo() inventory.ItemRepository {
	return s.itemRepo
}

// PriceRepo returns the business item price repository.
func (s *NoOpTransactionScope) PriceRepo() inventory.BusinessItemPriceRepository {
	return s.priceRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

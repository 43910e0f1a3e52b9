package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot is an entity with an optimistic-lock version and a
// buffer of events raised since it was loaded
type BaseAggregateRoot struct {
	BaseEntity
	Version      int
	domainEvents []DomainEvent
}

// NewBaseAggregateRoot creates an aggregate at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// MarkModified bumps the update timestamp and the version
func (a *BaseAggregateRoot) MarkModified() {
	a.Touch()
	a.Version++
}

// AddDomainEvent buffers an event for publication after commit
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns the buffered events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents drops the buffered events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// BusinessAggregateRoot is an aggregate owned by exactly one business
type BusinessAggregateRoot struct {
	BaseAggregateRoot
	BusinessID uuid.UUID
	CreatedBy  *uuid.UUID
}

// NewBusinessAggregateRoot creates a new business-scoped aggregate root
func NewBusinessAggregateRoot(businessID uuid.UUID) BusinessAggregateRoot {
	return BusinessAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		BusinessID:        businessID,
	}
}

// SetCreatedBy sets the creator user ID
func (b *BusinessAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	if userID == uuid.Nil {
		return
	}
	b.CreatedBy = &userID
}

// BelongsTo reports whether the aggregate is visible to the given business
func (b *BusinessAggregateRoot) BelongsTo(businessID uuid.UUID) bool {
	return b.BusinessID == businessID
}

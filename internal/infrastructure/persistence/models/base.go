package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel provides common persistence fields for aggregate roots.
// It extends BaseModel with version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// ToDomainAggregateRoot converts AggregateModel to domain BaseAggregateRoot
func (m *AggregateModel) ToDomainAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: m.BaseModel.ToDomain(),
		Version:    m.Version,
	}
}

// BusinessAggregateModel provides common persistence fields for
// business-owned aggregate roots
type BusinessAggregateModel struct {
	AggregateModel
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid"`
}

// FromDomainBusinessAggregateRoot populates BusinessAggregateModel from domain BusinessAggregateRoot
func (m *BusinessAggregateModel) FromDomainBusinessAggregateRoot(b shared.BusinessAggregateRoot) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.BusinessID = b.BusinessID
	m.CreatedBy = b.CreatedBy
}

// ToDomainBusinessAggregateRoot converts the model to domain BusinessAggregateRoot
func (m *BusinessAggregateModel) ToDomainBusinessAggregateRoot() shared.BusinessAggregateRoot {
	return shared.BusinessAggregateRoot{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BusinessID:        m.BusinessID,
		CreatedBy:         m.CreatedBy,
	}
}

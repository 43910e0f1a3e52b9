// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: Base persistence models (BaseModel, AggregateModel, BusinessAggregateModel)
// - inventory.go: items, price overrides, composite components, stock rows, movements
// - recipe.go: menu products, variants, recipe ingredients, modifiers (read side)
// - reservation.go: order item reservations
// - transfer.go, count.go: transfers and inventory counts with their lines
// - purchasing.go: purchase orders, lines, activity log, business settings
package models

// All returns every model, in dependency order, for AutoMigrate in tests
func All() []any {
	return []any{
		&ItemModel{},
		&BusinessItemPriceModel{},
		&CompositeComponentModel{},
		&StockRecordModel{},
		&InventoryMovementModel{},
		&ProductModel{},
		&ProductVariantModel{},
		&RecipeIngredientModel{},
		&ModifierModel{},
		&OrderReservationModel{},
		&TransferModel{},
		&TransferLineModel{},
		&InventoryCountModel{},
		&CountLineModel{},
		&PurchaseOrderModel{},
		&PurchaseOrderLineModel{},
		&PurchaseOrderActivityModel{},
		&BusinessSettingModel{},
	}
}

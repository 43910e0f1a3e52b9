package valueobject

import (
	"strings"

	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Unit is a unit of measurement for stock and recipe quantities.
// Serving units (grams, mL, piece) are the base of their category;
// storage units are counted in coarser multiples of them.
type Unit string

const (
	UnitGrams Unit = "grams"
	UnitKg    Unit = "Kg"
	UnitML    Unit = "mL"
	UnitL     Unit = "L"
	UnitPiece Unit = "piece"
)

// UnitCategory is the physical dimension a unit measures
type UnitCategory string

const (
	CategoryWeight UnitCategory = "weight"
	CategoryVolume UnitCategory = "volume"
	CategoryCount  UnitCategory = "count"
)

type unitDef struct {
	category UnitCategory
	factor   decimal.Decimal // base units per one of this unit
}

var unitTable = map[Unit]unitDef{
	UnitGrams: {category: CategoryWeight, factor: decimal.NewFromInt(1)},
	UnitKg:    {category: CategoryWeight, factor: decimal.NewFromInt(1000)},
	UnitML:    {category: CategoryVolume, factor: decimal.NewFromInt(1)},
	UnitL:     {category: CategoryVolume, factor: decimal.NewFromInt(1000)},
	UnitPiece: {category: CategoryCount, factor: decimal.NewFromInt(1)},
}

// storage units offered for each serving unit, coarsest first
var storageUnitsByServing = map[Unit][]Unit{
	UnitGrams: {UnitKg, UnitGrams},
	UnitML:    {UnitL, UnitML},
	UnitPiece: {UnitPiece},
}

var unitAliases = map[string]Unit{
	"g":           UnitGrams,
	"gr":          UnitGrams,
	"gram":        UnitGrams,
	"grams":       UnitGrams,
	"kg":          UnitKg,
	"kilo":        UnitKg,
	"kilogram":    UnitKg,
	"kilograms":   UnitKg,
	"ml":          UnitML,
	"milliliter":  UnitML,
	"milliliters": UnitML,
	"millilitre":  UnitML,
	"l":           UnitL,
	"liter":       UnitL,
	"liters":      UnitL,
	"litre":       UnitL,
	"litres":      UnitL,
	"piece":       UnitPiece,
	"pieces":      UnitPiece,
	"pc":          UnitPiece,
	"pcs":         UnitPiece,
}

// ParseUnit normalizes a free-form unit name
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return "", shared.NewValidationError("unknown unit %q", s)
}

// IsValid reports whether the unit is one of the supported units
func (u Unit) IsValid() bool {
	_, ok := unitTable[u]
	return ok
}

// Category returns the unit's physical category, or "" for unknown units
func (u Unit) Category() UnitCategory {
	return unitTable[u].category
}

// IsServingUnit reports whether recipes may be written in this unit
func (u Unit) IsServingUnit() bool {
	_, ok := storageUnitsByServing[u]
	return ok
}

// String returns the unit code
func (u Unit) String() string {
	return string(u)
}

// ConvertUnits converts qty from one unit to another of the same category.
// No rounding is applied; callers round for display.
func ConvertUnits(qty decimal.Decimal, from, to Unit) (decimal.Decimal, error) {
	fromDef, ok := unitTable[from]
	if !ok {
		return decimal.Zero, shared.NewValidationError("unknown unit %q", from)
	}
	toDef, ok := unitTable[to]
	if !ok {
		return decimal.Zero, shared.NewValidationError("unknown unit %q", to)
	}
	if fromDef.category != toDef.category {
		return decimal.Zero, shared.NewIncompatibleUnitsError(string(from), string(to))
	}
	if from == to {
		return qty, nil
	}
	return qty.Mul(fromDef.factor).Div(toDef.factor), nil
}

// AreCompatible reports whether an item may be stored in storage and
// served in serving
func AreCompatible(storage, serving Unit) bool {
	s, ok := unitTable[storage]
	if !ok {
		return false
	}
	v, ok := unitTable[serving]
	if !ok {
		return false
	}
	return s.category == v.category
}

// CompatibleStorageUnitsFor lists the storage units an item served in
// serving may use
func CompatibleStorageUnitsFor(serving Unit) []Unit {
	units := storageUnitsByServing[serving]
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// ConversionFactor returns how many serving units make up one storage unit
func ConversionFactor(storage, serving Unit) (decimal.Decimal, error) {
	return ConvertUnits(decimal.NewFromInt(1), storage, serving)
}

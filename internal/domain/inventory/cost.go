package inventory

import (
	"github.com/shopspring/decimal"
)

// CostPrecision is the number of decimal places kept for per-serving-unit
// costs. A gram of saffron and a gram of flour must both stay non-zero.
const CostPrecision int32 = 8

// WeightedAverageCost blends an existing cost position with a receipt.
//
//	WAC = (existingQty*existingCost + receivedQty*receivedCost) / (existingQty + receivedQty)
//
// Negative quantities count as zero. When nothing is on hand after the
// receipt the received cost is returned unchanged.
func WeightedAverageCost(existingQty, existingCost, receivedQty, receivedCost decimal.Decimal) decimal.Decimal {
	if existingQty.IsNegative() {
		existingQty = decimal.Zero
	}
	if receivedQty.IsNegative() {
		receivedQty = decimal.Zero
	}

	totalQty := existingQty.Add(receivedQty)
	if totalQty.LessThanOrEqual(decimal.Zero) {
		return receivedCost.Round(CostPrecision)
	}

	totalValue := existingQty.Mul(existingCost).Add(receivedQty.Mul(receivedCost))
	return totalValue.Div(totalQty).Round(CostPrecision)
}

// ComponentCost is one ingredient line of a composite batch
type ComponentCost struct {
	Quantity decimal.Decimal // serving units of the component per batch
	UnitCost decimal.Decimal // component cost per serving unit
}

// CompositeUnitCost returns the cost of one serving unit of a composite
// produced in batches of batchQty serving units.
func CompositeUnitCost(components []ComponentCost, batchQty decimal.Decimal) decimal.Decimal {
	if !batchQty.IsPositive() {
		return decimal.Zero
	}
	batchCost := decimal.Zero
	for _, c := range components {
		batchCost = batchCost.Add(c.Quantity.Mul(c.UnitCost))
	}
	return batchCost.Div(batchQty).Round(CostPrecision)
}

package inventory

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWeightedAverageCost(t *testing.T) {
	tests := []struct {
		name         string
		existingQty  string
		existingCost string
		receivedQty  string
		receivedCost string
		want         string
	}{
		{"empty stock takes received cost", "0", "0", "50000", "0.0125", "0.0125"},
		{"equal quantities average", "1000", "0.01", "1000", "0.02", "0.015"},
		{"weighted toward larger receipt", "1000", "0.01", "3000", "0.02", "0.0175"},
		{"nothing received keeps existing", "500", "0.3", "0", "0.9", "0.3"},
		{"negative existing treated as zero", "-20", "5", "10", "2", "2"},
		{"negative received treated as zero", "10", "2", "-5", "9", "2"},
		{"both zero falls back to received cost", "0", "4", "0", "7", "7"},
		{"rounds to eight places", "3", "0", "3", "0.000000011", "0.00000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedAverageCost(dec(tt.existingQty), dec(tt.existingCost), dec(tt.receivedQty), dec(tt.receivedCost))
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestWeightedAverageCost_SingleReceiptIntoEmptyStock(t *testing.T) {
	costs := []string{"0", "0.0125", "12.5", "0.00000001", "999.12345678"}
	for _, c := range costs {
		got := WeightedAverageCost(decimal.Zero, dec("3.5"), dec("42"), dec(c))
		assert.True(t, dec(c).Equal(got), "cost %s gave %s", c, got)
	}
}

func TestWeightedAverageCost_StaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		existingQty := decimal.NewFromInt(rng.Int63n(100000))
		receivedQty := decimal.NewFromInt(rng.Int63n(100000) + 1)
		existingCost := decimal.New(rng.Int63n(10_000_000_000), -8)
		receivedCost := decimal.New(rng.Int63n(10_000_000_000), -8)

		got := WeightedAverageCost(existingQty, existingCost, receivedQty, receivedCost)

		lo := decimal.Min(existingCost, receivedCost)
		hi := decimal.Max(existingCost, receivedCost)
		assert.True(t, got.GreaterThanOrEqual(lo) && got.LessThanOrEqual(hi),
			"qty %s@%s + %s@%s = %s outside [%s,%s]", existingQty, existingCost, receivedQty, receivedCost, got, lo, hi)
	}
}

func TestCompositeUnitCost(t *testing.T) {
	t.Run("sauce batch", func(t *testing.T) {
		got := CompositeUnitCost([]ComponentCost{
			{Quantity: dec("300"), UnitCost: dec("0.01")},
			{Quantity: dec("200"), UnitCost: dec("0.02")},
		}, dec("500"))
		assert.True(t, dec("0.014").Equal(got), "got %s", got)
	})

	t.Run("zero batch yields zero", func(t *testing.T) {
		got := CompositeUnitCost([]ComponentCost{{Quantity: dec("1"), UnitCost: dec("1")}}, decimal.Zero)
		assert.True(t, got.IsZero())
	})

	t.Run("no components yields zero", func(t *testing.T) {
		got := CompositeUnitCost(nil, dec("100"))
		assert.True(t, got.IsZero())
	})
}

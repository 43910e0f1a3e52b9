package inventory

import (
	"context"
	"strings"

	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecipeResolver turns order lines into the stock they consume. Anything it
// cannot resolve contributes nothing; it never fails an order.
type RecipeResolver struct {
	recipes inventory.RecipeRepository
	logger  *zap.Logger
}

// NewRecipeResolver creates a new RecipeResolver
func NewRecipeResolver(recipes inventory.RecipeRepository, logger *zap.Logger) *RecipeResolver {
	return &RecipeResolver{recipes: recipes, logger: logger}
}

// Resolve aggregates the requirements of all lines per item, in first-seen order
func (r *RecipeResolver) Resolve(ctx context.Context, lines []inventory.OrderLine) []inventory.Requirement {
	set := inventory.NewRequirementSet()
	for _, line := range lines {
		set.Merge(r.ResolveLine(ctx, line))
	}
	return set.List()
}

// ResolveLine returns the requirements of one order line in storage units
func (r *RecipeResolver) ResolveLine(ctx context.Context, line inventory.OrderLine) []inventory.Requirement {
	set := inventory.NewRequirementSet()

	product, err := r.recipes.FindProduct(ctx, line.ProductID)
	if err != nil {
		r.logger.Debug("Product not resolvable, skipping line",
			zap.String("product_id", line.ProductID.String()),
			zap.Error(err),
		)
		return set.List()
	}

	ingredients, ok := product.IngredientsFor(line.VariantID)
	if !ok {
		r.logger.Debug("No recipe for order line",
			zap.String("product_id", product.ID.String()),
			zap.Any("variant_id", line.VariantID),
		)
		return set.List()
	}

	removed := make(map[string]struct{})
	for _, m := range line.Modifiers {
		if name := normalizeName(m.Name); m.Type == inventory.ModifierRemoval && name != "" {
			removed[name] = struct{}{}
		}
	}

	for _, ing := range ingredients {
		if _, skip := removed[normalizeName(ing.Name)]; skip {
			continue
		}
		set.Add(ing.ItemID, ing.Quantity.Mul(line.Quantity))
	}

	for _, m := range line.Modifiers {
		if m.Type != inventory.ModifierExtra {
			continue
		}
		if m.ModifierID == nil {
			r.logger.Debug("Extra modifier without id, skipping", zap.String("name", m.Name))
			continue
		}
		mod, err := r.recipes.FindModifier(ctx, *m.ModifierID)
		if err != nil {
			r.logger.Debug("Modifier not resolvable, skipping",
				zap.String("modifier_id", m.ModifierID.String()),
				zap.Error(err),
			)
			continue
		}
		if mod.ItemID == nil {
			continue
		}
		count := m.Count
		if count <= 0 {
			count = 1
		}
		set.Add(*mod.ItemID, mod.Quantity.Mul(decimal.NewFromInt(int64(count))).Mul(line.Quantity))
	}

	return set.List()
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

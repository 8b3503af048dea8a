package shortage

import (
	"fmt"

	"github.com/prepware/stockpile/pkg/application/dto"
	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/domain/entities"
)

// Strategy is the capability contract every category calculation
// implements. Implementations are stateless and side-effect free; the same
// context always produces the same result.
type Strategy interface {
	// ID identifies the strategy in reports.
	ID() string
	// CanHandle reports whether the strategy applies to a category.
	CanHandle(category entities.CategoryID) bool
	// RecommendedQuantity computes one definition's requirement.
	RecommendedQuantity(def entities.RecommendedItemDefinition, ctx *Context) entities.Quantity
	// ActualQuantity measures the strictly matching inventory against one
	// definition.
	ActualQuantity(matching []entities.InventoryItem, def entities.RecommendedItemDefinition, ctx *Context) ActualQuantity
	// AggregateTotals folds the per-definition results into the category
	// result.
	AggregateTotals(results []DefinitionResult, ctx *Context) *dto.ShortageCalculationResult
	// HasEnoughInventory decides category completion from an aggregate.
	HasEnoughInventory(result *dto.ShortageCalculationResult) bool
}

// Registry dispatches categories to strategies. Strategies are tested in
// registration order and the first match wins; the last registered
// strategy acts as the fallback when nothing matches, so callers register
// exactly one catch-all last. The registry is constructed explicitly and
// passed into entry points instead of living in package state, so tests
// can supply isolated registries.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a registry from an ordered strategy list.
func NewRegistry(strategies ...Strategy) (*Registry, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("registry requires at least one strategy")
	}
	return &Registry{strategies: strategies}, nil
}

// DefaultRegistry wires the standard strategy order: water, food,
// item-type-count, then the catch-all default.
func DefaultRegistry() *Registry {
	return &Registry{strategies: []Strategy{
		NewWaterStrategy(),
		NewFoodStrategy(),
		NewItemCountStrategy(),
		NewDefaultStrategy(),
	}}
}

// Select returns the first strategy that handles the category, falling
// back to the last registered strategy.
func (r *Registry) Select(category entities.CategoryID) Strategy {
	for _, s := range r.strategies {
		if s.CanHandle(category) {
			return s
		}
	}
	return r.strategies[len(r.strategies)-1]
}

// Calculate runs the full category calculation: strategy selection,
// per-definition measurement and aggregation.
func (r *Registry) Calculate(ctx *Context) (*dto.ShortageCalculationResult, Strategy) {
	strategy := r.Select(ctx.CategoryID)
	results := BuildDefinitionResults(strategy, ctx)
	return strategy.AggregateTotals(results, ctx), strategy
}

// BuildDefinitionResults measures every definition of the context's
// category through the given strategy. Disabled definitions keep their
// actual-quantity and calorie measurements but get a zero requirement.
func BuildDefinitionResults(strategy Strategy, ctx *Context) []DefinitionResult {
	results := make([]DefinitionResult, 0, len(ctx.Definitions))
	for _, def := range ctx.Definitions {
		matching := calc.StrictMatches(ctx.CategoryItems, def)

		disabled := ctx.IsDisabled(def.ID)
		var recommended entities.Quantity
		if !disabled {
			recommended = strategy.RecommendedQuantity(def, ctx)
		}

		actual := strategy.ActualQuantity(matching, def, ctx)

		marked := false
		for _, item := range matching {
			if item.MarkedAsEnough {
				marked = true
				break
			}
		}

		results = append(results, DefinitionResult{
			Definition:     def,
			Recommended:    recommended,
			Actual:         actual.Quantity,
			Calories:       actual.Calories,
			MarkedAsEnough: marked,
			Disabled:       disabled,
		})
	}
	return results
}

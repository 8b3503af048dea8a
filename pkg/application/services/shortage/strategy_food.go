package shortage

import (
	"math"

	"github.com/prepware/stockpile/pkg/application/dto"
	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/domain/entities"
)

// CategoryFood is the canonical food category id.
const CategoryFood entities.CategoryID = "food"

// FoodStrategy computes food categories by calories. Quantity totals and
// shortages are still produced for display, but completion is decided by
// the calorie balance alone.
type FoodStrategy struct {
	base       *DefaultStrategy
	categories map[entities.CategoryID]bool
}

// NewFoodStrategy creates the food strategy. Without arguments it handles
// the canonical food category.
func NewFoodStrategy(categories ...entities.CategoryID) *FoodStrategy {
	if len(categories) == 0 {
		categories = []entities.CategoryID{CategoryFood}
	}
	handled := make(map[entities.CategoryID]bool, len(categories))
	for _, c := range categories {
		handled[c] = true
	}
	return &FoodStrategy{base: NewDefaultStrategy(), categories: handled}
}

// Verify interface compliance
var _ Strategy = (*FoodStrategy)(nil)

func (s *FoodStrategy) ID() string { return "food" }

func (s *FoodStrategy) CanHandle(category entities.CategoryID) bool {
	return s.categories[category]
}

func (s *FoodStrategy) RecommendedQuantity(def entities.RecommendedItemDefinition, ctx *Context) entities.Quantity {
	return s.base.RecommendedQuantity(def, ctx)
}

// ActualQuantity sums the matching quantities and their calorie
// contributions. Per-item calorie overrides win over the definition's
// rate; mass-stored items are converted to discrete units first.
func (s *FoodStrategy) ActualQuantity(matching []entities.InventoryItem, def entities.RecommendedItemDefinition, ctx *Context) ActualQuantity {
	var actual ActualQuantity
	for _, item := range matching {
		actual.Quantity += item.Quantity
		actual.Calories += calc.ItemCalories(item, def)
	}
	return actual
}

// AggregateTotals produces the quantity view through the default
// single-unit aggregation and layers the calorie balance on top. Calories
// of disabled definitions still count: their items exist and feed people,
// they just carry no active requirement.
func (s *FoodStrategy) AggregateTotals(results []DefinitionResult, ctx *Context) *dto.ShortageCalculationResult {
	result := aggregateSingleUnit(results)

	var needed float64
	if ctx.Household.Enabled {
		needed = ctx.Options.DailyCaloriesPerPerson * ctx.PeopleMultiplier * float64(ctx.Household.SupplyDurationDays)
	}

	var actual float64
	for _, r := range results {
		actual += r.Calories
	}

	result.Calories = &dto.CalorieTotals{
		NeededCalories:  needed,
		ActualCalories:  actual,
		MissingCalories: math.Max(0, needed-actual),
	}
	return result
}

// HasEnoughInventory compares calories only; the quantity totals do not
// gate completion. Zero needed calories means no requirement and no
// completion.
func (s *FoodStrategy) HasEnoughInventory(result *dto.ShortageCalculationResult) bool {
	if result.Calories == nil || result.Calories.NeededCalories == 0 {
		return false
	}
	return result.Calories.ActualCalories >= result.Calories.NeededCalories
}

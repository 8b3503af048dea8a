package shortage

import (
	"github.com/prepware/stockpile/pkg/application/dto"
	"github.com/prepware/stockpile/pkg/domain/entities"
)

// CategoryCommunication is the canonical category computed by item count.
const CategoryCommunication entities.CategoryID = "communication"

// ItemCountStrategy aggregates a category by the count of fulfilled
// definitions versus the total definition count, regardless of whether the
// units actually differ. This is an explicit opt-in, distinct from the
// default strategy's mixed-unit auto-detection.
type ItemCountStrategy struct {
	base       *DefaultStrategy
	categories map[entities.CategoryID]bool
}

// NewItemCountStrategy creates the item-type-count strategy. Without
// arguments it handles the communication category.
func NewItemCountStrategy(categories ...entities.CategoryID) *ItemCountStrategy {
	if len(categories) == 0 {
		categories = []entities.CategoryID{CategoryCommunication}
	}
	handled := make(map[entities.CategoryID]bool, len(categories))
	for _, c := range categories {
		handled[c] = true
	}
	return &ItemCountStrategy{base: NewDefaultStrategy(), categories: handled}
}

// Verify interface compliance
var _ Strategy = (*ItemCountStrategy)(nil)

func (s *ItemCountStrategy) ID() string { return "item-type-count" }

func (s *ItemCountStrategy) CanHandle(category entities.CategoryID) bool {
	return s.categories[category]
}

func (s *ItemCountStrategy) RecommendedQuantity(def entities.RecommendedItemDefinition, ctx *Context) entities.Quantity {
	return s.base.RecommendedQuantity(def, ctx)
}

func (s *ItemCountStrategy) ActualQuantity(matching []entities.InventoryItem, def entities.RecommendedItemDefinition, ctx *Context) ActualQuantity {
	return s.base.ActualQuantity(matching, def, ctx)
}

// AggregateTotals counts fulfilled definitions: marked as enough, or
// holding at least the recommended quantity. There is never a primary
// unit; the caller renders "N of M items".
func (s *ItemCountStrategy) AggregateTotals(results []DefinitionResult, ctx *Context) *dto.ShortageCalculationResult {
	result := &dto.ShortageCalculationResult{
		Shortages: shortageList(results),
	}

	for _, r := range enabledResults(results) {
		result.TotalNeeded++
		if r.MarkedAsEnough || r.Actual >= r.Recommended {
			result.TotalActual++
		}
	}

	return result
}

func (s *ItemCountStrategy) HasEnoughInventory(result *dto.ShortageCalculationResult) bool {
	return s.base.HasEnoughInventory(result)
}

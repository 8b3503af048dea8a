package shortage

import (
	"math"
	"sort"

	"github.com/prepware/stockpile/pkg/application/dto"
	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/domain/entities"
)

// DefaultStrategy is the generic, catch-all category calculation. When the
// category's enabled definitions share one unit it sums quantities; with
// mixed units it falls back to weighted fulfillment ratios so the caller
// can render "N of M items".
type DefaultStrategy struct{}

// NewDefaultStrategy creates the catch-all strategy.
func NewDefaultStrategy() *DefaultStrategy {
	return &DefaultStrategy{}
}

// Verify interface compliance
var _ Strategy = (*DefaultStrategy)(nil)

func (s *DefaultStrategy) ID() string { return "default" }

// CanHandle always reports true; the default strategy is the fallback.
func (s *DefaultStrategy) CanHandle(entities.CategoryID) bool { return true }

func (s *DefaultStrategy) RecommendedQuantity(def entities.RecommendedItemDefinition, ctx *Context) entities.Quantity {
	return calc.RecommendedQuantity(def, ctx.Household, ctx.PeopleMultiplier, ctx.Options)
}

func (s *DefaultStrategy) ActualQuantity(matching []entities.InventoryItem, def entities.RecommendedItemDefinition, ctx *Context) ActualQuantity {
	var total entities.Quantity
	for _, item := range matching {
		total += item.Quantity
	}
	return ActualQuantity{Quantity: total}
}

func (s *DefaultStrategy) AggregateTotals(results []DefinitionResult, ctx *Context) *dto.ShortageCalculationResult {
	if sharesSingleUnit(results) {
		return aggregateSingleUnit(results)
	}
	return aggregateWeighted(results)
}

// HasEnoughInventory reports completion. A category without requirements
// cannot be complete.
func (s *DefaultStrategy) HasEnoughInventory(result *dto.ShortageCalculationResult) bool {
	if result.TotalNeeded == 0 {
		return false
	}
	return result.TotalActual >= result.TotalNeeded
}

// enabledResults filters out disabled definitions; they carry no
// requirement and must not influence units, totals or shortages.
func enabledResults(results []DefinitionResult) []DefinitionResult {
	enabled := make([]DefinitionResult, 0, len(results))
	for _, r := range results {
		if !r.Disabled {
			enabled = append(enabled, r)
		}
	}
	return enabled
}

// sharesSingleUnit reports whether all enabled definitions use one unit.
func sharesSingleUnit(results []DefinitionResult) bool {
	var unit string
	seen := false
	for _, r := range enabledResults(results) {
		if !seen {
			unit = r.Definition.Unit
			seen = true
			continue
		}
		if r.Definition.Unit != unit {
			return false
		}
	}
	return true
}

// aggregateSingleUnit sums quantities across enabled definitions. The
// primary unit is the unit with the largest cumulative recommended
// quantity; ties resolve to the first-seen unit.
func aggregateSingleUnit(results []DefinitionResult) *dto.ShortageCalculationResult {
	result := &dto.ShortageCalculationResult{
		Shortages: shortageList(results),
	}

	unitTotals := make(map[string]float64)
	var unitOrder []string
	for _, r := range enabledResults(results) {
		result.TotalActual += float64(r.Actual)
		result.TotalNeeded += float64(r.Recommended)

		if _, ok := unitTotals[r.Definition.Unit]; !ok {
			unitOrder = append(unitOrder, r.Definition.Unit)
		}
		unitTotals[r.Definition.Unit] += float64(r.Recommended)
	}

	best := -1.0
	for _, unit := range unitOrder {
		if unitTotals[unit] > best {
			best = unitTotals[unit]
			result.PrimaryUnit = unit
		}
	}

	return result
}

// aggregateWeighted averages per-definition completion ratios for
// mixed-unit categories: each enabled definition counts as one needed
// "item", fulfilled proportionally and capped at 1.
func aggregateWeighted(results []DefinitionResult) *dto.ShortageCalculationResult {
	result := &dto.ShortageCalculationResult{
		Shortages: shortageList(results),
	}

	for _, r := range enabledResults(results) {
		result.TotalNeeded++
		if r.MarkedAsEnough || r.Recommended == 0 {
			result.TotalActual++
			continue
		}
		result.TotalActual += math.Min(float64(r.Actual)/float64(r.Recommended), 1)
	}

	return result
}

// shortageList builds the per-definition shortage entries: enabled
// definitions with a positive shortfall and no sufficiency override,
// sorted by missing quantity descending.
func shortageList(results []DefinitionResult) []dto.CategoryShortage {
	var shortages []dto.CategoryShortage
	for _, r := range enabledResults(results) {
		if r.MarkedAsEnough {
			continue
		}
		missing := r.Recommended - r.Actual
		if missing <= 0 {
			continue
		}
		shortages = append(shortages, dto.CategoryShortage{
			ItemID:   r.Definition.ID,
			ItemName: r.Definition.Name,
			Actual:   r.Actual,
			Needed:   r.Recommended,
			Unit:     r.Definition.Unit,
			Missing:  missing,
		})
	}

	sort.SliceStable(shortages, func(i, j int) bool {
		return shortages[i].Missing > shortages[j].Missing
	})
	return shortages
}

package shortage

import (
	"github.com/shopspring/decimal"

	"github.com/prepware/stockpile/pkg/application/dto"
	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/domain/entities"
)

// Canonical ids the water strategy special-cases.
const (
	CategoryWaterBeverages entities.CategoryID = "water-beverages"
	BottledWaterType       entities.ItemTypeID = "bottled-water"
)

// WaterStrategy handles the water/beverages category. The bottled-water
// definition's baseline is replaced by the configured daily drinking-water
// requirement, and the preparation water demanded by the food inventory is
// added on top of its requirement.
type WaterStrategy struct {
	base         *DefaultStrategy
	category     entities.CategoryID
	bottledWater entities.ItemTypeID
}

// NewWaterStrategy creates the water strategy for the canonical category
// and bottled-water definition ids.
func NewWaterStrategy() *WaterStrategy {
	return &WaterStrategy{
		base:         NewDefaultStrategy(),
		category:     CategoryWaterBeverages,
		bottledWater: BottledWaterType,
	}
}

// Verify interface compliance
var _ Strategy = (*WaterStrategy)(nil)

func (s *WaterStrategy) ID() string { return "water" }

func (s *WaterStrategy) CanHandle(category entities.CategoryID) bool {
	return category == s.category
}

// RecommendedQuantity runs the standard pipeline, except for bottled
// water: its base quantity becomes the daily drinking-water requirement
// before scaling, and the ceiled preparation-water total is added after.
func (s *WaterStrategy) RecommendedQuantity(def entities.RecommendedItemDefinition, ctx *Context) entities.Quantity {
	if def.ID != s.bottledWater {
		return s.base.RecommendedQuantity(def, ctx)
	}

	base := entities.Quantity(ctx.Options.DailyWaterLitersPerPerson)
	recommended := calc.RecommendedQuantityWithBase(def, base, ctx.Household, ctx.PeopleMultiplier, ctx.Options)
	if !ctx.Household.Enabled {
		return recommended
	}

	prep := PreparationWater(ctx)
	if prep.IsPositive() {
		recommended += entities.Quantity(prep.Ceil().InexactFloat64())
	}
	return recommended
}

func (s *WaterStrategy) ActualQuantity(matching []entities.InventoryItem, def entities.RecommendedItemDefinition, ctx *Context) ActualQuantity {
	return s.base.ActualQuantity(matching, def, ctx)
}

// AggregateTotals delegates to the default single-unit aggregation and
// attaches the water breakdown. Preparation water is reported without
// ceiling for precise display.
func (s *WaterStrategy) AggregateTotals(results []DefinitionResult, ctx *Context) *dto.ShortageCalculationResult {
	result := aggregateSingleUnit(results)

	var drinking float64
	if ctx.Household.Enabled {
		drinking = ctx.Options.DailyWaterLitersPerPerson * ctx.PeopleMultiplier * float64(ctx.Household.SupplyDurationDays)
	}

	result.Water = &dto.WaterBreakdown{
		DrinkingWaterLiters:    drinking,
		PreparationWaterLiters: PreparationWater(ctx).InexactFloat64(),
	}
	return result
}

func (s *WaterStrategy) HasEnoughInventory(result *dto.ShortageCalculationResult) bool {
	return s.base.HasEnoughInventory(result)
}

// PreparationWater sums the water required to prepare every inventory item
// with a nonzero water-per-unit rate, across the whole inventory. The sum
// stays decimal so repeated fractional rates do not drift.
func PreparationWater(ctx *Context) decimal.Decimal {
	defsByID := make(map[entities.ItemTypeID]entities.RecommendedItemDefinition, len(ctx.AllDefinitions))
	for _, def := range ctx.AllDefinitions {
		defsByID[def.ID] = def
	}

	total := decimal.Zero
	for _, item := range ctx.AllItems {
		def := defsByID[item.ItemType]
		total = total.Add(calc.ItemWaterLiters(item, def))
	}
	return total
}

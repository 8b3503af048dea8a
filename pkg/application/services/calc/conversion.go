package calc

import (
	"github.com/shopspring/decimal"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

// Mass units an item can be stored in. Everything else counts as a
// discrete unit.
const (
	UnitKilogram = "kg"
	UnitGram     = "g"
)

// IsMassUnit reports whether the unit measures mass rather than discrete
// pieces.
func IsMassUnit(unit string) bool {
	return unit == UnitKilogram || unit == UnitGram
}

// DiscreteUnits converts an item quantity to the definition's discrete
// unit count. Items stored by mass are converted through the definition's
// per-unit weight; items already stored in discrete units pass through.
// A missing per-unit weight degrades to the raw quantity.
//
// The division runs on decimals so that quantities like 0.3 kg at 150 g
// per unit come out as exactly 2 units.
func DiscreteUnits(quantity entities.Quantity, unit string, weightGramsPerUnit float64) entities.Quantity {
	if !IsMassUnit(unit) || weightGramsPerUnit <= 0 {
		return quantity
	}

	grams := decimal.NewFromFloat(float64(quantity))
	if unit == UnitKilogram {
		grams = grams.Mul(decimal.NewFromInt(1000))
	}
	units := grams.Div(decimal.NewFromFloat(weightGramsPerUnit))
	return entities.Quantity(units.InexactFloat64())
}

// ItemCalories computes one item's calorie contribution against a
// definition. The item's own per-unit rate wins over the definition's;
// a per-unit rate on a mass-stored item is applied to the converted unit
// count. With no per-unit rate, the definition's per-100g rate applies to
// mass-stored items. No usable rate means zero contribution.
func ItemCalories(item entities.InventoryItem, def entities.RecommendedItemDefinition) float64 {
	rate := def.CaloriesPerUnit
	if item.CaloriesPerUnit != nil {
		rate = *item.CaloriesPerUnit
	}

	if rate > 0 {
		units := DiscreteUnits(item.Quantity, item.Unit, def.WeightGramsPerUnit)
		return decimal.NewFromFloat(float64(units)).
			Mul(decimal.NewFromFloat(rate)).
			InexactFloat64()
	}

	if def.CaloriesPer100g > 0 && IsMassUnit(item.Unit) {
		grams := decimal.NewFromFloat(float64(item.Quantity))
		if item.Unit == UnitKilogram {
			grams = grams.Mul(decimal.NewFromInt(1000))
		}
		return grams.Div(decimal.NewFromInt(100)).
			Mul(decimal.NewFromFloat(def.CaloriesPer100g)).
			InexactFloat64()
	}

	return 0
}

// ItemWaterLiters computes the preparation water one item requires. The
// item's own per-unit rate wins over the definition's. The result keeps
// decimal precision for exact display sums.
func ItemWaterLiters(item entities.InventoryItem, def entities.RecommendedItemDefinition) decimal.Decimal {
	rate := def.RequiresWaterLiters
	if item.WaterLitersPerUnit != nil {
		rate = *item.WaterLitersPerUnit
	}
	if rate <= 0 {
		return decimal.Zero
	}

	units := DiscreteUnits(item.Quantity, item.Unit, def.WeightGramsPerUnit)
	return decimal.NewFromFloat(float64(units)).Mul(decimal.NewFromFloat(rate))
}

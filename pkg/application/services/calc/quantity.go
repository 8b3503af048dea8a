package calc

import (
	"math"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

// RecommendedQuantity applies a definition's scaling flags to the
// household and returns the integer-ceiled requirement. A disabled
// household (Enabled false) always yields 0: inventory-only mode.
func RecommendedQuantity(def entities.RecommendedItemDefinition, household entities.HouseholdConfig, peopleMultiplier float64, opts Options) entities.Quantity {
	return RecommendedQuantityWithBase(def, def.BaseQuantity, household, peopleMultiplier, opts)
}

// RecommendedQuantityWithBase runs the scaling pipeline with a substituted
// base quantity. Strategies use this to override a definition's baseline
// (the water strategy replaces bottled water's base with the daily
// drinking-water requirement).
func RecommendedQuantityWithBase(def entities.RecommendedItemDefinition, base entities.Quantity, household entities.HouseholdConfig, peopleMultiplier float64, opts Options) entities.Quantity {
	if !household.Enabled {
		return 0
	}

	qty := float64(base)
	if def.ScaleWithPeople {
		qty *= peopleMultiplier
	}
	if def.ScaleWithPets {
		qty *= float64(household.Pets) * opts.PetMultiplier
	}
	if def.ScaleWithDays {
		qty *= float64(household.SupplyDurationDays)
	}

	if qty <= 0 {
		return 0
	}
	return entities.Quantity(math.Ceil(qty))
}

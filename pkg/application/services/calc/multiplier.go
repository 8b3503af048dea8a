package calc

import "github.com/prepware/stockpile/pkg/domain/entities"

// PeopleMultiplier computes the household scaling factor for definitions
// that scale with people. Negative member counts are a caller
// precondition and are not validated here.
func PeopleMultiplier(household entities.HouseholdConfig, opts Options) float64 {
	return float64(household.Adults)*opts.AdultMultiplier +
		float64(household.Children)*opts.ChildMultiplier
}

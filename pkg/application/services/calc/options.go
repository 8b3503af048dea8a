// Package calc contains the leaf calculators of the supply engine:
// household scaling, item matching, recommended-quantity computation,
// unit conversion, expiration status and missing-quantity aggregation.
// All functions are pure; callers supply snapshots and a clock value.
package calc

// Options carries the tunable constants of the engine. They come from
// configuration, never from call sites.
type Options struct {
	// AdultMultiplier weights one adult in the people multiplier.
	AdultMultiplier float64
	// ChildMultiplier weights one child in the people multiplier.
	ChildMultiplier float64
	// PetMultiplier weights one pet for pet-scaled definitions.
	PetMultiplier float64

	// DailyCaloriesPerPerson is the calorie requirement per person-day.
	DailyCaloriesPerPerson float64
	// DailyWaterLitersPerPerson is the drinking-water requirement per
	// person-day.
	DailyWaterLitersPerPerson float64

	// ExpiringSoonDays is the warning window before an expiration date.
	ExpiringSoonDays int
	// LowQuantityWarningRatio marks an item as warning below
	// recommended*ratio.
	LowQuantityWarningRatio float64

	// Percentage status cut points: below Critical => critical, below
	// Warning => warning, else ok.
	PercentageCriticalBelow float64
	PercentageWarningBelow  float64

	// Score status cut points for the dashboard score.
	ScoreCriticalBelow float64
	ScoreWarningBelow  float64
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		AdultMultiplier:           1.0,
		ChildMultiplier:           0.75,
		PetMultiplier:             1.0,
		DailyCaloriesPerPerson:    2000,
		DailyWaterLitersPerPerson: 3,
		ExpiringSoonDays:          30,
		LowQuantityWarningRatio:   0.5,
		PercentageCriticalBelow:   30,
		PercentageWarningBelow:    70,
		ScoreCriticalBelow:        50,
		ScoreWarningBelow:         80,
	}
}

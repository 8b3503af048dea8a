package dto

import "github.com/prepware/stockpile/pkg/domain/entities"

// CategoryShortage is one definition's unfulfilled requirement within a
// category result.
type CategoryShortage struct {
	ItemID   entities.ItemTypeID `json:"item_id"`
	ItemName string              `json:"item_name"`
	Actual   entities.Quantity   `json:"actual"`
	Needed   entities.Quantity   `json:"needed"`
	Unit     string              `json:"unit"`
	// Missing is max(0, Needed-Actual); never negative.
	Missing entities.Quantity `json:"missing"`
}

// CalorieTotals is the food category's calorie accounting.
type CalorieTotals struct {
	NeededCalories  float64 `json:"needed_calories"`
	ActualCalories  float64 `json:"actual_calories"`
	MissingCalories float64 `json:"missing_calories"`
}

// WaterBreakdown splits the water category's requirement into drinking
// water and food-preparation water. PreparationWaterLiters is reported
// without ceiling so the display can show the exact amount.
type WaterBreakdown struct {
	DrinkingWaterLiters    float64 `json:"drinking_water_liters"`
	PreparationWaterLiters float64 `json:"preparation_water_liters"`
}

// ShortageCalculationResult is the aggregate outcome of one category
// calculation. It is derived and ephemeral; callers own the snapshot it
// was computed from.
type ShortageCalculationResult struct {
	// Shortages is sorted by Missing, descending.
	Shortages   []CategoryShortage `json:"shortages"`
	TotalActual float64            `json:"total_actual"`
	TotalNeeded float64            `json:"total_needed"`
	// PrimaryUnit is empty when the category's definitions do not share a
	// single unit; the caller then renders "N of M items".
	PrimaryUnit string          `json:"primary_unit,omitempty"`
	Calories    *CalorieTotals  `json:"calories,omitempty"`
	Water       *WaterBreakdown `json:"water,omitempty"`
}

// CategoryReport couples a category's calculation result with its derived
// display values.
type CategoryReport struct {
	CategoryID entities.CategoryID        `json:"category_id"`
	StrategyID string                     `json:"strategy_id"`
	Result     *ShortageCalculationResult `json:"result"`
	// Percentage is the category's fulfillment in [0,100].
	Percentage float64              `json:"percentage"`
	Status     entities.StatusLevel `json:"status"`
	HasEnough  bool                 `json:"has_enough"`
}

// Summary is the dashboard view across all categories.
type Summary struct {
	Categories []CategoryReport `json:"categories"`
	// Score is the mean of the category percentages, in [0,100].
	Score  float64              `json:"score"`
	Status entities.StatusLevel `json:"status"`
}

package entities

import "fmt"

// RecommendedItemDefinition is a catalog entry describing a supply type's
// baseline need and how it scales with the household. The catalog is loaded
// once and read-only during calculation.
type RecommendedItemDefinition struct {
	ID           ItemTypeID
	Name         string
	Category     CategoryID
	BaseQuantity Quantity
	Unit         string

	ScaleWithPeople bool
	ScaleWithDays   bool
	ScaleWithPets   bool

	// Category-specific optional fields. Zero means not applicable.
	CaloriesPerUnit     float64
	CaloriesPer100g     float64
	WeightGramsPerUnit  float64
	RequiresWaterLiters float64
}

// NewRecommendedItemDefinition creates a validated catalog entry.
func NewRecommendedItemDefinition(id ItemTypeID, name string, category CategoryID, baseQuantity Quantity, unit string) (*RecommendedItemDefinition, error) {
	if id == "" {
		return nil, fmt.Errorf("definition id cannot be empty")
	}
	if id == CustomItemType {
		return nil, fmt.Errorf("definition id %q is reserved", CustomItemType)
	}
	if name == "" {
		return nil, fmt.Errorf("definition name cannot be empty")
	}
	if category == "" {
		return nil, fmt.Errorf("definition category cannot be empty")
	}
	if baseQuantity <= 0 {
		return nil, fmt.Errorf("base quantity must be positive, got %v", baseQuantity)
	}

	return &RecommendedItemDefinition{
		ID:           id,
		Name:         name,
		Category:     category,
		BaseQuantity: baseQuantity,
		Unit:         unit,
	}, nil
}

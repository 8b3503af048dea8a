// Package shortage implements the per-category shortage calculation: a
// capability contract dispatched by a predicate registry, with one
// strategy per category family (default, food, water, item-type-count).
package shortage

import (
	"time"

	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/domain/entities"
)

// Context carries one consistent snapshot of everything a strategy needs.
// It is assembled per calculation and never mutated by strategies.
type Context struct {
	CategoryID entities.CategoryID

	// AllItems is the full inventory snapshot; CategoryItems the subset
	// belonging to CategoryID.
	AllItems      []entities.InventoryItem
	CategoryItems []entities.InventoryItem

	// Definitions are the catalog entries of the category.
	// AllDefinitions is the full catalog; the water strategy needs it to
	// resolve food items' preparation-water rates.
	Definitions    []entities.RecommendedItemDefinition
	AllDefinitions []entities.RecommendedItemDefinition

	Household entities.HouseholdConfig
	// Disabled holds definition ids the user switched off. A disabled
	// definition carries no requirement.
	Disabled map[entities.ItemTypeID]bool

	Options          calc.Options
	PeopleMultiplier float64

	// Now anchors all expiration arithmetic for the calculation.
	Now time.Time
}

// IsDisabled reports whether a definition has been switched off.
func (c *Context) IsDisabled(id entities.ItemTypeID) bool {
	return c.Disabled[id]
}

// ActualQuantity is a strategy's measurement of the inventory matching one
// definition. Calories is only populated by calorie-aware strategies.
type ActualQuantity struct {
	Quantity entities.Quantity
	Calories float64
}

// DefinitionResult is the per-definition outcome a strategy aggregates
// over: the requirement, what the inventory holds against it, and the
// user overrides affecting it.
type DefinitionResult struct {
	Definition  entities.RecommendedItemDefinition
	Recommended entities.Quantity
	Actual      entities.Quantity
	Calories    float64
	// MarkedAsEnough is true when any matching item carries the user's
	// sufficiency override; it suppresses the whole type's shortage.
	MarkedAsEnough bool
	// Disabled definitions keep their informational measurements but
	// contribute no requirement.
	Disabled bool
}

package shortage

import (
	"time"

	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/domain/entities"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.Local)

// testContext builds a calculation context for one category from the full
// catalog and item set.
func testContext(category entities.CategoryID, household entities.HouseholdConfig, defs []entities.RecommendedItemDefinition, items []entities.InventoryItem) *Context {
	opts := calc.DefaultOptions()

	var categoryItems []entities.InventoryItem
	for _, item := range items {
		if item.CategoryID == category {
			categoryItems = append(categoryItems, item)
		}
	}

	var categoryDefs []entities.RecommendedItemDefinition
	for _, def := range defs {
		if def.Category == category {
			categoryDefs = append(categoryDefs, def)
		}
	}

	return &Context{
		CategoryID:       category,
		AllItems:         items,
		CategoryItems:    categoryItems,
		Definitions:      categoryDefs,
		AllDefinitions:   defs,
		Household:        household,
		Disabled:         map[entities.ItemTypeID]bool{},
		Options:          opts,
		PeopleMultiplier: calc.PeopleMultiplier(household, opts),
		Now:              testNow,
	}
}

func oneAdultHousehold(days int) entities.HouseholdConfig {
	return entities.HouseholdConfig{Adults: 1, SupplyDurationDays: days, Enabled: true}
}

func def(id entities.ItemTypeID, category entities.CategoryID, base entities.Quantity, unit string) entities.RecommendedItemDefinition {
	return entities.RecommendedItemDefinition{
		ID:              id,
		Name:            string(id),
		Category:        category,
		BaseQuantity:    base,
		Unit:            unit,
		ScaleWithPeople: true,
		ScaleWithDays:   true,
	}
}

func item(id string, itemType entities.ItemTypeID, category entities.CategoryID, quantity entities.Quantity, unit string) entities.InventoryItem {
	return entities.InventoryItem{
		ID:           id,
		Name:         id,
		ItemType:     itemType,
		CategoryID:   category,
		Quantity:     quantity,
		Unit:         unit,
		NeverExpires: true,
	}
}

// Package testing provides shared fixture builders for engine tests: a
// realistic emergency-supply catalog, a household, and inventory loaded
// into the in-memory repositories.
package testing

import (
	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/infrastructure/repositories/memory"
)

// mustCreateDefinition is a helper for tests - panics on validation error
func mustCreateDefinition(
	id entities.ItemTypeID,
	name string,
	category entities.CategoryID,
	baseQuantity entities.Quantity,
	unit string,
	scaleWithPeople, scaleWithDays bool,
) *entities.RecommendedItemDefinition {
	def, err := entities.NewRecommendedItemDefinition(id, name, category, baseQuantity, unit)
	if err != nil {
		panic(err)
	}
	def.ScaleWithPeople = scaleWithPeople
	def.ScaleWithDays = scaleWithDays
	return def
}

// mustCreateItem is a helper for tests - panics on validation error
func mustCreateItem(
	id, name string,
	itemType entities.ItemTypeID,
	category entities.CategoryID,
	quantity entities.Quantity,
	unit string,
) *entities.InventoryItem {
	item, err := entities.NewInventoryItem(id, name, itemType, category, quantity, unit)
	if err != nil {
		panic(err)
	}
	item.NeverExpires = true
	return item
}

// BuildPreparednessTestData builds the standard test scenario: a household
// of two adults and one child stocking up for three days, with a catalog
// spanning all four strategy families and a partially filled pantry.
func BuildPreparednessTestData() (*memory.InventoryRepository, *memory.HouseholdRepository, *memory.CatalogRepository) {
	household := entities.HouseholdConfig{
		Adults:             2,
		Children:           1,
		SupplyDurationDays: 3,
		Enabled:            true,
	}

	rice := mustCreateDefinition("rice", "Rice", "food", 0.3, "kg", true, true)
	rice.CaloriesPer100g = 360
	rice.RequiresWaterLiters = 0.5

	cannedBeans := mustCreateDefinition("canned-beans", "Canned Beans", "food", 1, "can", true, true)
	cannedBeans.CaloriesPerUnit = 350
	cannedBeans.WeightGramsPerUnit = 400

	bottledWater := mustCreateDefinition("bottled-water", "Bottled Water", "water-beverages", 2, "liter", true, true)

	flashlight := mustCreateDefinition("flashlight", "Flashlight", "lighting", 1, "piece", true, false)
	candles := mustCreateDefinition("candles", "Candles", "lighting", 2, "piece", true, false)

	radio := mustCreateDefinition("radio", "Battery Radio", "communication", 1, "piece", false, false)
	whistle := mustCreateDefinition("whistle", "Signal Whistle", "communication", 1, "piece", true, false)

	catalogRepo := memory.NewCatalogRepository([]entities.RecommendedItemDefinition{
		*rice, *cannedBeans, *bottledWater, *flashlight, *candles, *radio, *whistle,
	})

	items := []entities.InventoryItem{
		*mustCreateItem("inv-rice", "Rice", "rice", "food", 1, "kg"),
		*mustCreateItem("inv-beans", "Canned Beans", "canned-beans", "food", 4, "can"),
		*mustCreateItem("inv-water", "Bottled Water", "bottled-water", "water-beverages", 10, "liter"),
		*mustCreateItem("inv-flashlight", "Flashlight", "flashlight", "lighting", 1, "piece"),
		*mustCreateItem("inv-radio", "Battery Radio", "radio", "communication", 1, "piece"),
	}

	inventoryRepo := memory.NewInventoryRepository()
	inventoryRepo.Load(items)

	return inventoryRepo, memory.NewHouseholdRepository(household), catalogRepo
}

// BuildMinimalTestData creates a one-definition world for basic tests.
func BuildMinimalTestData() (*memory.InventoryRepository, *memory.HouseholdRepository, *memory.CatalogRepository) {
	household := entities.HouseholdConfig{
		Adults:             1,
		SupplyDurationDays: 3,
		Enabled:            true,
	}

	flashlight := mustCreateDefinition("flashlight", "Flashlight", "lighting", 1, "piece", true, false)
	catalogRepo := memory.NewCatalogRepository([]entities.RecommendedItemDefinition{*flashlight})

	inventoryRepo := memory.NewInventoryRepository()

	return inventoryRepo, memory.NewHouseholdRepository(household), catalogRepo
}

package main

import (
	"fmt"
	"time"

	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/application/services/plan"
	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/infrastructure/repositories/memory"
)

func main() {
	// Create repositories
	inventoryRepo := memory.NewInventoryRepository()
	catalogRepo := setupCatalog()
	householdRepo := memory.NewHouseholdRepository(entities.HouseholdConfig{
		Adults:             2,
		Children:           1,
		SupplyDurationDays: 7,
		Enabled:            true,
	})

	// Stock the pantry
	setupInventory(inventoryRepo)

	// Create the calculation service with default tunables
	service := plan.NewService(calc.DefaultOptions())

	fmt.Println("🏠 Checking emergency supplies for 2 adults + 1 child, 7 days...")
	fmt.Println()

	summary, err := service.CalculateAll(inventoryRepo, householdRepo, catalogRepo)
	if err != nil {
		fmt.Printf("❌ Calculation failed: %v\n", err)
		return
	}

	// Display results
	fmt.Println("📊 Readiness by category:")
	for _, report := range summary.Categories {
		fmt.Printf("  %-18s %5.1f%%  %s", report.CategoryID, report.Percentage, report.Status)
		if report.HasEnough {
			fmt.Print("  ✓")
		}
		fmt.Println()

		result := report.Result
		if result.Calories != nil {
			fmt.Printf("    calories: %.0f of %.0f kcal\n",
				result.Calories.ActualCalories, result.Calories.NeededCalories)
		}
		if result.Water != nil {
			fmt.Printf("    water: %.1f L drinking + %.2f L preparation\n",
				result.Water.DrinkingWaterLiters, result.Water.PreparationWaterLiters)
		}
		for _, shortage := range result.Shortages {
			fmt.Printf("    ⚠️  %s: missing %.1f %s\n",
				shortage.ItemName, float64(shortage.Missing), shortage.Unit)
		}
	}
	fmt.Println()
	fmt.Printf("Overall preparedness: %.0f%% (%s)\n", summary.Score, summary.Status)
	fmt.Println()

	// The user decides the single flashlight is plenty for this household.
	fmt.Println("👍 Marking the flashlight as enough...")
	if err := inventoryRepo.SetMarkedAsEnough("flashlight-1", true); err != nil {
		fmt.Printf("❌ Update failed: %v\n", err)
		return
	}

	report, err := service.CalculateCategory("lighting", inventoryRepo, householdRepo, catalogRepo)
	if err != nil {
		fmt.Printf("❌ Calculation failed: %v\n", err)
		return
	}
	fmt.Printf("Lighting shortages now: %d\n", len(report.Result.Shortages))
	fmt.Println()

	fmt.Println("✅ Supply check complete!")
}

func setupCatalog() *memory.CatalogRepository {
	rice := entities.RecommendedItemDefinition{
		ID: "rice", Name: "Rice", Category: "food",
		BaseQuantity: 0.3, Unit: "kg",
		ScaleWithPeople: true, ScaleWithDays: true,
		CaloriesPer100g: 360, RequiresWaterLiters: 0.5,
	}
	cannedSoup := entities.RecommendedItemDefinition{
		ID: "canned-soup", Name: "Canned Soup", Category: "food",
		BaseQuantity: 1, Unit: "can",
		ScaleWithPeople: true, ScaleWithDays: true,
		CaloriesPerUnit: 300, WeightGramsPerUnit: 400,
	}
	bottledWater := entities.RecommendedItemDefinition{
		ID: "bottled-water", Name: "Bottled Water", Category: "water-beverages",
		BaseQuantity: 2, Unit: "liter",
		ScaleWithPeople: true, ScaleWithDays: true,
	}
	flashlight := entities.RecommendedItemDefinition{
		ID: "flashlight", Name: "Flashlight", Category: "lighting",
		BaseQuantity: 1, Unit: "piece",
		ScaleWithPeople: true,
	}
	radio := entities.RecommendedItemDefinition{
		ID: "radio", Name: "Battery Radio", Category: "communication",
		BaseQuantity: 1, Unit: "piece",
	}

	return memory.NewCatalogRepository([]entities.RecommendedItemDefinition{
		rice, cannedSoup, bottledWater, flashlight, radio,
	})
}

func setupInventory(repo *memory.InventoryRepository) {
	nextSpring := time.Date(2027, 4, 1, 0, 0, 0, 0, time.Local)

	repo.Load([]entities.InventoryItem{
		{
			ID: "rice-1", Name: "Rice", ItemType: "rice", CategoryID: "food",
			Quantity: 2, Unit: "kg",
			ExpirationDate: &nextSpring,
		},
		{
			ID: "soup-1", Name: "Canned Soup", ItemType: "canned-soup", CategoryID: "food",
			Quantity: 6, Unit: "can",
			NeverExpires: true,
		},
		{
			ID: "water-1", Name: "Bottled Water", ItemType: "bottled-water", CategoryID: "water-beverages",
			Quantity: 24, Unit: "liter",
			NeverExpires: true,
		},
		{
			ID: "flashlight-1", Name: "Flashlight", ItemType: "flashlight", CategoryID: "lighting",
			Quantity: 1, Unit: "piece",
			NeverExpires: true,
		},
	})
}

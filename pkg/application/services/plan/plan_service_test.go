package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/application/services/shortage"
	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/infrastructure/repositories/memory"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.Local)

type fixture struct {
	service   *Service
	inventory *memory.InventoryRepository
	household *memory.HouseholdRepository
	catalog   *memory.CatalogRepository
}

// newFixture builds a small four-category world: food (calorie strategy),
// water-beverages, lighting (default strategy) and communication (count
// strategy), for one adult over three days.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	rice := entities.RecommendedItemDefinition{
		ID: "rice", Name: "Rice", Category: shortage.CategoryFood,
		BaseQuantity: 1, Unit: "kg",
		ScaleWithPeople: true, ScaleWithDays: true,
		CaloriesPer100g: 360, RequiresWaterLiters: 0.5,
	}
	bottledWater := entities.RecommendedItemDefinition{
		ID: shortage.BottledWaterType, Name: "Bottled Water", Category: shortage.CategoryWaterBeverages,
		BaseQuantity: 2, Unit: "liter",
		ScaleWithPeople: true, ScaleWithDays: true,
	}
	flashlight := entities.RecommendedItemDefinition{
		ID: "flashlight", Name: "Flashlight", Category: "lighting",
		BaseQuantity: 1, Unit: "piece",
		ScaleWithPeople: true, ScaleWithDays: true,
	}
	radio := entities.RecommendedItemDefinition{
		ID: "radio", Name: "Radio", Category: shortage.CategoryCommunication,
		BaseQuantity: 1, Unit: "piece",
		ScaleWithPeople: true, ScaleWithDays: true,
	}

	service := NewService(calc.DefaultOptions())
	service.SetClock(func() time.Time { return testNow })

	return &fixture{
		service:   service,
		inventory: memory.NewInventoryRepository(),
		household: memory.NewHouseholdRepository(entities.HouseholdConfig{Adults: 1, SupplyDurationDays: 3, Enabled: true}),
		catalog:   memory.NewCatalogRepository([]entities.RecommendedItemDefinition{rice, bottledWater, flashlight, radio}),
	}
}

func (f *fixture) load(items ...entities.InventoryItem) {
	f.inventory.Load(items)
}

func invItem(id string, itemType entities.ItemTypeID, category entities.CategoryID, quantity entities.Quantity, unit string) entities.InventoryItem {
	return entities.InventoryItem{
		ID: id, Name: id, ItemType: itemType, CategoryID: category,
		Quantity: quantity, Unit: unit, NeverExpires: true,
	}
}

func TestService_CalculateCategory(t *testing.T) {
	f := newFixture(t)
	f.load(
		invItem("r1", "rice", shortage.CategoryFood, 1, "kg"),
	)

	report, err := f.service.CalculateCategory(shortage.CategoryFood, f.inventory, f.household, f.catalog)
	require.NoError(t, err)

	assert.Equal(t, "food", report.StrategyID)
	// 3600 kcal of rice against 6000 needed.
	assert.InDelta(t, 60, report.Percentage, 1e-9)
	assert.Equal(t, entities.StatusWarning, report.Status)
	assert.False(t, report.HasEnough)
}

func TestService_CalculateAll(t *testing.T) {
	f := newFixture(t)
	f.load(
		// Food: 3600 of 6000 kcal => 60%.
		invItem("r1", "rice", shortage.CategoryFood, 1, "kg"),
		// Water: 5 of 10 L (9 drinking + ceil(0.5) preparation) => 50%.
		invItem("w1", shortage.BottledWaterType, shortage.CategoryWaterBeverages, 5, "liter"),
		// Lighting: 3 of 3 => 100%. Communication: 0 of 1 types => 0%.
		invItem("f1", "flashlight", "lighting", 3, "piece"),
	)

	summary, err := f.service.CalculateAll(f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	require.Len(t, summary.Categories, 4)

	byCategory := make(map[entities.CategoryID]float64)
	for _, c := range summary.Categories {
		byCategory[c.CategoryID] = c.Percentage
	}
	assert.InDelta(t, 60, byCategory[shortage.CategoryFood], 1e-9)
	assert.InDelta(t, 50, byCategory[shortage.CategoryWaterBeverages], 1e-9)
	assert.InDelta(t, 100, byCategory["lighting"], 1e-9)
	assert.InDelta(t, 0, byCategory[shortage.CategoryCommunication], 1e-9)

	// Mean of the category percentages.
	assert.InDelta(t, 52.5, summary.Score, 1e-9)
	assert.Equal(t, entities.StatusWarning, summary.Status)
}

func TestService_CalculateAll_EmptyInventory(t *testing.T) {
	f := newFixture(t)

	summary, err := f.service.CalculateAll(f.inventory, f.household, f.catalog)
	require.NoError(t, err)

	assert.Zero(t, summary.Score)
	assert.Equal(t, entities.StatusCritical, summary.Status)
	for _, c := range summary.Categories {
		assert.False(t, c.HasEnough, "category %s", c.CategoryID)
	}
}

func TestService_ItemMissingQuantity(t *testing.T) {
	f := newFixture(t)
	flashlight := invItem("f1", "flashlight", "lighting", 1, "piece")
	f.load(flashlight)

	missing, err := f.service.ItemMissingQuantity(flashlight, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	assert.Equal(t, entities.Quantity(2), missing)
}

func TestService_ItemMissingQuantity_LenientNameMatch(t *testing.T) {
	f := newFixture(t)
	// The type does not resolve, but the display name normalizes to the
	// catalog id.
	renamed := invItem("f1", "flashlight-led", "lighting", 1, "piece")
	renamed.Name = " Flash Light "
	renamed.ItemType = "flashlight-old"
	f.load(renamed)

	missing, err := f.service.ItemMissingQuantity(renamed, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	// "flash light" does not normalize to "flashlight"; no definition, no
	// requirement.
	assert.Equal(t, entities.Quantity(0), missing)

	renamed.Name = "Flashlight"
	missing, err = f.service.ItemMissingQuantity(renamed, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	assert.Equal(t, entities.Quantity(2), missing)
}

func TestService_ItemMissingQuantity_CustomItemHasNoRequirement(t *testing.T) {
	f := newFixture(t)
	custom := invItem("c1", entities.CustomItemType, "lighting", 1, "piece")
	custom.Name = "Flashlight"
	f.load(custom)

	missing, err := f.service.ItemMissingQuantity(custom, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	assert.Equal(t, entities.Quantity(0), missing)
}

func TestService_ItemTotalMissingQuantity(t *testing.T) {
	f := newFixture(t)
	a := invItem("f1", "flashlight", "lighting", 1, "piece")
	b := invItem("f2", "flashlight", "lighting", 1, "piece")
	f.load(a, b)

	// Both items report the aggregate shortfall: 3 needed - 2 held.
	for _, item := range []entities.InventoryItem{a, b} {
		missing, err := f.service.ItemTotalMissingQuantity(item, f.inventory, f.household, f.catalog)
		require.NoError(t, err)
		assert.Equal(t, entities.Quantity(1), missing)
	}
}

func TestService_ItemStatus_ExpirationWins(t *testing.T) {
	f := newFixture(t)
	expired := invItem("f1", "flashlight", "lighting", 3, "piece")
	expired.NeverExpires = false
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	expired.ExpirationDate = &date
	f.load(expired)

	status, err := f.service.ItemStatus(expired, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCritical, status)
}

func TestService_DisabledDefinitionRemovesItemRequirement(t *testing.T) {
	f := newFixture(t)
	flashlight := invItem("f1", "flashlight", "lighting", 1, "piece")
	f.load(flashlight)

	// With the definition active, one of three recommended is a warning.
	status, err := f.service.ItemStatus(flashlight, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusWarning, status)

	require.NoError(t, f.catalog.SetDefinitionDisabled("flashlight", true))

	missing, err := f.service.ItemMissingQuantity(flashlight, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	assert.Equal(t, entities.Quantity(0), missing)

	status, err = f.service.ItemStatus(flashlight, f.inventory, f.household, f.catalog)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusOK, status)
}

func TestService_CustomRegistry(t *testing.T) {
	registry, err := shortage.NewRegistry(shortage.NewDefaultStrategy())
	require.NoError(t, err)

	f := newFixture(t)
	f.service = NewServiceWithRegistry(registry, calc.DefaultOptions())
	f.service.SetClock(func() time.Time { return testNow })
	f.load(invItem("r1", "rice", shortage.CategoryFood, 1, "kg"))

	report, err := f.service.CalculateCategory(shortage.CategoryFood, f.inventory, f.household, f.catalog)
	require.NoError(t, err)

	// With only the default strategy registered, food is plain quantities.
	assert.Equal(t, "default", report.StrategyID)
	assert.Nil(t, report.Result.Calories)
}

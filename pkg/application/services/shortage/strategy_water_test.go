package shortage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

func waterTestCatalog() []entities.RecommendedItemDefinition {
	bottled := def(BottledWaterType, CategoryWaterBeverages, 2, "liter")
	juice := def("juice", CategoryWaterBeverages, 2, "liter")
	rice := def("rice", CategoryFood, 1, "kg")
	rice.RequiresWaterLiters = 0.5
	return []entities.RecommendedItemDefinition{bottled, juice, rice}
}

func TestWaterStrategy_BottledWaterBaseIsSubstituted(t *testing.T) {
	// No food in stock: the bottled-water requirement is drinking water
	// alone. The definition's own base of 2 is replaced by 3 L/person/day:
	// ceil(3 * 1 * 3) = 9.
	ctx := testContext(CategoryWaterBeverages, oneAdultHousehold(3), waterTestCatalog(), nil)
	strategy := NewWaterStrategy()

	bottled := ctx.Definitions[0]
	require.Equal(t, BottledWaterType, bottled.ID)
	assert.Equal(t, entities.Quantity(9), strategy.RecommendedQuantity(bottled, ctx))

	// Other beverages keep their own base: ceil(2 * 1 * 3) = 6.
	juice := ctx.Definitions[1]
	assert.Equal(t, entities.Quantity(6), strategy.RecommendedQuantity(juice, ctx))
}

func TestWaterStrategy_PreparationWaterAddsToBottledWater(t *testing.T) {
	items := []entities.InventoryItem{
		item("r1", "rice", CategoryFood, 3, "kg"),
	}

	ctx := testContext(CategoryWaterBeverages, oneAdultHousehold(3), waterTestCatalog(), items)
	strategy := NewWaterStrategy()

	// 3 kg rice at 0.5 L/kg needs 1.5 L, ceiled to 2 on top of the 9 L
	// drinking requirement.
	bottled := ctx.Definitions[0]
	assert.Equal(t, entities.Quantity(11), strategy.RecommendedQuantity(bottled, ctx))
}

func TestWaterStrategy_Breakdown(t *testing.T) {
	items := []entities.InventoryItem{
		item("r1", "rice", CategoryFood, 3, "kg"),
		item("w1", BottledWaterType, CategoryWaterBeverages, 4, "liter"),
	}

	ctx := testContext(CategoryWaterBeverages, oneAdultHousehold(3), waterTestCatalog(), items)
	result, strategy := DefaultRegistry().Calculate(ctx)

	assert.Equal(t, "water", strategy.ID())
	require.NotNil(t, result.Water)
	assert.InDelta(t, 9, result.Water.DrinkingWaterLiters, 1e-9)
	// The breakdown reports preparation water unceiled.
	assert.InDelta(t, 1.5, result.Water.PreparationWaterLiters, 1e-9)
	assert.Equal(t, "liter", result.PrimaryUnit)
}

func TestWaterStrategy_DisabledHouseholdNeedsNoWater(t *testing.T) {
	items := []entities.InventoryItem{
		item("r1", "rice", CategoryFood, 3, "kg"),
	}

	household := oneAdultHousehold(3)
	household.Enabled = false

	ctx := testContext(CategoryWaterBeverages, household, waterTestCatalog(), items)
	strategy := NewWaterStrategy()

	// Recommendations collapse to zero; preparation water is not tacked
	// onto a non-requirement.
	bottled := ctx.Definitions[0]
	assert.Equal(t, entities.Quantity(0), strategy.RecommendedQuantity(bottled, ctx))

	result, _ := DefaultRegistry().Calculate(ctx)
	require.NotNil(t, result.Water)
	assert.Zero(t, result.Water.DrinkingWaterLiters)
	// The informational breakdown still shows what cooking would consume.
	assert.InDelta(t, 1.5, result.Water.PreparationWaterLiters, 1e-9)
}

func TestPreparationWater_SumsAcrossWholeInventory(t *testing.T) {
	catalog := waterTestCatalog()
	items := []entities.InventoryItem{
		item("r1", "rice", CategoryFood, 2, "kg"),
		item("r2", "rice", CategoryFood, 1, "kg"),
		item("w1", BottledWaterType, CategoryWaterBeverages, 4, "liter"),
	}

	ctx := testContext(CategoryWaterBeverages, oneAdultHousehold(3), catalog, items)
	assert.InDelta(t, 1.5, PreparationWater(ctx).InexactFloat64(), 1e-9)
}

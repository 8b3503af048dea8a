package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

func def(id entities.ItemTypeID, name string) entities.RecommendedItemDefinition {
	return entities.RecommendedItemDefinition{
		ID: id, Name: name, Category: "food", BaseQuantity: 1, Unit: "piece",
	}
}

func TestCatalogValidator_ValidCatalog(t *testing.T) {
	validator := NewCatalogValidator()

	result := validator.Validate([]entities.RecommendedItemDefinition{
		def("rice", "Rice"),
		def("bottled-water", "Bottled Water"),
		def("flashlight", "Flashlight"),
	})

	assert.True(t, result.IsValid())
	assert.Empty(t, result.Errors)
}

func TestCatalogValidator_DuplicateIDs(t *testing.T) {
	validator := NewCatalogValidator()

	result := validator.Validate([]entities.RecommendedItemDefinition{
		def("rice", "Rice"),
		def("rice", "White Rice"),
	})

	assert.False(t, result.IsValid())
	assert.Equal(t, []entities.ItemTypeID{"rice"}, result.DuplicateIDs)
}

func TestCatalogValidator_ReservedID(t *testing.T) {
	validator := NewCatalogValidator()

	result := validator.Validate([]entities.RecommendedItemDefinition{
		def(entities.CustomItemType, "Custom"),
	})

	assert.False(t, result.IsValid())
	assert.Equal(t, []entities.ItemTypeID{entities.CustomItemType}, result.ReservedIDs)
}

func TestCatalogValidator_AmbiguousName(t *testing.T) {
	validator := NewCatalogValidator()

	// "Bottled Water" normalizes to "bottled-water", which is a different
	// definition's id: lenient matching would resolve the wrong way.
	result := validator.Validate([]entities.RecommendedItemDefinition{
		def("bottled-water", "Bottled Water"),
		def("water-canister", "Bottled Water"),
	})

	assert.False(t, result.IsValid())
	assert.Equal(t, []entities.ItemTypeID{"water-canister"}, result.AmbiguousNames)
}

func TestCatalogValidator_EmptyCatalog(t *testing.T) {
	validator := NewCatalogValidator()

	result := validator.Validate(nil)

	assert.True(t, result.IsValid())
}

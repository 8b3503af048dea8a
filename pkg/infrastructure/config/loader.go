// Package config loads the engine's tunable options and snapshot files
// (household, inventory, catalog) from YAML.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/domain/services"
)

const dateLayout = "2006-01-02"

// optionsFile mirrors calc.Options with pointer fields so absent keys keep
// their defaults.
type optionsFile struct {
	AdultMultiplier           *float64 `yaml:"adult_multiplier"`
	ChildMultiplier           *float64 `yaml:"child_multiplier"`
	PetMultiplier             *float64 `yaml:"pet_multiplier"`
	DailyCaloriesPerPerson    *float64 `yaml:"daily_calories_per_person"`
	DailyWaterLitersPerPerson *float64 `yaml:"daily_water_liters_per_person"`
	ExpiringSoonDays          *int     `yaml:"expiring_soon_days"`
	LowQuantityWarningRatio   *float64 `yaml:"low_quantity_warning_ratio"`
	PercentageCriticalBelow   *float64 `yaml:"percentage_critical_below"`
	PercentageWarningBelow    *float64 `yaml:"percentage_warning_below"`
	ScoreCriticalBelow        *float64 `yaml:"score_critical_below"`
	ScoreWarningBelow         *float64 `yaml:"score_warning_below"`
}

// LoadOptions reads tunable constants from a YAML file. Keys missing from
// the file keep their engine defaults.
func LoadOptions(path string) (calc.Options, error) {
	opts := calc.DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return opts, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	applyFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	applyFloat(&opts.AdultMultiplier, file.AdultMultiplier)
	applyFloat(&opts.ChildMultiplier, file.ChildMultiplier)
	applyFloat(&opts.PetMultiplier, file.PetMultiplier)
	applyFloat(&opts.DailyCaloriesPerPerson, file.DailyCaloriesPerPerson)
	applyFloat(&opts.DailyWaterLitersPerPerson, file.DailyWaterLitersPerPerson)
	applyFloat(&opts.LowQuantityWarningRatio, file.LowQuantityWarningRatio)
	applyFloat(&opts.PercentageCriticalBelow, file.PercentageCriticalBelow)
	applyFloat(&opts.PercentageWarningBelow, file.PercentageWarningBelow)
	applyFloat(&opts.ScoreCriticalBelow, file.ScoreCriticalBelow)
	applyFloat(&opts.ScoreWarningBelow, file.ScoreWarningBelow)
	if file.ExpiringSoonDays != nil {
		opts.ExpiringSoonDays = *file.ExpiringSoonDays
	}

	return opts, nil
}

type householdFile struct {
	Adults             int  `yaml:"adults"`
	Children           int  `yaml:"children"`
	Pets               int  `yaml:"pets"`
	SupplyDurationDays int  `yaml:"supply_duration_days"`
	UseFreezer         bool `yaml:"use_freezer"`
	Enabled            bool `yaml:"enabled"`
}

type definitionFile struct {
	ID                  string  `yaml:"id"`
	Name                string  `yaml:"name"`
	Category            string  `yaml:"category"`
	BaseQuantity        float64 `yaml:"base_quantity"`
	Unit                string  `yaml:"unit"`
	ScaleWithPeople     bool    `yaml:"scale_with_people"`
	ScaleWithDays       bool    `yaml:"scale_with_days"`
	ScaleWithPets       bool    `yaml:"scale_with_pets"`
	CaloriesPerUnit     float64 `yaml:"calories_per_unit"`
	CaloriesPer100g     float64 `yaml:"calories_per_100g"`
	WeightGramsPerUnit  float64 `yaml:"weight_grams_per_unit"`
	RequiresWaterLiters float64 `yaml:"requires_water_liters"`
}

type itemFile struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	ItemType           string   `yaml:"item_type"`
	Category           string   `yaml:"category"`
	Quantity           float64  `yaml:"quantity"`
	Unit               string   `yaml:"unit"`
	NeverExpires       bool     `yaml:"never_expires"`
	ExpirationDate     string   `yaml:"expiration_date"`
	MarkedAsEnough     bool     `yaml:"marked_as_enough"`
	CaloriesPerUnit    *float64 `yaml:"calories_per_unit"`
	WaterLitersPerUnit *float64 `yaml:"water_liters_per_unit"`
}

type snapshotFile struct {
	Household householdFile    `yaml:"household"`
	Catalog   []definitionFile `yaml:"catalog"`
	Disabled  []string         `yaml:"disabled"`
	Items     []itemFile       `yaml:"items"`
}

// Snapshot is one consistent input state for the engine, as loaded from a
// snapshot file.
type Snapshot struct {
	Household   entities.HouseholdConfig
	Definitions []entities.RecommendedItemDefinition
	Disabled    []entities.ItemTypeID
	Items       []entities.InventoryItem
}

// LoadSnapshot reads a household/catalog/inventory snapshot from a YAML
// file. Expiration dates use the 2006-01-02 layout and are interpreted in
// local time, matching the engine's local-midnight arithmetic.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}

	household, err := entities.NewHouseholdConfig(
		file.Household.Adults,
		file.Household.Children,
		file.Household.Pets,
		file.Household.SupplyDurationDays,
		file.Household.UseFreezer,
		file.Household.Enabled,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid household: %w", err)
	}

	snapshot := &Snapshot{Household: *household}

	for i, d := range file.Catalog {
		def, err := entities.NewRecommendedItemDefinition(
			entities.ItemTypeID(d.ID),
			d.Name,
			entities.CategoryID(d.Category),
			entities.Quantity(d.BaseQuantity),
			d.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		def.ScaleWithPeople = d.ScaleWithPeople
		def.ScaleWithDays = d.ScaleWithDays
		def.ScaleWithPets = d.ScaleWithPets
		def.CaloriesPerUnit = d.CaloriesPerUnit
		def.CaloriesPer100g = d.CaloriesPer100g
		def.WeightGramsPerUnit = d.WeightGramsPerUnit
		def.RequiresWaterLiters = d.RequiresWaterLiters
		snapshot.Definitions = append(snapshot.Definitions, *def)
	}

	if validation := services.NewCatalogValidator().Validate(snapshot.Definitions); !validation.IsValid() {
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(validation.Errors, "; "))
	}

	for _, id := range file.Disabled {
		snapshot.Disabled = append(snapshot.Disabled, entities.ItemTypeID(id))
	}

	for i, f := range file.Items {
		item, err := entities.NewInventoryItem(
			f.ID,
			f.Name,
			entities.ItemTypeID(f.ItemType),
			entities.CategoryID(f.Category),
			entities.Quantity(f.Quantity),
			f.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("inventory item %d: %w", i+1, err)
		}
		item.NeverExpires = f.NeverExpires
		item.MarkedAsEnough = f.MarkedAsEnough
		item.CaloriesPerUnit = f.CaloriesPerUnit
		item.WaterLitersPerUnit = f.WaterLitersPerUnit

		if f.ExpirationDate != "" {
			date, err := time.ParseInLocation(dateLayout, f.ExpirationDate, time.Local)
			if err != nil {
				return nil, fmt.Errorf("inventory item %d: invalid expiration date %q: %w", i+1, f.ExpirationDate, err)
			}
			item.ExpirationDate = &date
		}

		snapshot.Items = append(snapshot.Items, *item)
	}

	return snapshot, nil
}

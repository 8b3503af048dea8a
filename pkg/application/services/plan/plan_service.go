// Package plan exposes the supply engine's entry points: category
// reports, the dashboard summary, and per-item shortfall lookups for the
// presentation layer. It owns no state beyond its registry and options;
// every calculation runs over one consistent snapshot pulled from the
// caller's repositories.
package plan

import (
	"fmt"
	"math"
	"time"

	"github.com/prepware/stockpile/pkg/application/dto"
	"github.com/prepware/stockpile/pkg/application/services/calc"
	"github.com/prepware/stockpile/pkg/application/services/shortage"
	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/domain/repositories"
)

// Service drives the shortage calculation across categories.
type Service struct {
	registry *shortage.Registry
	opts     calc.Options
	now      func() time.Time
}

// NewService creates a plan service with the standard strategy registry.
func NewService(opts calc.Options) *Service {
	return NewServiceWithRegistry(shortage.DefaultRegistry(), opts)
}

// NewServiceWithRegistry creates a plan service with a caller-supplied
// registry, so tests and extensions can swap strategies without shared
// state.
func NewServiceWithRegistry(registry *shortage.Registry, opts calc.Options) *Service {
	return &Service{
		registry: registry,
		opts:     opts,
		now:      time.Now,
	}
}

// SetClock overrides the time source for expiration arithmetic.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// CalculateCategory computes one category's shortage result and derived
// display values from the current store snapshots.
func (s *Service) CalculateCategory(
	category entities.CategoryID,
	inventoryRepo repositories.InventoryRepository,
	householdRepo repositories.HouseholdRepository,
	catalogRepo repositories.CatalogRepository,
) (*dto.CategoryReport, error) {
	ctx, err := s.buildContext(category, inventoryRepo, householdRepo, catalogRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to build context for category %s: %w", category, err)
	}

	result, strategy := s.registry.Calculate(ctx)

	percentage := fulfillmentPercentage(result)
	return &dto.CategoryReport{
		CategoryID: category,
		StrategyID: strategy.ID(),
		Result:     result,
		Percentage: percentage,
		Status:     calc.StatusFromPercentage(percentage, s.opts),
		HasEnough:  strategy.HasEnoughInventory(result),
	}, nil
}

// CalculateAll computes every catalog category and the overall
// preparedness score (mean of the category percentages).
func (s *Service) CalculateAll(
	inventoryRepo repositories.InventoryRepository,
	householdRepo repositories.HouseholdRepository,
	catalogRepo repositories.CatalogRepository,
) (*dto.Summary, error) {
	categories, err := catalogRepo.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	summary := &dto.Summary{
		Categories: make([]dto.CategoryReport, 0, len(categories)),
	}

	var total float64
	for _, category := range categories {
		report, err := s.CalculateCategory(category, inventoryRepo, householdRepo, catalogRepo)
		if err != nil {
			return nil, err
		}
		summary.Categories = append(summary.Categories, *report)
		total += report.Percentage
	}

	if len(summary.Categories) > 0 {
		summary.Score = total / float64(len(summary.Categories))
	}
	summary.Status = calc.StatusFromScore(summary.Score, s.opts)
	return summary, nil
}

// ItemStatus derives one item's display status, resolving its definition
// leniently (by type, or by normalized name for renamed items).
func (s *Service) ItemStatus(
	item entities.InventoryItem,
	inventoryRepo repositories.InventoryRepository,
	householdRepo repositories.HouseholdRepository,
	catalogRepo repositories.CatalogRepository,
) (entities.StatusLevel, error) {
	recommended, err := s.recommendedForItem(item, inventoryRepo, householdRepo, catalogRepo)
	if err != nil {
		return entities.StatusCritical, err
	}
	return calc.ItemStatus(item.Quantity, recommended, item.ExpirationDate, item.NeverExpires, item.MarkedAsEnough, s.now(), s.opts), nil
}

// ItemMissingQuantity computes one item's own shortfall.
func (s *Service) ItemMissingQuantity(
	item entities.InventoryItem,
	inventoryRepo repositories.InventoryRepository,
	householdRepo repositories.HouseholdRepository,
	catalogRepo repositories.CatalogRepository,
) (entities.Quantity, error) {
	recommended, err := s.recommendedForItem(item, inventoryRepo, householdRepo, catalogRepo)
	if err != nil {
		return 0, err
	}
	return calc.MissingQuantity(item, recommended, s.now(), s.opts), nil
}

// ItemTotalMissingQuantity computes the shortfall aggregated across every
// item sharing the item's type; each of them reports this same value.
func (s *Service) ItemTotalMissingQuantity(
	item entities.InventoryItem,
	inventoryRepo repositories.InventoryRepository,
	householdRepo repositories.HouseholdRepository,
	catalogRepo repositories.CatalogRepository,
) (entities.Quantity, error) {
	recommended, err := s.recommendedForItem(item, inventoryRepo, householdRepo, catalogRepo)
	if err != nil {
		return 0, err
	}
	items, err := inventoryRepo.Items()
	if err != nil {
		return 0, fmt.Errorf("failed to read inventory: %w", err)
	}
	return calc.TotalMissingQuantity(item, items, recommended, s.now(), s.opts), nil
}

// buildContext assembles one consistent calculation snapshot.
func (s *Service) buildContext(
	category entities.CategoryID,
	inventoryRepo repositories.InventoryRepository,
	householdRepo repositories.HouseholdRepository,
	catalogRepo repositories.CatalogRepository,
) (*shortage.Context, error) {
	items, err := inventoryRepo.Items()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	household, err := householdRepo.Household()
	if err != nil {
		return nil, fmt.Errorf("failed to read household: %w", err)
	}
	allDefs, err := catalogRepo.Definitions()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	disabled, err := catalogRepo.DisabledDefinitionIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to read disabled definitions: %w", err)
	}

	var categoryItems []entities.InventoryItem
	for _, item := range items {
		if item.CategoryID == category {
			categoryItems = append(categoryItems, item)
		}
	}

	var categoryDefs []entities.RecommendedItemDefinition
	for _, def := range allDefs {
		if def.Category == category {
			categoryDefs = append(categoryDefs, def)
		}
	}

	return &shortage.Context{
		CategoryID:       category,
		AllItems:         items,
		CategoryItems:    categoryItems,
		Definitions:      categoryDefs,
		AllDefinitions:   allDefs,
		Household:        household,
		Disabled:         disabled,
		Options:          s.opts,
		PeopleMultiplier: calc.PeopleMultiplier(household, s.opts),
		Now:              s.now(),
	}, nil
}

// recommendedForItem resolves the item's definition leniently and computes
// its recommended quantity through the category's strategy. Items without
// a definition (custom items) have no requirement.
func (s *Service) recommendedForItem(
	item entities.InventoryItem,
	inventoryRepo repositories.InventoryRepository,
	householdRepo repositories.HouseholdRepository,
	catalogRepo repositories.CatalogRepository,
) (entities.Quantity, error) {
	allDefs, err := catalogRepo.Definitions()
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog: %w", err)
	}

	var def *entities.RecommendedItemDefinition
	for i := range allDefs {
		if calc.MatchesLenient(item, allDefs[i]) {
			def = &allDefs[i]
			break
		}
	}
	if def == nil {
		return 0, nil
	}

	ctx, err := s.buildContext(def.Category, inventoryRepo, householdRepo, catalogRepo)
	if err != nil {
		return 0, err
	}
	if ctx.IsDisabled(def.ID) {
		return 0, nil
	}
	return s.registry.Select(def.Category).RecommendedQuantity(*def, ctx), nil
}

// fulfillmentPercentage derives a category's display percentage: the
// calorie balance when present, the quantity totals otherwise, clamped to
// [0,100]. A category without requirements reports 0.
func fulfillmentPercentage(result *dto.ShortageCalculationResult) float64 {
	var actual, needed float64
	if result.Calories != nil && result.Calories.NeededCalories > 0 {
		actual, needed = result.Calories.ActualCalories, result.Calories.NeededCalories
	} else {
		actual, needed = result.TotalActual, result.TotalNeeded
	}

	if needed <= 0 {
		return 0
	}
	return math.Min(actual/needed*100, 100)
}

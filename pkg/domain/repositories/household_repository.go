package repositories

import "github.com/prepware/stockpile/pkg/domain/entities"

// HouseholdRepository provides access to the household configuration.
// The engine reads it; only the settings surface writes it.
type HouseholdRepository interface {
	Household() (entities.HouseholdConfig, error)
	SetHousehold(config entities.HouseholdConfig) error
}

package entities

import "fmt"

// HouseholdConfig describes the household a supply plan is computed for.
// It is owned and mutated by the household store; the calculation engine
// only ever reads a snapshot of it.
type HouseholdConfig struct {
	Adults             int
	Children           int
	Pets               int
	SupplyDurationDays int
	UseFreezer         bool
	// Enabled false switches the engine into inventory-only mode: every
	// recommended quantity is 0 regardless of scaling flags.
	Enabled bool
}

// NewHouseholdConfig creates a validated HouseholdConfig.
func NewHouseholdConfig(adults, children, pets, supplyDurationDays int, useFreezer, enabled bool) (*HouseholdConfig, error) {
	if adults < 0 {
		return nil, fmt.Errorf("adults cannot be negative, got %d", adults)
	}
	if children < 0 {
		return nil, fmt.Errorf("children cannot be negative, got %d", children)
	}
	if pets < 0 {
		return nil, fmt.Errorf("pets cannot be negative, got %d", pets)
	}
	if supplyDurationDays < 0 {
		return nil, fmt.Errorf("supply duration cannot be negative, got %d days", supplyDurationDays)
	}

	return &HouseholdConfig{
		Adults:             adults,
		Children:           children,
		Pets:               pets,
		SupplyDurationDays: supplyDurationDays,
		UseFreezer:         useFreezer,
		Enabled:            enabled,
	}, nil
}

package memory

import (
	"sync"

	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/domain/repositories"
)

// HouseholdRepository provides in-memory household-configuration storage.
type HouseholdRepository struct {
	mu        sync.RWMutex
	household entities.HouseholdConfig
}

// NewHouseholdRepository creates a household repository with the given
// initial configuration.
func NewHouseholdRepository(household entities.HouseholdConfig) *HouseholdRepository {
	return &HouseholdRepository{household: household}
}

// Verify interface compliance
var _ repositories.HouseholdRepository = (*HouseholdRepository)(nil)

// Household returns the current configuration snapshot.
func (r *HouseholdRepository) Household() (entities.HouseholdConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.household, nil
}

// SetHousehold replaces the configuration.
func (r *HouseholdRepository) SetHousehold(config entities.HouseholdConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.household = config
	return nil
}

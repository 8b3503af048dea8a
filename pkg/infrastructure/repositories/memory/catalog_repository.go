package memory

import (
	"fmt"
	"sync"

	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/domain/repositories"
)

// CatalogRepository provides in-memory storage of the recommended-item
// catalog and the user's per-definition disable flags.
type CatalogRepository struct {
	mu          sync.RWMutex
	definitions []entities.RecommendedItemDefinition
	disabled    map[entities.ItemTypeID]bool
}

// NewCatalogRepository creates a catalog repository holding the given
// definitions.
func NewCatalogRepository(definitions []entities.RecommendedItemDefinition) *CatalogRepository {
	return &CatalogRepository{
		definitions: append([]entities.RecommendedItemDefinition(nil), definitions...),
		disabled:    make(map[entities.ItemTypeID]bool),
	}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// Definitions returns a snapshot of all catalog entries.
func (r *CatalogRepository) Definitions() ([]entities.RecommendedItemDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.RecommendedItemDefinition(nil), r.definitions...), nil
}

// DefinitionsByCategory returns the catalog entries of one category.
func (r *CatalogRepository) DefinitionsByCategory(category entities.CategoryID) ([]entities.RecommendedItemDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var defs []entities.RecommendedItemDefinition
	for _, def := range r.definitions {
		if def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// Definition returns a single catalog entry by id.
func (r *CatalogRepository) Definition(id entities.ItemTypeID) (*entities.RecommendedItemDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, def := range r.definitions {
		if def.ID == id {
			copied := def
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("definition not found: %s", id)
}

// Categories returns the distinct category ids in catalog order.
func (r *CatalogRepository) Categories() ([]entities.CategoryID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[entities.CategoryID]bool)
	var categories []entities.CategoryID
	for _, def := range r.definitions {
		if !seen[def.Category] {
			seen[def.Category] = true
			categories = append(categories, def.Category)
		}
	}
	return categories, nil
}

// DisabledDefinitionIDs returns a copy of the disabled-definition set.
func (r *CatalogRepository) DisabledDefinitionIDs() (map[entities.ItemTypeID]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	disabled := make(map[entities.ItemTypeID]bool, len(r.disabled))
	for id, d := range r.disabled {
		disabled[id] = d
	}
	return disabled, nil
}

// SetDefinitionDisabled flips a definition's disable flag.
func (r *CatalogRepository) SetDefinitionDisabled(id entities.ItemTypeID, disabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, def := range r.definitions {
		if def.ID == id {
			if disabled {
				r.disabled[id] = true
			} else {
				delete(r.disabled, id)
			}
			return nil
		}
	}
	return fmt.Errorf("definition not found: %s", id)
}

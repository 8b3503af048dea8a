package repositories

import "github.com/prepware/stockpile/pkg/domain/entities"

// CatalogRepository provides access to the static recommended-item catalog
// and to the user's per-definition disable flags.
type CatalogRepository interface {
	// Definitions returns all catalog entries.
	Definitions() ([]entities.RecommendedItemDefinition, error)
	// DefinitionsByCategory returns the catalog entries of one category.
	DefinitionsByCategory(category entities.CategoryID) ([]entities.RecommendedItemDefinition, error)
	// Definition returns a single catalog entry by id.
	Definition(id entities.ItemTypeID) (*entities.RecommendedItemDefinition, error)
	// Categories returns the distinct category ids present in the catalog.
	Categories() ([]entities.CategoryID, error)

	// DisabledDefinitionIDs returns the set of definitions the user has
	// switched off. Disabled definitions carry no active requirement.
	DisabledDefinitionIDs() (map[entities.ItemTypeID]bool, error)
	SetDefinitionDisabled(id entities.ItemTypeID, disabled bool) error
}

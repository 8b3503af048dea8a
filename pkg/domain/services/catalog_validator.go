package services

import (
	"fmt"
	"strings"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

// CatalogValidator provides validation for recommended-item catalog
// integrity. The catalog is loaded once and read-only afterwards, so a
// single validation pass at load time covers the whole lifetime.
type CatalogValidator struct{}

// NewCatalogValidator creates a new catalog validator.
func NewCatalogValidator() *CatalogValidator {
	return &CatalogValidator{}
}

// ValidationResult contains the results of catalog validation.
type ValidationResult struct {
	DuplicateIDs []entities.ItemTypeID
	ReservedIDs  []entities.ItemTypeID
	// AmbiguousNames lists definitions whose normalized display name
	// collides with a different definition's id. Such a catalog would make
	// lenient name matching resolve items to the wrong definition.
	AmbiguousNames []entities.ItemTypeID
	Errors         []string
}

// IsValid reports whether the catalog passed every check.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate performs the integrity checks on a full catalog.
func (v *CatalogValidator) Validate(definitions []entities.RecommendedItemDefinition) *ValidationResult {
	result := &ValidationResult{}

	seen := make(map[entities.ItemTypeID]bool, len(definitions))
	for _, def := range definitions {
		if def.ID == entities.CustomItemType {
			result.ReservedIDs = append(result.ReservedIDs, def.ID)
			continue
		}
		if seen[def.ID] {
			result.DuplicateIDs = append(result.DuplicateIDs, def.ID)
			continue
		}
		seen[def.ID] = true
	}

	for _, def := range definitions {
		normalized := entities.ItemTypeID(normalizeName(def.Name))
		if normalized != def.ID && seen[normalized] {
			result.AmbiguousNames = append(result.AmbiguousNames, def.ID)
		}
	}

	for _, id := range result.ReservedIDs {
		result.Errors = append(result.Errors, fmt.Sprintf("definition id %q is reserved for custom items", id))
	}
	for _, id := range result.DuplicateIDs {
		result.Errors = append(result.Errors, fmt.Sprintf("duplicate definition id: %s", id))
	}
	for _, id := range result.AmbiguousNames {
		result.Errors = append(result.Errors, fmt.Sprintf("definition %s has a name that resolves to another definition's id", id))
	}

	return result
}

// normalizeName mirrors the lenient matcher's name folding: lower case with
// spaces replaced by hyphens.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

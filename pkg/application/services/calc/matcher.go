package calc

import (
	"strings"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

// NormalizeItemName folds an item name into the catalog id form: lower
// case with spaces replaced by hyphens.
func NormalizeItemName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// MatchesStrict reports whether the item satisfies the definition by type.
// Custom items never match.
func MatchesStrict(item entities.InventoryItem, def entities.RecommendedItemDefinition) bool {
	if item.IsCustom() {
		return false
	}
	return item.ItemType == def.ID
}

// MatchesLenient reports whether the item satisfies the definition by type
// or by normalized name. Used for per-item lookups from the presentation
// layer ("mark as enough", individual shortfall display).
func MatchesLenient(item entities.InventoryItem, def entities.RecommendedItemDefinition) bool {
	if MatchesStrict(item, def) {
		return true
	}
	if item.IsCustom() {
		return false
	}
	return NormalizeItemName(item.Name) == string(def.ID)
}

// StrictMatches returns the items satisfying the definition by type.
func StrictMatches(items []entities.InventoryItem, def entities.RecommendedItemDefinition) []entities.InventoryItem {
	var matches []entities.InventoryItem
	for _, item := range items {
		if MatchesStrict(item, def) {
			matches = append(matches, item)
		}
	}
	return matches
}

// SameTypeMatches returns the items sharing the given item's type across
// the full item set. Custom items have no type peers.
func SameTypeMatches(item entities.InventoryItem, items []entities.InventoryItem) []entities.InventoryItem {
	if item.IsCustom() {
		return nil
	}
	var matches []entities.InventoryItem
	for _, candidate := range items {
		if !candidate.IsCustom() && candidate.ItemType == item.ItemType {
			matches = append(matches, candidate)
		}
	}
	return matches
}

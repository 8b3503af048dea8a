package entities

import (
	"fmt"
	"time"
)

// ItemTypeID identifies a recommended item definition. Inventory items
// carry the id of the definition they were created from, or CustomItemType
// for free-form items the catalog knows nothing about.
type ItemTypeID string

// CustomItemType is the sentinel item type for user-defined items. Custom
// items never participate in type-based matching.
const CustomItemType ItemTypeID = "custom"

// CategoryID identifies a supply category (e.g. "food", "water-beverages").
type CategoryID string

// Quantity represents an item quantity in the item's unit. Fractional
// values are valid for mass and volume units.
type Quantity float64

// InventoryItem is one entry of the household's inventory. The engine
// treats it as a read-only snapshot; only the inventory store mutates it.
type InventoryItem struct {
	ID         string
	Name       string
	ItemType   ItemTypeID
	CategoryID CategoryID
	Quantity   Quantity
	Unit       string

	NeverExpires   bool
	ExpirationDate *time.Time

	// MarkedAsEnough is a user override declaring the item sufficient
	// regardless of any computed shortfall.
	MarkedAsEnough bool

	// Per-item overrides of the definition's rates. Nil means the
	// definition's value applies.
	CaloriesPerUnit    *float64
	WaterLitersPerUnit *float64
}

// NewInventoryItem creates a validated InventoryItem.
func NewInventoryItem(id, name string, itemType ItemTypeID, categoryID CategoryID, quantity Quantity, unit string) (*InventoryItem, error) {
	if id == "" {
		return nil, fmt.Errorf("item id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if itemType == "" {
		return nil, fmt.Errorf("item type cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %v", quantity)
	}

	return &InventoryItem{
		ID:         id,
		Name:       name,
		ItemType:   itemType,
		CategoryID: categoryID,
		Quantity:   quantity,
		Unit:       unit,
	}, nil
}

// IsCustom reports whether the item is a free-form item outside the catalog.
func (i *InventoryItem) IsCustom() bool {
	return i.ItemType == CustomItemType
}

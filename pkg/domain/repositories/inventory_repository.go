package repositories

import "github.com/prepware/stockpile/pkg/domain/entities"

// InventoryRepository provides access to the household's inventory. The
// calculation engine only uses the snapshot accessors; the mutation
// operations belong to the presentation layer.
type InventoryRepository interface {
	// Items returns a snapshot of all inventory items.
	Items() ([]entities.InventoryItem, error)
	// ItemsByCategory returns a snapshot of the items in one category.
	ItemsByCategory(category entities.CategoryID) ([]entities.InventoryItem, error)
	// Item returns a single item by id.
	Item(id string) (*entities.InventoryItem, error)

	AddItem(item entities.InventoryItem) error
	UpdateItem(item entities.InventoryItem) error
	RemoveItem(id string) error
	// SetMarkedAsEnough flips the user's sufficiency override on an item.
	SetMarkedAsEnough(id string, enough bool) error
}

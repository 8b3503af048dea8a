// Package memory provides in-memory implementations of the domain
// repositories. They guard their state with RWMutexes and hand out copies,
// so a running calculation always observes one consistent snapshot.
package memory

import (
	"fmt"
	"sync"

	"github.com/prepware/stockpile/pkg/domain/entities"
	"github.com/prepware/stockpile/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory storage.
type InventoryRepository struct {
	mu    sync.RWMutex
	items []entities.InventoryItem
}

// NewInventoryRepository creates an empty in-memory inventory repository.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// Load replaces the repository contents with the given items.
func (r *InventoryRepository) Load(items []entities.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entities.InventoryItem(nil), items...)
}

// Items returns a snapshot of all inventory items.
func (r *InventoryRepository) Items() ([]entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.InventoryItem(nil), r.items...), nil
}

// ItemsByCategory returns a snapshot of the items in one category.
func (r *InventoryRepository) ItemsByCategory(category entities.CategoryID) ([]entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []entities.InventoryItem
	for _, item := range r.items {
		if item.CategoryID == category {
			items = append(items, item)
		}
	}
	return items, nil
}

// Item returns a single item by id.
func (r *InventoryRepository) Item(id string) (*entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			copied := item
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("item not found: %s", id)
}

// AddItem appends a new item. The id must be unused.
func (r *InventoryRepository) AddItem(item entities.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ID == item.ID {
			return fmt.Errorf("item already exists: %s", item.ID)
		}
	}
	r.items = append(r.items, item)
	return nil
}

// UpdateItem replaces an existing item by id.
func (r *InventoryRepository) UpdateItem(item entities.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("item not found: %s", item.ID)
}

// RemoveItem deletes an item by id.
func (r *InventoryRepository) RemoveItem(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("item not found: %s", id)
}

// SetMarkedAsEnough flips the sufficiency override on an item.
func (r *InventoryRepository) SetMarkedAsEnough(id string, enough bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].MarkedAsEnough = enough
			return nil
		}
	}
	return fmt.Errorf("item not found: %s", id)
}

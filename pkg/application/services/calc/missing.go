package calc

import (
	"time"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

// MissingQuantity computes one item's shortfall against its recommended
// quantity. Expiration takes precedence over quantity: an item that is
// expired or expiring soon never shows a quantity-based shortfall, the
// expiration warning carries that signal instead. A markedAsEnough item
// and a non-positive recommendation also short-circuit to 0.
func MissingQuantity(item entities.InventoryItem, recommended entities.Quantity, now time.Time, opts Options) entities.Quantity {
	if recommended <= 0 {
		return 0
	}
	if item.MarkedAsEnough {
		return 0
	}
	if IsExpired(item.ExpirationDate, item.NeverExpires, now) ||
		IsExpiringSoon(item.ExpirationDate, item.NeverExpires, now, opts) {
		return 0
	}
	if item.Quantity >= recommended {
		return 0
	}
	return recommended - item.Quantity
}

// TotalMissingQuantity computes the shortfall for an item's entire type
// across the full item set. Every item sharing the type reports the same
// aggregate value. Precedence over the summed quantities: any matching
// item marked as enough suppresses the shortfall, and any matching item
// that is expired or expiring soon does too. Items without type peers
// fall back to the single-item calculation.
func TotalMissingQuantity(item entities.InventoryItem, allItems []entities.InventoryItem, recommended entities.Quantity, now time.Time, opts Options) entities.Quantity {
	if recommended <= 0 {
		return 0
	}

	matches := SameTypeMatches(item, allItems)
	if len(matches) == 0 {
		return MissingQuantity(item, recommended, now, opts)
	}

	var total entities.Quantity
	for _, match := range matches {
		if match.MarkedAsEnough {
			return 0
		}
		if IsExpired(match.ExpirationDate, match.NeverExpires, now) ||
			IsExpiringSoon(match.ExpirationDate, match.NeverExpires, now, opts) {
			return 0
		}
		total += match.Quantity
	}

	if total >= recommended {
		return 0
	}
	return recommended - total
}

package calc

import (
	"math"
	"time"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

// DaysUntilExpiration returns the number of days from now until the
// expiration date, counted between local midnights so timezone offsets
// cannot shift the day boundary. The second return is false when the item
// never expires or carries no date. Expired items yield negative days.
func DaysUntilExpiration(expirationDate *time.Time, neverExpires bool, now time.Time) (int, bool) {
	if neverExpires || expirationDate == nil {
		return 0, false
	}

	exp := *expirationDate
	expMidnight := time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, now.Location())
	nowMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	diff := expMidnight.Sub(nowMidnight)
	return int(math.Ceil(diff.Hours() / 24)), true
}

// IsExpired reports whether the expiration date lies before today.
func IsExpired(expirationDate *time.Time, neverExpires bool, now time.Time) bool {
	days, ok := DaysUntilExpiration(expirationDate, neverExpires, now)
	return ok && days < 0
}

// IsExpiringSoon reports whether the expiration date falls within the
// warning window. Expired items are not "expiring soon".
func IsExpiringSoon(expirationDate *time.Time, neverExpires bool, now time.Time, opts Options) bool {
	days, ok := DaysUntilExpiration(expirationDate, neverExpires, now)
	return ok && days >= 0 && days <= opts.ExpiringSoonDays
}

// ItemStatus derives an item's display status. Expiration is checked
// first and takes precedence over every quantity rule: an expired item is
// critical even when its quantity exceeds the recommendation.
func ItemStatus(quantity, recommended entities.Quantity, expirationDate *time.Time, neverExpires, markedAsEnough bool, now time.Time, opts Options) entities.StatusLevel {
	if days, ok := DaysUntilExpiration(expirationDate, neverExpires, now); ok {
		if days < 0 {
			return entities.StatusCritical
		}
		if days <= opts.ExpiringSoonDays {
			return entities.StatusWarning
		}
	}

	if markedAsEnough {
		return entities.StatusOK
	}
	if quantity == 0 {
		return entities.StatusCritical
	}
	if quantity < entities.Quantity(float64(recommended)*opts.LowQuantityWarningRatio) {
		return entities.StatusWarning
	}
	return entities.StatusOK
}

// StatusFromPercentage buckets a category fulfillment percentage.
func StatusFromPercentage(percentage float64, opts Options) entities.StatusLevel {
	switch {
	case percentage < opts.PercentageCriticalBelow:
		return entities.StatusCritical
	case percentage < opts.PercentageWarningBelow:
		return entities.StatusWarning
	default:
		return entities.StatusOK
	}
}

// StatusFromScore buckets the dashboard preparedness score.
func StatusFromScore(score float64, opts Options) entities.StatusLevel {
	switch {
	case score < opts.ScoreCriticalBelow:
		return entities.StatusCritical
	case score < opts.ScoreWarningBelow:
		return entities.StatusWarning
	default:
		return entities.StatusOK
	}
}

package pricing

import (
	"errors"
	"fmt"

	"github.com/raasdandiya/checkout/internal/core/domain"
)

// Bulk pricing applies to single-day tickets only: once a selection reaches
// the threshold, every ticket drops to the flat rate regardless of tier.
const (
	BulkThreshold = 6
	BulkUnitPrice = 300
)

var basePrices = map[domain.DurationClass]map[domain.TierCode]int{
	domain.SingleDay: {
		domain.TierFemale: 399,
		domain.TierMale:   699,
		domain.TierCouple: 699,
		domain.TierKids:   99,
		domain.TierFamily: 1300,
	},
	domain.SeasonPass: {
		domain.TierFemale: 2499,
		domain.TierCouple: 3499,
		domain.TierFamily: 5999,
	},
}

var labels = map[domain.DurationClass]map[domain.TierCode]string{
	domain.SingleDay: {
		domain.TierFemale: "Female - ₹399",
		domain.TierMale:   "Male - ₹699",
		domain.TierCouple: "Couple - ₹699",
		domain.TierKids:   "Kids (6-12 yrs) - ₹99",
		domain.TierFamily: "Family (4 members) - ₹1300",
	},
	domain.SeasonPass: {
		domain.TierFemale: "Season Pass - Female (8 Days) - ₹2499",
		domain.TierCouple: "Season Pass - Couple (8 Days) - ₹3499",
		domain.TierFamily: "Season Pass - Family (4) (8 Days) - ₹5999",
	},
}

// Quote computes the price breakdown for a selection. It is pure: same
// inputs always yield the same quote.
func Quote(duration domain.DurationClass, tier domain.TierCode, quantity int) (domain.PriceQuote, error) {
	if quantity < 1 {
		return domain.PriceQuote{}, errors.New("quantity must be at least 1")
	}

	base, ok := basePrices[duration][tier]
	if !ok {
		return domain.PriceQuote{}, &domain.InvalidTierError{Duration: duration, Tier: tier}
	}

	if duration == domain.SingleDay && quantity >= BulkThreshold {
		return domain.PriceQuote{
			UnitPrice:           BulkUnitPrice,
			TotalAmount:         BulkUnitPrice * quantity,
			BulkDiscountApplied: true,
			Savings:             (base - BulkUnitPrice) * quantity,
			OriginalUnitPrice:   base,
		}, nil
	}

	return domain.PriceQuote{
		UnitPrice:   base,
		TotalAmount: base * quantity,
	}, nil
}

// Label returns the display label for a sellable (duration, tier) pair.
func Label(duration domain.DurationClass, tier domain.TierCode) string {
	return labels[duration][tier]
}

// DiscountHint tells a single-day buyer sitting just below the bulk
// threshold how many more tickets unlock the flat rate. It reports false
// when no hint should be shown.
func DiscountHint(duration domain.DurationClass, quantity int) (string, bool) {
	if duration != domain.SingleDay || quantity < 3 || quantity >= BulkThreshold {
		return "", false
	}

	missing := BulkThreshold - quantity

	return fmt.Sprintf("Add %d more tickets to unlock ₹%d/ticket", missing, BulkUnitPrice), true
}

package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raasdandiya/checkout/internal/core/domain"
	"github.com/raasdandiya/checkout/internal/core/pricing"
)

func TestQuote_SingleDayBasePrices(t *testing.T) {
	cases := []struct {
		tier domain.TierCode
		base int
	}{
		{domain.TierFemale, 399},
		{domain.TierMale, 699},
		{domain.TierCouple, 699},
		{domain.TierKids, 99},
		{domain.TierFamily, 1300},
	}

	for _, tc := range cases {
		for qty := 1; qty <= 5; qty++ {
			quote, err := pricing.Quote(domain.SingleDay, tc.tier, qty)

			require.NoError(t, err)
			assert.Equal(t, tc.base, quote.UnitPrice, "tier %s qty %d", tc.tier, qty)
			assert.Equal(t, tc.base*qty, quote.TotalAmount)
			assert.False(t, quote.BulkDiscountApplied)
			assert.Zero(t, quote.Savings)
			assert.Zero(t, quote.OriginalUnitPrice)
		}
	}
}

func TestQuote_BulkDiscountAtThreshold(t *testing.T) {
	cases := []struct {
		tier domain.TierCode
		base int
	}{
		{domain.TierFemale, 399},
		{domain.TierMale, 699},
		{domain.TierCouple, 699},
		{domain.TierKids, 99},
		{domain.TierFamily, 1300},
	}

	for _, tc := range cases {
		for _, qty := range []int{6, 7, 20} {
			quote, err := pricing.Quote(domain.SingleDay, tc.tier, qty)

			require.NoError(t, err)
			assert.True(t, quote.BulkDiscountApplied, "tier %s qty %d", tc.tier, qty)
			assert.Equal(t, 300, quote.UnitPrice)
			assert.Equal(t, 300*qty, quote.TotalAmount)
			assert.Equal(t, (tc.base-300)*qty, quote.Savings)
			assert.Equal(t, tc.base, quote.OriginalUnitPrice)
		}
	}
}

func TestQuote_JustBelowThresholdKeepsBasePrice(t *testing.T) {
	quote, err := pricing.Quote(domain.SingleDay, domain.TierFemale, 5)

	require.NoError(t, err)
	assert.False(t, quote.BulkDiscountApplied)
	assert.Equal(t, 399, quote.UnitPrice)
	assert.Equal(t, 1995, quote.TotalAmount)
}

func TestQuote_SeasonPassNeverDiscounts(t *testing.T) {
	cases := []struct {
		tier domain.TierCode
		base int
	}{
		{domain.TierFemale, 2499},
		{domain.TierCouple, 3499},
		{domain.TierFamily, 5999},
	}

	for _, tc := range cases {
		for _, qty := range []int{1, 6, 50} {
			quote, err := pricing.Quote(domain.SeasonPass, tc.tier, qty)

			require.NoError(t, err)
			assert.False(t, quote.BulkDiscountApplied, "tier %s qty %d", tc.tier, qty)
			assert.Equal(t, tc.base, quote.UnitPrice)
			assert.Equal(t, tc.base*qty, quote.TotalAmount)
			assert.Zero(t, quote.Savings)
		}
	}
}

func TestQuote_UndefinedPairsFail(t *testing.T) {
	for _, tier := range []domain.TierCode{domain.TierKids, domain.TierMale} {
		_, err := pricing.Quote(domain.SeasonPass, tier, 1)

		var tierErr *domain.InvalidTierError
		require.ErrorAs(t, err, &tierErr)
		assert.Equal(t, tier, tierErr.Tier)
	}

	_, err := pricing.Quote(domain.DurationClass("WEEKEND"), domain.TierFemale, 1)
	assert.Error(t, err)
}

func TestQuote_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := pricing.Quote(domain.SingleDay, domain.TierFemale, 0)
	assert.Error(t, err)

	_, err = pricing.Quote(domain.SingleDay, domain.TierFemale, -3)
	assert.Error(t, err)
}

func TestQuote_IsDeterministic(t *testing.T) {
	first, err := pricing.Quote(domain.SingleDay, domain.TierCouple, 6)
	require.NoError(t, err)

	second, err := pricing.Quote(domain.SingleDay, domain.TierCouple, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Female - ₹399", pricing.Label(domain.SingleDay, domain.TierFemale))
	assert.Equal(t, "Season Pass - Couple (8 Days) - ₹3499", pricing.Label(domain.SeasonPass, domain.TierCouple))
	assert.Empty(t, pricing.Label(domain.SeasonPass, domain.TierKids))
}

func TestDiscountHint(t *testing.T) {
	hint, ok := pricing.DiscountHint(domain.SingleDay, 4)
	require.True(t, ok)
	assert.Equal(t, "Add 2 more tickets to unlock ₹300/ticket", hint)

	_, ok = pricing.DiscountHint(domain.SingleDay, 2)
	assert.False(t, ok)

	_, ok = pricing.DiscountHint(domain.SingleDay, 6)
	assert.False(t, ok)

	_, ok = pricing.DiscountHint(domain.SeasonPass, 4)
	assert.False(t, ok)
}

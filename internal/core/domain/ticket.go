package domain

type DurationClass string

const (
	SingleDay  DurationClass = "SINGLE_DAY"
	SeasonPass DurationClass = "SEASON_PASS"
)

type TierCode string

const (
	TierFemale TierCode = "FEMALE"
	TierMale   TierCode = "MALE"
	TierCouple TierCode = "COUPLE"
	TierKids   TierCode = "KIDS"
	TierFamily TierCode = "FAMILY"
)

// TiersFor lists the tiers that may be sold for a duration class. The season
// pass is not offered for kids or male tickets.
func TiersFor(d DurationClass) []TierCode {
	switch d {
	case SingleDay:
		return []TierCode{TierFemale, TierMale, TierCouple, TierKids, TierFamily}
	case SeasonPass:
		return []TierCode{TierFemale, TierCouple, TierFamily}
	}

	return nil
}

func (d DurationClass) Allows(t TierCode) bool {
	for _, tier := range TiersFor(d) {
		if tier == t {
			return true
		}
	}

	return false
}

type TicketSelection struct {
	EventDate string
	Duration  DurationClass
	Tier      TierCode
	Quantity  int
}

type ContactInfo struct {
	FullName string
	Email    string
	Phone    string
}

// PriceQuote is derived from a selection and never stored on its own.
// OriginalUnitPrice is only set when the bulk discount applied.
type PriceQuote struct {
	UnitPrice           int
	TotalAmount         int
	BulkDiscountApplied bool
	Savings             int
	OriginalUnitPrice   int
}

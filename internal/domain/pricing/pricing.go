package pricing

import (
	"context"
	"errors"
	"time"

	"stellarstay/internal/domain/room"
	"stellarstay/internal/domain/shared/daterange"
	"stellarstay/internal/domain/shared/money"
)

var ErrRoomRequired = errors.New("pricing: room is required")

// Rate rules, all in minor units. The weekend surcharge is a 25% markup
// applied to the base nightly rate before the length-of-stay discount.
const (
	weekendSurchargeNum = 5
	weekendSurchargeDen = 4

	breakfastPerGuestNightCents = 500

	shortStayDiscountCents  = 400  // 4 to 6 nights
	mediumStayDiscountCents = 800  // 7 to 9 nights
	longStayDiscountCents   = 1200 // 10 nights and up
)

type QuoteInput struct {
	Room              *room.Room
	Range             daterange.DateRange
	Guests            int
	IncludesBreakfast bool
}

// Breakdown itemizes a computed stay price.
type Breakdown struct {
	Nights    int
	Lodging   money.Money
	Breakfast money.Money
	Total     money.Money
}

type Calculator interface {
	Quote(ctx context.Context, input QuoteInput) (Breakdown, error)
}

// RateCalculator prices a stay night by night. It is pure in-memory
// computation and never blocks. It does not guard against an empty range;
// callers validate date order upstream, and an empty range simply yields
// zero lodging charge.
type RateCalculator struct{}

func NewRateCalculator() *RateCalculator {
	return &RateCalculator{}
}

func (p *RateCalculator) Quote(ctx context.Context, input QuoteInput) (Breakdown, error) {
	if input.Room == nil {
		return Breakdown{}, ErrRoomRequired
	}
	currency := input.Room.BaseRate.Currency
	nights := input.Range.Nights()
	discount := nightlyDiscountCents(nights)

	lodging := money.Money{Amount: 0, Currency: currency}
	input.Range.EachDay(func(day time.Time) {
		rate := input.Room.BaseRate
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			rate = rate.MulRatio(weekendSurchargeNum, weekendSurchargeDen)
		}
		rate.Amount -= discount
		lodging.Amount += rate.Amount
	})

	breakfast := money.Money{Amount: 0, Currency: currency}
	if input.IncludesBreakfast {
		breakfast.Amount = int64(input.Guests) * int64(nights) * breakfastPerGuestNightCents
	}

	total, err := lodging.Add(breakfast)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{
		Nights:    nights,
		Lodging:   lodging,
		Breakfast: breakfast,
		Total:     total,
	}, nil
}

// nightlyDiscountCents is the flat per-night reduction determined solely by
// total stay length. It applies identically to every night of the stay.
func nightlyDiscountCents(totalDays int) int64 {
	switch {
	case totalDays >= 10:
		return longStayDiscountCents
	case totalDays >= 7:
		return mediumStayDiscountCents
	case totalDays >= 4:
		return shortStayDiscountCents
	default:
		return 0
	}
}

var _ Calculator = (*RateCalculator)(nil)

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 2024-06-10 is a Monday.
const (
	monday    = "2024-06-10"
	wednesday = "2024-06-12"
	friday    = "2024-06-14"
	saturday  = "2024-06-15"
	sunday    = "2024-06-16"
)

func TestQuoteDayTypeClassification(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		date    string
		dayType string
		base    float64
	}{
		{name: "monday is weekday", date: monday, dayType: DayTypeWeekday, base: 3499},
		{name: "wednesday is weekday", date: wednesday, dayType: DayTypeWeekday, base: 3499},
		{name: "friday bills as weekend", date: friday, dayType: DayTypeWeekend, base: 4499},
		{name: "saturday is weekend", date: saturday, dayType: DayTypeWeekend, base: 4499},
		{name: "sunday is weekend", date: sunday, dayType: DayTypeWeekend, base: 4499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := cfg.Quote(tt.date, 3, nil)
			assert.Equal(t, tt.dayType, quote.DayType)
			assert.Equal(t, tt.base, quote.Base)
		})
	}
}

func TestQuoteAtMinimumIsBaseOnly(t *testing.T) {
	cfg := DefaultConfig()

	quote := cfg.Quote(wednesday, 3, nil)
	assert.Equal(t, 3499.0, quote.Total)
	assert.Equal(t, int64(3499), quote.Amount())
}

func TestQuoteBelowMinimumStillBillsBase(t *testing.T) {
	// Pricing and validation are decoupled; rejecting short bookings is the
	// caller's job.
	cfg := DefaultConfig()

	quote := cfg.Quote(wednesday, 1, nil)
	assert.Equal(t, 3499.0, quote.Total)
}

func TestQuoteWeekendWithAdditionalHours(t *testing.T) {
	cfg := DefaultConfig()

	quote := cfg.Quote(saturday, 5, nil)
	assert.Equal(t, DayTypeWeekend, quote.DayType)
	assert.Equal(t, 4499+2*1299.0, quote.Total)
	assert.Equal(t, int64(7097), quote.Amount())
}

func TestQuoteAddOns(t *testing.T) {
	cfg := DefaultConfig()

	quote := cfg.Quote(saturday, 5, []string{"cleaning", "catering"})
	assert.Equal(t, 900.0, quote.AddOnTotal)
	assert.Equal(t, 7097+900.0, quote.Total)
}

func TestQuoteIgnoresUnknownAddOns(t *testing.T) {
	cfg := DefaultConfig()

	quote := cfg.Quote(wednesday, 3, []string{"helipad", "cleaning"})
	assert.Equal(t, 400.0, quote.AddOnTotal)
}

func TestQuoteWithoutDateIsZero(t *testing.T) {
	cfg := DefaultConfig()

	for _, date := range []string{"", "not-a-date", "2024-13-40"} {
		quote := cfg.Quote(date, 5, []string{"cleaning"})
		assert.Equal(t, Quote{}, quote)
	}
}

func TestQuoteFractionalHoursRoundAtPersistence(t *testing.T) {
	cfg := DefaultConfig()

	// 4.5h on a weekday: 3499 + 1.5*1000 = 4999 displayed, 4999 persisted
	quote := cfg.Quote(wednesday, 4.5, nil)
	assert.Equal(t, 4999.0, quote.Total)
	assert.Equal(t, int64(4999), quote.Amount())

	// 3.5h on a weekend: 4499 + 0.5*1299 = 5148.5 displayed, 5149 persisted
	quote = cfg.Quote(saturday, 3.5, nil)
	assert.Equal(t, 5148.5, quote.Total)
	assert.Equal(t, int64(5149), quote.Amount())
}

func TestFindAddOn(t *testing.T) {
	cfg := DefaultConfig()

	addOn, ok := cfg.FindAddOn("projector")
	assert.True(t, ok)
	assert.Equal(t, 250.0, addOn.Fee)

	_, ok = cfg.FindAddOn("helipad")
	assert.False(t, ok)
}

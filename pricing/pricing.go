// Package pricing computes booking quotes from day-of-week tiers and a fixed
// add-on catalog. The rules were previously duplicated across three call
// sites with drifting constants; everything now flows through one Config.
package pricing

import (
	"math"
	"time"
)

// Day types driving tier selection.
const (
	DayTypeWeekday = "Weekday"
	DayTypeWeekend = "Weekend"
)

// Tier is the (base, additional-per-hour) price pair for a day type. Base
// covers the first Config.MinHours hours.
type Tier struct {
	Base              float64 `yaml:"base"`
	AdditionalPerHour float64 `yaml:"additional_per_hour"`
}

// AddOn is a flat-fee extra; fees are not prorated by duration.
type AddOn struct {
	Key   string  `yaml:"key" json:"key"`
	Label string  `yaml:"label" json:"label"`
	Fee   float64 `yaml:"fee" json:"fee"`
}

// Config parameterizes the calculator.
type Config struct {
	MinHours float64 `yaml:"min_hours"`
	MaxHours float64 `yaml:"max_hours"`
	Currency string  `yaml:"currency"`
	Weekday  Tier    `yaml:"weekday"`
	Weekend  Tier    `yaml:"weekend"`
	AddOns   []AddOn `yaml:"add_ons"`
}

// DefaultConfig returns the venue's published rate card.
func DefaultConfig() Config {
	return Config{
		MinHours: 3,
		MaxHours: 24,
		Currency: "INR",
		Weekday:  Tier{Base: 3499, AdditionalPerHour: 1000},
		Weekend:  Tier{Base: 4499, AdditionalPerHour: 1299},
		AddOns: []AddOn{
			{Key: "cleaning", Label: "Deep Cleaning", Fee: 400},
			{Key: "projector", Label: "Extra Projector", Fee: 250},
			{Key: "sound", Label: "Sound Upgrade", Fee: 300},
			{Key: "catering", Label: "Catering Setup", Fee: 500},
		},
	}
}

// Quote is the derived price breakdown. It is recomputed on every input
// change and never stored; only the rounded Total is persisted on a booking.
type Quote struct {
	DayType           string  `json:"day_type"`
	Base              float64 `json:"base"`
	AdditionalPerHour float64 `json:"additional_per_hour"`
	AddOnTotal        float64 `json:"add_on_total"`
	Total             float64 `json:"total"`
}

// Amount is the integer currency value persisted on a booking.
func (q Quote) Amount() int64 {
	return int64(math.Round(q.Total))
}

// Quote prices a booking on the given ISO date ("2006-01-02") for the given
// duration and selected add-on keys. An empty or unparseable date yields a
// zero quote with an empty day type — "not enough input yet", not an error.
// Durations at or below MinHours price at the tier base; validation of the
// minimum is the caller's concern, not the calculator's. Unknown add-on keys
// are ignored.
func (c Config) Quote(date string, hours float64, addOnKeys []string) Quote {
	tier, dayType, ok := c.tierFor(date)
	if !ok {
		return Quote{}
	}

	total := tier.Base
	if hours > c.MinHours {
		total += (hours - c.MinHours) * tier.AdditionalPerHour
	}

	addOnTotal := c.addOnTotal(addOnKeys)

	return Quote{
		DayType:           dayType,
		Base:              tier.Base,
		AdditionalPerHour: tier.AdditionalPerHour,
		AddOnTotal:        addOnTotal,
		Total:             total + addOnTotal,
	}
}

// FindAddOn looks up a catalog entry by key.
func (c Config) FindAddOn(key string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.Key == key {
			return a, true
		}
	}
	return AddOn{}, false
}

func (c Config) tierFor(date string) (Tier, string, bool) {
	if date == "" {
		return Tier{}, "", false
	}

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Tier{}, "", false
	}

	// Monday through Thursday is the weekday tier; Friday, Saturday and
	// Sunday all bill at weekend rates.
	switch d.Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return c.Weekday, DayTypeWeekday, true
	default:
		return c.Weekend, DayTypeWeekend, true
	}
}

func (c Config) addOnTotal(keys []string) float64 {
	var total float64
	for _, key := range keys {
		if a, ok := c.FindAddOn(key); ok {
			total += a.Fee
		}
	}
	return total
}

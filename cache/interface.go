package cache

import (
	"time"

	"github.com/amberloft/venue-booking/scheduling"
)

// CacheRepository defines the interface for availability caching. The cached
// value is the per-date slot snapshot the conflict scan consumes; every write
// touching a date must invalidate that date.
type CacheRepository interface {
	// Day availability caching
	GetDaySlots(date string) ([]scheduling.Slot, error)
	SetDaySlots(date string, slots []scheduling.Slot, ttl time.Duration) error
	InvalidateDay(date string) error

	// Health check
	Ping() error
}

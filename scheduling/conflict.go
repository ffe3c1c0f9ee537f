package scheduling

// DefaultDurationHours is assumed for legacy rows that predate the duration
// column. The original data set was written with 2-hour slots.
const DefaultDurationHours = 2

// StatusCancelled marks bookings that no longer hold their slot. Cancelled
// rows never block a new reservation.
const StatusCancelled = "cancelled"

// Slot is the read-only view of an existing booking that the conflict scan
// needs. The caller is responsible for fetching all slots for the candidate's
// date; the scan does not filter by date itself.
type Slot struct {
	ID            string  `json:"id"`
	TimeSlot      string  `json:"time_slot"`
	DurationHours float64 `json:"duration"`
	Status        string  `json:"status"`
}

// Candidate is the slot a caller wants to reserve. ID is set only when
// editing an existing booking, so the booking never conflicts with itself.
type Candidate struct {
	ID            string
	StartTime     string
	DurationHours float64
}

// Conflict reports the first existing booking whose interval intersects the
// candidate's, along with its window formatted for display.
type Conflict struct {
	Slot          Slot   `json:"slot"`
	ExistingStart string `json:"existing_start"`
	ExistingEnd   string `json:"existing_end"`
}

// RangesOverlap reports whether two half-open minute intervals intersect on
// the 24-hour clock. An interval whose end is at or before its start is taken
// to cross midnight and is normalized by a day. Because either interval may
// spill past midnight, each is also compared against the other shifted by a
// day, so a 23:00-01:00 booking blocks a 00:30 candidate. Touching endpoints
// (endA == startB) do not count as overlap.
func RangesOverlap(startA, endA, startB, endB int) bool {
	if endA <= startA {
		endA += minutesPerDay
	}
	if endB <= startB {
		endB += minutesPerDay
	}
	return intersects(startA, endA, startB, endB) ||
		intersects(startA, endA, startB+minutesPerDay, endB+minutesPerDay) ||
		intersects(startA+minutesPerDay, endA+minutesPerDay, startB, endB)
}

func intersects(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

// FindConflict scans the supplied same-date slots for the first non-cancelled
// booking that overlaps the candidate. It returns nil when the candidate's
// start time does not parse or its duration is zero: this is an advisory
// check and it fails open, leaving the database's uniqueness constraint as
// the authoritative guard.
func FindConflict(c Candidate, existing []Slot) *Conflict {
	start, ok := ParseClock(c.StartTime)
	if !ok || c.DurationHours <= 0 {
		return nil
	}
	end := start + int(c.DurationHours*60)

	for _, slot := range existing {
		if slot.Status == StatusCancelled {
			continue
		}
		if c.ID != "" && slot.ID == c.ID {
			continue
		}

		existingStart, ok := ParseClock(slot.TimeSlot)
		if !ok {
			// Malformed legacy data is non-blocking rather than fatal.
			continue
		}

		duration := slot.DurationHours
		if duration <= 0 {
			duration = DefaultDurationHours
		}
		existingEnd := existingStart + int(duration*60)

		if RangesOverlap(start, end, existingStart, existingEnd) {
			return &Conflict{
				Slot:          slot,
				ExistingStart: Format12Hour(slot.TimeSlot),
				ExistingEnd:   Format12Hour(AddMinutes(slot.TimeSlot, int(duration*60))),
			}
		}
	}

	return nil
}

package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB int
		want                       bool
	}{
		{name: "disjoint", startA: 540, endA: 660, startB: 720, endB: 780, want: false},
		{name: "touching endpoints do not overlap", startA: 540, endA: 660, startB: 660, endB: 720, want: false},
		{name: "partial overlap", startA: 540, endA: 660, startB: 600, endB: 720, want: true},
		{name: "containment", startA: 540, endA: 780, startB: 600, endB: 660, want: true},
		{name: "identical", startA: 540, endA: 660, startB: 540, endB: 660, want: true},
		{name: "wrapped vs early morning", startA: 1380, endA: 1500, startB: 30, endB: 90, want: true},
		{name: "wrapped vs evening before it", startA: 1380, endA: 1500, startB: 1260, endB: 1320, want: false},
		{name: "wrapped end given modulo a day", startA: 1380, endA: 60, startB: 1410, endB: 1440, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.startA, tt.endA, tt.startB, tt.endB))
			// Overlap is symmetric
			assert.Equal(t, tt.want, RangesOverlap(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestFindConflict(t *testing.T) {
	confirmed := func(id, start string, hours float64) Slot {
		return Slot{ID: id, TimeSlot: start, DurationHours: hours, Status: "confirmed"}
	}

	t.Run("reports first overlapping booking with display window", func(t *testing.T) {
		existing := []Slot{confirmed("b1", "14:00", 2)}
		candidate := Candidate{StartTime: "15:00", DurationHours: 2}

		conflict := FindConflict(candidate, existing)
		require.NotNil(t, conflict)
		assert.Equal(t, "b1", conflict.Slot.ID)
		assert.Equal(t, "2:00 PM", conflict.ExistingStart)
		assert.Equal(t, "4:00 PM", conflict.ExistingEnd)
	})

	t.Run("touching slots do not conflict", func(t *testing.T) {
		existing := []Slot{confirmed("b1", "09:00", 2)}
		candidate := Candidate{StartTime: "11:00", DurationHours: 1}

		assert.Nil(t, FindConflict(candidate, existing))
	})

	t.Run("booking crossing midnight blocks early morning candidate", func(t *testing.T) {
		existing := []Slot{confirmed("b1", "23:00", 2)}
		candidate := Candidate{StartTime: "00:30", DurationHours: 1}

		require.NotNil(t, FindConflict(candidate, existing))
	})

	t.Run("cancelled bookings never block", func(t *testing.T) {
		existing := []Slot{{ID: "b1", TimeSlot: "15:00", DurationHours: 2, Status: StatusCancelled}}
		candidate := Candidate{StartTime: "15:00", DurationHours: 2}

		assert.Nil(t, FindConflict(candidate, existing))
	})

	t.Run("editing a booking excludes itself", func(t *testing.T) {
		existing := []Slot{confirmed("b1", "15:00", 2)}
		candidate := Candidate{ID: "b1", StartTime: "15:00", DurationHours: 2}

		assert.Nil(t, FindConflict(candidate, existing))

		// A different booking in the same slot still conflicts
		candidate.ID = "b2"
		assert.NotNil(t, FindConflict(candidate, existing))
	})

	t.Run("missing duration defaults to two hours", func(t *testing.T) {
		existing := []Slot{{ID: "b1", TimeSlot: "14:00", Status: "pending"}}

		// 15:30 falls inside the implied 14:00-16:00 window
		assert.NotNil(t, FindConflict(Candidate{StartTime: "15:30", DurationHours: 1}, existing))
		// 16:00 touches the implied end and is free
		assert.Nil(t, FindConflict(Candidate{StartTime: "16:00", DurationHours: 1}, existing))
	})

	t.Run("unparseable candidate start fails open", func(t *testing.T) {
		existing := []Slot{confirmed("b1", "15:00", 2)}

		assert.Nil(t, FindConflict(Candidate{StartTime: "", DurationHours: 2}, existing))
		assert.Nil(t, FindConflict(Candidate{StartTime: "soon", DurationHours: 2}, existing))
	})

	t.Run("zero duration fails open", func(t *testing.T) {
		existing := []Slot{confirmed("b1", "15:00", 2)}

		assert.Nil(t, FindConflict(Candidate{StartTime: "15:00", DurationHours: 0}, existing))
	})

	t.Run("malformed existing start is skipped", func(t *testing.T) {
		existing := []Slot{
			{ID: "legacy", TimeSlot: "??", DurationHours: 2, Status: "confirmed"},
			confirmed("b2", "15:00", 2),
		}
		candidate := Candidate{StartTime: "15:00", DurationHours: 2}

		conflict := FindConflict(candidate, existing)
		require.NotNil(t, conflict)
		assert.Equal(t, "b2", conflict.Slot.ID)
	})

	t.Run("first overlap wins", func(t *testing.T) {
		existing := []Slot{
			confirmed("b1", "14:00", 2),
			confirmed("b2", "16:00", 2),
		}
		candidate := Candidate{StartTime: "15:00", DurationHours: 3}

		conflict := FindConflict(candidate, existing)
		require.NotNil(t, conflict)
		assert.Equal(t, "b1", conflict.Slot.ID)
	})

	t.Run("idempotent over identical inputs", func(t *testing.T) {
		existing := []Slot{confirmed("b1", "14:00", 2)}
		candidate := Candidate{StartTime: "15:00", DurationHours: 2}

		first := FindConflict(candidate, existing)
		second := FindConflict(candidate, existing)
		assert.Equal(t, first, second)
	})

	t.Run("no conflict on a free day", func(t *testing.T) {
		assert.Nil(t, FindConflict(Candidate{StartTime: "10:00", DurationHours: 3}, nil))
	})
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergedNotes(t *testing.T) {
	tests := []struct {
		name string
		req  SubmitBookingRequest
		want *string
	}{
		{
			name: "nothing to merge",
			req:  SubmitBookingRequest{EventType: "party"},
			want: nil,
		},
		{
			name: "plain notes pass through",
			req:  SubmitBookingRequest{EventType: "party", Notes: "  needs wheelchair access  "},
			want: strPtr("needs wheelchair access"),
		},
		{
			name: "other purpose becomes notes",
			req:  SubmitBookingRequest{EventType: "other", OtherEventPurpose: "Product launch"},
			want: strPtr("Other event purpose: Product launch"),
		},
		{
			name: "other purpose and notes combine",
			req:  SubmitBookingRequest{EventType: "other", OtherEventPurpose: "Product launch", Notes: "stage needed"},
			want: strPtr("Other event purpose: Product launch\n\nNotes: stage needed"),
		},
		{
			name: "purpose ignored for non-other event types",
			req:  SubmitBookingRequest{EventType: "party", OtherEventPurpose: "Product launch"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.MergedNotes()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDurationOrDefault(t *testing.T) {
	four := 4.0
	zero := 0.0

	assert.Equal(t, 4.0, (&Booking{Duration: &four}).DurationOrDefault())
	assert.Equal(t, 2.0, (&Booking{Duration: nil}).DurationOrDefault())
	assert.Equal(t, 2.0, (&Booking{Duration: &zero}).DurationOrDefault())
}

func TestToBusyWindow(t *testing.T) {
	hours := 2.5
	b := Booking{TimeSlot: "22:30", Duration: &hours, Status: StatusConfirmed}

	window := b.ToBusyWindow()
	assert.Equal(t, "10:30 PM", window.StartDisplay)
	// 22:30 + 2.5h wraps past midnight
	assert.Equal(t, "1:00 AM", window.EndDisplay)
	assert.Equal(t, 2.5, window.Duration)
}

func TestToBookingResponseUsesLegacyDefault(t *testing.T) {
	b := Booking{ID: "b1", TimeSlot: "14:00", Status: StatusPending}

	resp := b.ToBookingResponse()
	assert.Equal(t, 2.0, resp.Duration)
	assert.Equal(t, "2:00 PM", resp.StartDisplay)
	assert.Equal(t, "4:00 PM", resp.EndDisplay)
}

func strPtr(s string) *string { return &s }

package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock converts a zero-padded "HH:MM" wall-clock string to minutes
// since midnight. The second return value is false when the input is empty
// or malformed; an unset time is "nothing to check yet", not an error.
func ParseClock(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}

	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, false
	}

	return hours*60 + mins, true
}

// AddMinutes adds delta minutes to an "HH:MM" time and returns the result in
// the same format, wrapping across midnight in either direction. Returns ""
// when the input time does not parse.
func AddMinutes(s string, delta int) string {
	start, ok := ParseClock(s)
	if !ok {
		return ""
	}

	total := ((start+delta)%minutesPerDay + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Format12Hour renders an "HH:MM" time in 12-hour form, e.g. "14:00" ->
// "2:00 PM", "00:30" -> "12:30 AM". Returns "" for unparseable input; the
// empty string is the display contract for a missing time.
func Format12Hour(s string) string {
	mins, ok := ParseClock(s)
	if !ok {
		return ""
	}

	h := mins / 60
	m := mins % 60

	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", hour12, m, period)
}

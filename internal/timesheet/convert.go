package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Converter converts between integer minutes and the signed "HH:MM"
// display form used throughout timesheet output.
type Converter struct{}

// MinutesToDisplay renders total minutes as "HH:MM", or "-HH:MM" for
// negative totals. Hours and minutes are both zero-padded to two
// digits; hours grow beyond two digits when needed.
func (Converter) MinutesToDisplay(totalMinutes int) string {
	negative := totalMinutes < 0
	if negative {
		totalMinutes = -totalMinutes
	}

	display := fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
	if negative {
		return "-" + display
	}
	return display
}

// DisplayToMinutes parses "H:MM" or "HH:MM" into total minutes. A
// missing minute component defaults to zero. Negative strings are not
// part of the input domain and are rejected.
func (Converter) DisplayToMinutes(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}

	minutes := 0
	if len(parts) == 2 && parts[1] != "" {
		minutes, err = strconv.Atoi(parts[1])
		if err != nil || minutes < 0 || minutes > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
		}
	}

	return hours*60 + minutes, nil
}

package timesheet

import (
	"fmt"
	"time"

	"timesheet-service/internal/model"
)

const punchTimeLayout = "15:04:05"

// Punch-ins at or before this wall-clock time count as on time.
const punctualCutoff = "10:30:00"

// PunctualStatus classifies a punch-in time against the on-time cutoff.
// Times are "HH:MM:SS" strings, so lexical comparison is chronological.
func PunctualStatus(punchInTime string) string {
	if punchInTime > punctualCutoff {
		return model.PunctualStatusLate
	}
	return model.PunctualStatusOnTime
}

// WorkingHours renders the span between punch-in and punch-out as
// "Xh Ym". Both arguments are "HH:MM:SS" strings on the same day; a
// punch-out before punch-in is rejected.
func WorkingHours(punchInTime, punchOutTime string) (string, error) {
	in, err := time.Parse(punchTimeLayout, punchInTime)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, punchInTime)
	}
	out, err := time.Parse(punchTimeLayout, punchOutTime)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, punchOutTime)
	}
	if out.Before(in) {
		return "", fmt.Errorf("%w: punch out %q before punch in %q", ErrInvalidTimeFormat, punchOutTime, punchInTime)
	}

	span := out.Sub(in)
	hours := int(span.Hours())
	minutes := int(span.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes), nil
}

package timesheet

import "time"

const monthYearLayout = "2006-01"

// MonthWindow is a resolved calendar month: inclusive day boundaries
// used as range filters for time log dates.
type MonthWindow struct {
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days in the window's month.
func (w MonthWindow) Days() int {
	return w.Start.AddDate(0, 1, -1).Day()
}

// Contains reports whether t falls inside the inclusive window.
func (w MonthWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveMonthWindow validates a strict "YYYY-MM" token and derives the
// month boundaries: first day 00:00:00 through last day 23:59:59 UTC.
// Tokens such as "2024-13", "2024-2" or "2024-02-01" fail; callers that
// have no token at all simply skip the window and run unwindowed.
func ResolveMonthWindow(token string) (MonthWindow, error) {
	parsed, err := time.Parse(monthYearLayout, token)
	if err != nil || parsed.Format(monthYearLayout) != token {
		return MonthWindow{}, ErrInvalidMonthYearFormat
	}

	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	return MonthWindow{
		Year:  parsed.Year(),
		Month: parsed.Month(),
		Start: start,
		End:   end,
	}, nil
}

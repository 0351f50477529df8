package timesheet

import (
	"context"
	"math"
	"time"
)

// DailyBreakdown buckets a tenant's time logs by calendar day for one
// month. The series always holds one entry per day of the month, zeroed
// where nothing was logged. A non-zero memberID narrows the series to
// logs created by that member. The daily average is total billable
// minutes over the number of days in the month, not the number of
// active days.
func (a *Aggregator) DailyBreakdown(ctx context.Context, tenantID uint, monthYear string, memberID uint) (*DailySeries, error) {
	window, err := ResolveMonthWindow(monthYear)
	if err != nil {
		return nil, err
	}

	tasks, err := a.store.FindTasksByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	loggedByDay := map[int]int{}
	billableByDay := map[int]int{}
	for i := range tasks {
		for _, log := range tasks[i].TimeLogs {
			if !window.Contains(log.Date) {
				continue
			}
			if memberID != 0 && log.CreatorID != memberID {
				continue
			}
			day := log.Date.Day()
			loggedByDay[day] += log.ActualMinutes
			billableByDay[day] += log.BillableMinutes
		}
	}

	days := window.Days()
	entries := make([]DayEntry, 0, days)
	var totalLogged, totalBillable, totalVariance int
	for day := 1; day <= days; day++ {
		logged := loggedByDay[day]
		billable := billableByDay[day]
		variance := a.calc.Variance(billable, logged)

		totalLogged += logged
		totalBillable += billable
		totalVariance += variance

		entries = append(entries, DayEntry{
			Day:      day,
			Date:     time.Date(window.Year, window.Month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout),
			Logged:   a.conv.MinutesToDisplay(logged),
			Billable: a.conv.MinutesToDisplay(billable),
			Variance: a.conv.MinutesToDisplay(variance),
		})
	}

	average := int(math.Round(float64(totalBillable) / float64(days)))

	return &DailySeries{
		DailyBillableAverage: a.conv.MinutesToDisplay(average),
		TotalBillable:        a.conv.MinutesToDisplay(totalBillable),
		TotalLogged:          a.conv.MinutesToDisplay(totalLogged),
		TotalVariance:        a.conv.MinutesToDisplay(totalVariance),
		Days:                 entries,
	}, nil
}

package timesheet

import "strconv"

// Calculator derives variance and utilization figures from minute
// totals. All percentage results are rendered with two decimals; a zero
// denominator yields "0.00" rather than a division error.
type Calculator struct {
	conv Converter
}

// NewCalculator returns a Calculator using conv for display rendering.
func NewCalculator(conv Converter) Calculator {
	return Calculator{conv: conv}
}

// Variance returns billable minus logged minutes. Over-logging yields a
// negative result.
func (Calculator) Variance(billableMinutes, loggedMinutes int) int {
	return billableMinutes - loggedMinutes
}

// UnderOver renders target capacity minus billable minutes as a signed
// display string.
func (c Calculator) UnderOver(targetHours, billableMinutes int) string {
	return c.conv.MinutesToDisplay(targetHours*60 - billableMinutes)
}

// BillablePercent is billable minutes over target capacity, as a
// percentage string.
func (Calculator) BillablePercent(billableMinutes, targetHours int) string {
	return percent(billableMinutes, targetHours*60)
}

// LoggedPercent is logged minutes over billable minutes, as a
// percentage string.
func (Calculator) LoggedPercent(loggedMinutes, billableMinutes int) string {
	return percent(loggedMinutes, billableMinutes)
}

func percent(numerator, denominator int) string {
	if denominator == 0 {
		return "0.00"
	}
	value := float64(numerator) / float64(denominator) * 100
	return strconv.FormatFloat(value, 'f', 2, 64)
}

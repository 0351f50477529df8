package timesheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"timesheet-service/internal/model"
)

func TestPunctualStatus(t *testing.T) {
	require.Equal(t, model.PunctualStatusOnTime, PunctualStatus("09:00:00"))
	// The cutoff itself is still on time.
	require.Equal(t, model.PunctualStatusOnTime, PunctualStatus("10:30:00"))
	require.Equal(t, model.PunctualStatusLate, PunctualStatus("10:30:01"))
	require.Equal(t, model.PunctualStatusLate, PunctualStatus("14:05:00"))
}

func TestWorkingHours(t *testing.T) {
	got, err := WorkingHours("09:00:00", "17:30:00")
	require.NoError(t, err)
	require.Equal(t, "8h 30m", got)

	got, err = WorkingHours("09:15:00", "09:20:30")
	require.NoError(t, err)
	require.Equal(t, "0h 5m", got)

	got, err = WorkingHours("10:00:00", "10:00:00")
	require.NoError(t, err)
	require.Equal(t, "0h 0m", got)
}

func TestWorkingHoursRejectsBadInput(t *testing.T) {
	_, err := WorkingHours("17:00:00", "09:00:00")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = WorkingHours("morning", "17:00:00")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = WorkingHours("09:00:00", "late")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

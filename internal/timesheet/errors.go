package timesheet

import "errors"

// Symbolic validation errors. The messages are stable tokens the
// response-shaping layer maps to user-facing codes; storage errors are
// never wrapped into these.
var (
	ErrInvalidMonthYearFormat = errors.New("INVALID_MONTH_YEAR_FORMAT")
	ErrInvalidMemberID        = errors.New("INVALID_MEMBER_ID")
	ErrInvalidProjectID       = errors.New("INVALID_PROJECT_ID")
	ErrInvalidTaskID          = errors.New("INVALID_TASK_ID")
	ErrInvalidLogID           = errors.New("INVALID_LOG_ID")
	ErrProjectInactive        = errors.New("PROJECT_INACTIVE")
	ErrMemberCannotAddLog     = errors.New("MEMBER_NOT_ALLOWED_TO_ADD_LOG")
	ErrTaskClosed             = errors.New("UNABLE_ADD_TASK_CLOSED")
	ErrBillableExceedsTask    = errors.New("BILLABLE_HOURS_EXCEEDS_TASK_LIMIT")
	ErrInvalidTimeFormat      = errors.New("INVALID_TIME_FORMAT")
)

// IsValidationError reports whether err is one of the symbolic
// validation errors, as opposed to a storage failure that should be
// propagated unmodified.
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrInvalidMonthYearFormat,
		ErrInvalidMemberID,
		ErrInvalidProjectID,
		ErrInvalidTaskID,
		ErrInvalidLogID,
		ErrProjectInactive,
		ErrMemberCannotAddLog,
		ErrTaskClosed,
		ErrBillableExceedsTask,
		ErrInvalidTimeFormat,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

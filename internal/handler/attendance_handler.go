package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"timesheet-service/internal/model"
	"timesheet-service/internal/repository"
	"timesheet-service/internal/timesheet"
	"timesheet-service/pkg/logger"
	"timesheet-service/prometheus"
)

const punchDateLayout = "2006-01-02"

// AttendanceRecord is one punch row in listings.
type AttendanceRecord struct {
	ID             uint   `json:"id"`
	MemberID       uint   `json:"memberId"`
	MemberName     string `json:"memberName,omitempty"`
	PunchDate      string `json:"punchDate"`
	PunchInTime    string `json:"punchInTime"`
	PunchOutTime   string `json:"punchOutTime,omitempty"`
	WorkingHours   string `json:"workingHours,omitempty"`
	PunctualStatus string `json:"punctualStatus"`
	PunchType      string `json:"punchType"`
}

// PunchIn records the caller's punch-in for today. A member punches in
// at most once per day; the punch-in time decides the punctual status.
func PunchIn(c echo.Context) error {
	log := logger.FromContext(c)

	now := time.Now()
	punchDate := now.Format(punchDateLayout)
	punchTime := now.Format("15:04:05")
	memberID := callerID(c)

	store := tenantStore(c)
	existing, err := store.FindPunch(c.Request().Context(), memberID, punchDate)
	if err != nil {
		log.Error("Failed to look up punch record", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	if existing != nil {
		log.Warn("Member already punched in",
			zap.Uint("member_id", memberID),
			zap.String("punch_date", punchDate))
		return c.JSON(http.StatusBadRequest, echo.Map{"code": "ALREADY_PUNCHED_IN"})
	}

	attendance := &model.Attendance{
		MemberID:       memberID,
		PunchDate:      punchDate,
		PunchInTime:    punchTime,
		PunctualStatus: timesheet.PunctualStatus(punchTime),
		PunchType:      "WEB",
	}
	if err := store.CreatePunch(c.Request().Context(), attendance); err != nil {
		log.Error("Failed to record punch in", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	log.Info("Punch in recorded",
		zap.Uint("member_id", memberID),
		zap.String("punch_time", punchTime),
		zap.String("punctual_status", attendance.PunctualStatus))
	prometheus.RecordPunch("in")

	return c.JSON(http.StatusCreated, attendanceRecord(attendance))
}

// PunchOut closes the caller's open punch for today and derives the
// working hours span.
func PunchOut(c echo.Context) error {
	log := logger.FromContext(c)

	now := time.Now()
	punchDate := now.Format(punchDateLayout)
	punchTime := now.Format("15:04:05")
	memberID := callerID(c)

	store := tenantStore(c)
	attendance, err := store.FindPunch(c.Request().Context(), memberID, punchDate)
	if err != nil {
		log.Error("Failed to look up punch record", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	if attendance == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": "PUNCH_IN_REQUIRED"})
	}
	if attendance.PunchOutTime != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": "ALREADY_PUNCHED_OUT"})
	}

	workingHours, err := timesheet.WorkingHours(attendance.PunchInTime, punchTime)
	if err != nil {
		return aggregationError(c, "punch_out", err)
	}

	attendance.PunchOutTime = punchTime
	attendance.WorkingHours = workingHours
	if err := store.SavePunch(c.Request().Context(), attendance); err != nil {
		log.Error("Failed to record punch out", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	log.Info("Punch out recorded",
		zap.Uint("member_id", memberID),
		zap.String("working_hours", workingHours))
	prometheus.RecordPunch("out")

	return c.JSON(http.StatusOK, attendanceRecord(attendance))
}

// ListAttendance handles the paginated attendance listing with optional
// member, status and date range filters.
func ListAttendance(c echo.Context) error {
	log := logger.FromContext(c)

	opts := timesheet.ListOptions{
		Page:     pageParam(c),
		PageSize: repository.AttendancePageSize,
		Search:   c.QueryParam("search"),
		Status:   c.QueryParam("status"),
		Team:     c.QueryParam("team"),
	}
	if raw := c.QueryParam("memberId"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidMemberID.Error()})
		}
		opts.MemberID = id
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(punchDateLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidTimeFormat.Error()})
		}
		opts.From = from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(punchDateLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidTimeFormat.Error()})
		}
		opts.To = to
	}

	return respondAttendanceList(c, log, opts)
}

// MyAttendance lists the caller's own punch records.
func MyAttendance(c echo.Context) error {
	log := logger.FromContext(c)

	opts := timesheet.ListOptions{
		Page:     pageParam(c),
		PageSize: repository.AttendancePageSize,
		MemberID: callerID(c),
	}
	return respondAttendanceList(c, log, opts)
}

func respondAttendanceList(c echo.Context, log *zap.Logger, opts timesheet.ListOptions) error {
	records, total, err := tenantStore(c).ListAttendance(c.Request().Context(), opts)
	if err != nil {
		log.Error("Failed to list attendance", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	items := make([]AttendanceRecord, 0, len(records))
	for i := range records {
		items = append(items, attendanceRecord(&records[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"attendance": items,
		"total":      total,
		"page":       opts.Page,
		"pageSize":   opts.Limit(),
	})
}

func attendanceRecord(a *model.Attendance) AttendanceRecord {
	record := AttendanceRecord{
		ID:             a.ID,
		MemberID:       a.MemberID,
		PunchDate:      a.PunchDate,
		PunchInTime:    a.PunchInTime,
		PunchOutTime:   a.PunchOutTime,
		WorkingHours:   a.WorkingHours,
		PunctualStatus: a.PunctualStatus,
		PunchType:      a.PunchType,
	}
	if a.Member.ID != 0 {
		record.MemberName = a.Member.FullName()
	}
	return record
}

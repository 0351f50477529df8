package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"timesheet-service/internal/model"
	"timesheet-service/internal/timesheet"
	"timesheet-service/pkg/logger"
	"timesheet-service/prometheus"
)

// TimeLogRequest defines the structure for time log submissions. Hours
// are "H:MM" display strings; the date is "YYYY-MM-DD".
type TimeLogRequest struct {
	ProjectID     uint   `json:"projectId" validate:"required"`
	Date          string `json:"date" validate:"required"`
	ActualHours   string `json:"actualHours" validate:"required"`
	BillableHours string `json:"billableHours" validate:"required"`
	Note          string `json:"note"`
}

func (r *TimeLogRequest) toInput(c echo.Context, taskID uint) (timesheet.LogInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return timesheet.LogInput{}, timesheet.ErrInvalidTimeFormat
	}

	billable, err := timesheet.Converter{}.DisplayToMinutes(r.BillableHours)
	if err != nil {
		return timesheet.LogInput{}, err
	}

	loggedBy := model.CreatorTypeAdmin
	if callerRole(c) == "member" {
		loggedBy = model.CreatorTypeMember
	}

	return timesheet.LogInput{
		TenantID:        tenantID(c),
		ProjectID:       r.ProjectID,
		TaskID:          taskID,
		Date:            date,
		ActualHours:     r.ActualHours,
		BillableMinutes: billable,
		Note:            r.Note,
		LoggedBy:        loggedBy,
		CreatorID:       callerID(c),
	}, nil
}

// AddTimeLog handles creating a new time log against a task.
func AddTimeLog(c echo.Context) error {
	log := logger.FromContext(c)

	taskID, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidTaskID.Error()})
	}

	var req TimeLogRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	in, err := req.toInput(c, taskID)
	if err != nil {
		return aggregationError(c, "time_log_insert", err)
	}

	log.Info("Adding time log",
		zap.Uint("task_id", taskID),
		zap.Uint("project_id", req.ProjectID),
		zap.String("date", req.Date))

	writer := timesheet.NewLogWriter(tenantStore(c), timesheet.Converter{})
	if err := writer.Save(c.Request().Context(), in, 0); err != nil {
		return aggregationError(c, "time_log_insert", err)
	}

	prometheus.RecordTimeLogWrite("insert")
	return c.JSON(http.StatusCreated, echo.Map{"message": "time log added"})
}

// UpdateTimeLog handles editing an existing time log of a task.
func UpdateTimeLog(c echo.Context) error {
	log := logger.FromContext(c)

	taskID, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidTaskID.Error()})
	}
	logID, ok := parseID(c.Param("logId"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidLogID.Error()})
	}

	var req TimeLogRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	in, err := req.toInput(c, taskID)
	if err != nil {
		return aggregationError(c, "time_log_update", err)
	}

	log.Info("Updating time log",
		zap.Uint("task_id", taskID),
		zap.Uint("log_id", logID))

	writer := timesheet.NewLogWriter(tenantStore(c), timesheet.Converter{})
	if err := writer.Save(c.Request().Context(), in, logID); err != nil {
		return aggregationError(c, "time_log_update", err)
	}

	prometheus.RecordTimeLogWrite("update")
	return c.JSON(http.StatusOK, echo.Map{"message": "time log updated"})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"timesheet-service/internal/timesheet"
	"timesheet-service/pkg/logger"
	"timesheet-service/prometheus"
)

// GetMemberTimesheetHeader returns the summary header for one member's
// month.
func GetMemberTimesheetHeader(c echo.Context) error {
	log := logger.FromContext(c)

	memberID, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidMemberID.Error()})
	}

	log.Info("Building member timesheet header",
		zap.Uint("member_id", memberID),
		zap.String("month_year", c.QueryParam("monthYear")))

	header, err := engine(c).MemberHeader(c.Request().Context(), memberID,
		c.QueryParam("monthYear"), c.QueryParam("taskStatus"))
	if err != nil {
		return aggregationError(c, "member_header", err)
	}

	prometheus.RecordAggregation("member_header")
	return c.JSON(http.StatusOK, header)
}

// GetMemberTimesheet returns one page of the member's timesheet tree,
// grouped by client.
func GetMemberTimesheet(c echo.Context) error {
	log := logger.FromContext(c)

	memberID, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidMemberID.Error()})
	}

	page := pageParam(c)
	log.Info("Building member timesheet",
		zap.Uint("member_id", memberID),
		zap.String("month_year", c.QueryParam("monthYear")),
		zap.Int("page", page))

	sheet, err := engine(c).MemberTimesheet(c.Request().Context(), memberID,
		c.QueryParam("monthYear"), page, c.QueryParam("taskStatus"))
	if err != nil {
		return aggregationError(c, "member_timesheet", err)
	}

	prometheus.RecordAggregation("member_timesheet")
	return c.JSON(http.StatusOK, sheet)
}

// GetProjectTimesheetHeader returns the summary header for one project.
func GetProjectTimesheetHeader(c echo.Context) error {
	log := logger.FromContext(c)

	projectID, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidProjectID.Error()})
	}

	log.Info("Building project timesheet header", zap.Uint("project_id", projectID))

	header, err := engine(c).ProjectHeader(c.Request().Context(), projectID,
		c.QueryParam("taskStatus"), c.QueryParam("monthYear"))
	if err != nil {
		return aggregationError(c, "project_header", err)
	}

	prometheus.RecordAggregation("project_header")
	return c.JSON(http.StatusOK, header)
}

// GetProjectTimesheet returns the full single-project view. Client
// callers only see individual time logs when the project enables
// client view.
func GetProjectTimesheet(c echo.Context) error {
	log := logger.FromContext(c)

	projectID, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidProjectID.Error()})
	}

	opts := timesheet.ProjectOptions{
		TaskStatus: c.QueryParam("taskStatus"),
		MonthYear:  c.QueryParam("monthYear"),
		ForClient:  callerRole(c) == "client",
	}
	log.Info("Building project timesheet",
		zap.Uint("project_id", projectID),
		zap.Bool("for_client", opts.ForClient))

	sheet, err := engine(c).ProjectTimesheet(c.Request().Context(), projectID, opts)
	if err != nil {
		return aggregationError(c, "project_timesheet", err)
	}

	prometheus.RecordAggregation("project_timesheet")
	return c.JSON(http.StatusOK, sheet)
}

// GetDailyBreakdown returns the tenant's per-day series for one month,
// optionally narrowed to a single member.
func GetDailyBreakdown(c echo.Context) error {
	log := logger.FromContext(c)

	var memberID uint
	if raw := c.QueryParam("memberId"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidMemberID.Error()})
		}
		memberID = id
	}

	log.Info("Building daily breakdown",
		zap.String("month_year", c.QueryParam("monthYear")),
		zap.Uint("member_id", memberID))

	series, err := engine(c).DailyBreakdown(c.Request().Context(), tenantID(c),
		c.QueryParam("monthYear"), memberID)
	if err != nil {
		return aggregationError(c, "daily_breakdown", err)
	}

	prometheus.RecordAggregation("daily_breakdown")
	return c.JSON(http.StatusOK, series)
}

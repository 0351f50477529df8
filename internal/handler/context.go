package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"timesheet-service/internal/repository"
	"timesheet-service/internal/timesheet"
	"timesheet-service/pkg/database"
	"timesheet-service/pkg/logger"
	"timesheet-service/prometheus"
)

// tenantID returns the tenant from the validated token. The auth
// middleware guarantees it is present on tenant-scoped routes.
func tenantID(c echo.Context) uint {
	id, _ := c.Get("tenant_id").(uint)
	return id
}

func callerID(c echo.Context) uint {
	id, _ := c.Get("user_id").(uint)
	return id
}

func callerRole(c echo.Context) string {
	role, _ := c.Get("user_role").(string)
	return role
}

// tenantStore builds the request's tenant-scoped store.
func tenantStore(c echo.Context) *repository.TenantStore {
	return repository.NewTenantStore(database.GetDB(), tenantID(c))
}

// engine builds the request's aggregator over the tenant store.
func engine(c echo.Context) *timesheet.Aggregator {
	conv := timesheet.Converter{}
	return timesheet.NewAggregator(tenantStore(c), conv, timesheet.NewCalculator(conv))
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// aggregationError maps engine errors onto HTTP responses: validation
// errors become 400s carrying the symbolic code, anything else is a
// storage failure and stays opaque.
func aggregationError(c echo.Context, scope string, err error) error {
	log := logger.FromContext(c)
	if timesheet.IsValidationError(err) {
		prometheus.RecordAggregationError(err.Error())
		log.Warn("Request rejected",
			zap.String("scope", scope),
			zap.String("code", err.Error()))
		return c.JSON(http.StatusBadRequest, echo.Map{"code": err.Error()})
	}

	log.Error("Request failed", zap.String("scope", scope), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}

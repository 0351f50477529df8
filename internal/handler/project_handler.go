package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"timesheet-service/internal/model"
	"timesheet-service/internal/timesheet"
	"timesheet-service/pkg/logger"
)

// ProjectListItem is one row of the project listing.
type ProjectListItem struct {
	ProjectID        uint   `json:"projectId"`
	Title            string `json:"title"`
	ClientName       string `json:"clientName"`
	ProjectType      string `json:"projectType"`
	IsActive         bool   `json:"isActive"`
	AddTasks         bool   `json:"addTasks"`
	TeamMembersCount int    `json:"teamMembersCount"`
}

// ListProjects handles the paginated project listing with optional
// search and filters.
func ListProjects(c echo.Context) error {
	log := logger.FromContext(c)

	opts := timesheet.ListOptions{
		Page:        pageParam(c),
		Search:      c.QueryParam("search"),
		Status:      c.QueryParam("status"),
		ProjectType: c.QueryParam("projectType"),
		Team:        c.QueryParam("team"),
	}
	if raw := c.QueryParam("memberId"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"code": timesheet.ErrInvalidMemberID.Error()})
		}
		opts.MemberID = id
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			opts.PageSize = size
		}
	}

	log.Info("Listing projects",
		zap.String("search", opts.Search),
		zap.String("status", opts.Status),
		zap.Int("page", opts.Page))

	projects, total, err := tenantStore(c).ListProjects(c.Request().Context(), opts)
	if err != nil {
		log.Error("Failed to list projects", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "failed to retrieve projects",
		})
	}

	items := make([]ProjectListItem, 0, len(projects))
	for i := range projects {
		items = append(items, projectListItem(&projects[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"projects": items,
		"total":    total,
		"page":     opts.Page,
		"pageSize": opts.Limit(),
	})
}

func projectListItem(p *model.Project) ProjectListItem {
	return ProjectListItem{
		ProjectID:        p.ID,
		Title:            p.Title,
		ClientName:       p.Client.Name,
		ProjectType:      p.ProjectType,
		IsActive:         p.Active,
		AddTasks:         p.AddTasks,
		TeamMembersCount: len(p.TeamMembers),
	}
}

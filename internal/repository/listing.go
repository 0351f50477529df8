package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"timesheet-service/internal/model"
	"timesheet-service/internal/timesheet"
	"timesheet-service/prometheus"
)

// ListProjects returns one page of the tenant's projects plus the total
// match count. Search matches project title or client name,
// case-insensitive; status, project type, team membership and team name
// filter exactly. The count and the page run as separate queries over
// the same filters. Rows order by client name then title, both
// case-insensitive.
func (s *TenantStore) ListProjects(ctx context.Context, opts timesheet.ListOptions) ([]model.Project, int64, error) {
	defer prometheus.TrackDBOperation("list_projects")(time.Now())

	filtered := func(db *gorm.DB) *gorm.DB {
		query := db.Model(&model.Project{}).
			Joins("JOIN clients ON clients.id = projects.client_id").
			Where("projects.tenant_id = ?", s.tenantID)
		if opts.Search != "" {
			pattern := "%" + opts.Search + "%"
			query = query.Where("projects.title ILIKE ? OR clients.name ILIKE ?", pattern, pattern)
		}
		switch opts.Status {
		case "active":
			query = query.Where("projects.active = ?", true)
		case "inactive":
			query = query.Where("projects.active = ?", false)
		}
		if opts.ProjectType != "" {
			query = query.Where("projects.project_type = ?", opts.ProjectType)
		}
		// Team filters go through subqueries so a multi-member team
		// cannot fan one project out into several rows.
		if opts.MemberID != 0 {
			query = query.Where("projects.id IN (?)",
				s.db.Table("project_team_members").
					Select("project_id").
					Where("member_id = ?", opts.MemberID))
		}
		if opts.Team != "" {
			query = query.Where("projects.id IN (?)",
				s.db.Table("project_team_members ptm").
					Select("ptm.project_id").
					Joins("JOIN members ON members.id = ptm.member_id").
					Where("members.team = ?", opts.Team))
		}
		return query
	}

	var total int64
	if err := filtered(s.db.WithContext(ctx)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	err := filtered(s.db.WithContext(ctx)).
		Preload("Client").
		Preload("TeamMembers", unscopedMembers).
		Order("LOWER(clients.name) ASC, LOWER(projects.title) ASC").
		Limit(opts.Limit()).
		Offset(opts.Offset()).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

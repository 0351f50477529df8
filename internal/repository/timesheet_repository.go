package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"timesheet-service/internal/model"
	"timesheet-service/internal/timesheet"
	"timesheet-service/prometheus"
)

// TenantStore is the GORM-backed store behind the aggregation engine.
// Every query it issues is scoped to one tenant, so a store instance is
// built per request from the caller's token.
type TenantStore struct {
	db       *gorm.DB
	tenantID uint
}

// NewTenantStore returns a store scoped to the given tenant.
func NewTenantStore(db *gorm.DB, tenantID uint) *TenantStore {
	return &TenantStore{db: db, tenantID: tenantID}
}

// unscopedMembers preloads member relations including soft-deleted rows,
// so historical attribution survives member removal.
func unscopedMembers(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// FindMember returns a non-deleted member of the tenant, or (nil, nil).
func (s *TenantStore) FindMember(ctx context.Context, memberID uint) (*model.Member, error) {
	defer prometheus.TrackDBOperation("find_member")(time.Now())

	var member model.Member
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", s.tenantID).
		First(&member, memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindProjectByID returns a project with its client and full team
// preloaded, or (nil, nil).
func (s *TenantStore) FindProjectByID(ctx context.Context, projectID uint) (*model.Project, error) {
	defer prometheus.TrackDBOperation("find_project")(time.Now())

	var project model.Project
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("TeamMembers", unscopedMembers).
		Where("tenant_id = ?", s.tenantID).
		First(&project, projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindProjectsByMember returns the projects whose team includes the
// member.
func (s *TenantStore) FindProjectsByMember(ctx context.Context, memberID uint) ([]model.Project, error) {
	defer prometheus.TrackDBOperation("find_member_projects")(time.Now())

	var projects []model.Project
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("TeamMembers", unscopedMembers).
		Joins("JOIN project_team_members ptm ON ptm.project_id = projects.id").
		Where("projects.tenant_id = ? AND ptm.member_id = ?", s.tenantID, memberID).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FindTasksByProject returns the project's tasks in ascending ID order
// with logs and assignees preloaded. An empty status keeps all statuses.
func (s *TenantStore) FindTasksByProject(ctx context.Context, projectID uint, status string) ([]model.Task, error) {
	defer prometheus.TrackDBOperation("find_project_tasks")(time.Now())

	query := s.db.WithContext(ctx).
		Preload("TimeLogs").
		Preload("Assignees", unscopedMembers).
		Where("tenant_id = ? AND project_id = ?", s.tenantID, projectID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []model.Task
	if err := query.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindTasksByTenant returns every task of the tenant with logs
// preloaded. The daily breakdown runs over this set.
func (s *TenantStore) FindTasksByTenant(ctx context.Context, tenantID uint) ([]model.Task, error) {
	defer prometheus.TrackDBOperation("find_tenant_tasks")(time.Now())

	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Preload("TimeLogs").
		Where("tenant_id = ?", tenantID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindMembersByIDs returns members by ID, soft-deleted ones included.
func (s *TenantStore) FindMembersByIDs(ctx context.Context, memberIDs []uint) ([]model.Member, error) {
	defer prometheus.TrackDBOperation("find_members_by_ids")(time.Now())

	var members []model.Member
	err := s.db.WithContext(ctx).Unscoped().
		Where("tenant_id = ? AND id IN ?", s.tenantID, memberIDs).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindApprovalTypes returns the tenant's approval type labels.
func (s *TenantStore) FindApprovalTypes(ctx context.Context, tenantID uint) ([]model.ApprovalType, error) {
	defer prometheus.TrackDBOperation("find_approval_types")(time.Now())

	var types []model.ApprovalType
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// FindProjectForLogging returns the bare project row for write-path
// validation, or (nil, nil).
func (s *TenantStore) FindProjectForLogging(ctx context.Context, tenantID, projectID uint) (*model.Project, error) {
	defer prometheus.TrackDBOperation("find_project_for_logging")(time.Now())

	var project model.Project
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&project, projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindTaskForLogging returns the task with logs and assignees for
// write-path validation, or (nil, nil).
func (s *TenantStore) FindTaskForLogging(ctx context.Context, projectID, taskID uint) (*model.Task, error) {
	defer prometheus.TrackDBOperation("find_task_for_logging")(time.Now())

	var task model.Task
	err := s.db.WithContext(ctx).
		Preload("TimeLogs").
		Preload("Assignees", unscopedMembers).
		Where("project_id = ?", projectID).
		First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// InsertTimeLog creates the log and moves the task to in progress in
// one transaction.
func (s *TenantStore) InsertTimeLog(ctx context.Context, taskID uint, log *model.TimeLog) error {
	defer prometheus.TrackDBOperation("insert_time_log")(time.Now())

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}
		return tx.Model(&model.Task{}).
			Where("id = ?", taskID).
			Update("status", model.TaskStatusInProgress).Error
	})
}

// UpdateTimeLog rewrites an existing log of the task.
func (s *TenantStore) UpdateTimeLog(ctx context.Context, taskID, logID uint, log *model.TimeLog) error {
	defer prometheus.TrackDBOperation("update_time_log")(time.Now())

	result := s.db.WithContext(ctx).
		Model(&model.TimeLog{}).
		Where("id = ? AND task_id = ?", logID, taskID).
		Updates(map[string]interface{}{
			"date":             log.Date,
			"actual_minutes":   log.ActualMinutes,
			"billable_minutes": log.BillableMinutes,
			"note":             log.Note,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return timesheet.ErrInvalidLogID
	}
	return nil
}

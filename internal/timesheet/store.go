package timesheet

import (
	"context"

	"timesheet-service/internal/model"
)

// Store is the read side of the storage collaborator: named repository
// methods returning typed collections, composed by the aggregator.
// Single-object lookups return (nil, nil) when no row matches; errors
// are storage failures only and are propagated unmodified.
type Store interface {
	// FindMember returns a non-deleted member by ID.
	FindMember(ctx context.Context, memberID uint) (*model.Member, error)

	// FindProjectByID returns a non-deleted project with its Client and
	// TeamMembers (including soft-deleted members) preloaded.
	FindProjectByID(ctx context.Context, projectID uint) (*model.Project, error)

	// FindProjectsByMember returns the non-deleted projects whose team
	// includes the member, with Client and TeamMembers preloaded.
	FindProjectsByMember(ctx context.Context, memberID uint) ([]model.Project, error)

	// FindTasksByProject returns the non-deleted tasks of a project in
	// ascending ID order, with TimeLogs and Assignees preloaded. An
	// empty status keeps all statuses.
	FindTasksByProject(ctx context.Context, projectID uint, status string) ([]model.Task, error)

	// FindTasksByTenant returns all non-deleted tasks of a tenant with
	// TimeLogs preloaded.
	FindTasksByTenant(ctx context.Context, tenantID uint) ([]model.Task, error)

	// FindMembersByIDs returns members by ID including soft-deleted
	// ones, so historical log attribution survives member removal.
	FindMembersByIDs(ctx context.Context, memberIDs []uint) ([]model.Member, error)

	// FindApprovalTypes returns the tenant's approval type labels.
	FindApprovalTypes(ctx context.Context, tenantID uint) ([]model.ApprovalType, error)
}

// LogStore is the write side used by the incidental time-log path.
type LogStore interface {
	// FindProjectForLogging returns a non-deleted project scoped by
	// tenant, without relations.
	FindProjectForLogging(ctx context.Context, tenantID, projectID uint) (*model.Project, error)

	// FindTaskForLogging returns a non-deleted task of the project with
	// TimeLogs and Assignees preloaded.
	FindTaskForLogging(ctx context.Context, projectID, taskID uint) (*model.Task, error)

	// InsertTimeLog appends a log to the task and moves the task to
	// in_progress.
	InsertTimeLog(ctx context.Context, taskID uint, log *model.TimeLog) error

	// UpdateTimeLog rewrites an existing log of the task.
	UpdateTimeLog(ctx context.Context, taskID, logID uint, log *model.TimeLog) error
}

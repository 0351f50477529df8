package timesheet

import (
	"context"
	"time"

	"timesheet-service/internal/model"
)

// LogInput carries one time log submission, insert or edit.
type LogInput struct {
	TenantID        uint
	ProjectID       uint
	TaskID          uint
	Date            time.Time
	ActualHours     string
	BillableMinutes int
	Note            string
	LoggedBy        string
	CreatorID       uint
}

// LogWriter validates and persists time log submissions.
type LogWriter struct {
	store LogStore
	conv  Converter
}

// NewLogWriter wires the writer with its store and converter.
func NewLogWriter(store LogStore, conv Converter) *LogWriter {
	return &LogWriter{store: store, conv: conv}
}

// Save inserts a new log (logID zero) or rewrites an existing one.
// Members may only log against active projects that allow task
// additions, on open or in-progress tasks they are assigned to or
// created. The task's billable cap is enforced on insert only; edits do
// not recompute historical over-runs.
func (w *LogWriter) Save(ctx context.Context, in LogInput, logID uint) error {
	project, err := w.store.FindProjectForLogging(ctx, in.TenantID, in.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrInvalidProjectID
	}
	if !project.Active {
		return ErrProjectInactive
	}
	if in.LoggedBy == model.CreatorTypeMember && !project.AddTasks {
		return ErrMemberCannotAddLog
	}

	task, err := w.store.FindTaskForLogging(ctx, in.ProjectID, in.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrInvalidTaskID
	}
	if task.Status == model.TaskStatusClosed {
		return ErrTaskClosed
	}
	if in.LoggedBy == model.CreatorTypeMember && !task.HasAssignee(in.CreatorID) && task.CreatorID != in.CreatorID {
		return ErrInvalidMemberID
	}

	actualMinutes, err := w.conv.DisplayToMinutes(in.ActualHours)
	if err != nil {
		return err
	}

	log := &model.TimeLog{
		TaskID:          in.TaskID,
		Date:            in.Date,
		ActualMinutes:   actualMinutes,
		BillableMinutes: in.BillableMinutes,
		Note:            in.Note,
		LoggedBy:        in.LoggedBy,
		CreatorID:       in.CreatorID,
	}

	if logID != 0 {
		return w.store.UpdateTimeLog(ctx, in.TaskID, logID, log)
	}

	if task.LoggedBillableMinutes()+in.BillableMinutes > task.BillableMinutes {
		return ErrBillableExceedsTask
	}
	return w.store.InsertTimeLog(ctx, in.TaskID, log)
}

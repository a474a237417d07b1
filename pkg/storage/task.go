package storage

import (
	"context"

	"taskhub/pkg/domain"
)

// TaskFilter narrows and pages a task listing. The zero value lists
// everything from the beginning; implementations may cap Limit.
type TaskFilter struct {
	// Completed, when non-nil, restricts the listing to tasks with the given
	// completion state.
	Completed *bool
	// Limit is the maximum number of rows to return. Zero means no limit.
	Limit uint
	// Offset is the number of rows to skip before returning results.
	Offset uint
}

// TaskStorage defines CRUD and query operations related to tasks. Listings
// are always scoped to the owning user. Absent rows are reported as
// (nil, nil).
type TaskStorage interface {
	// StoreTask inserts a task and returns the stored row as it exists in the
	// database.
	StoreTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	// TaskByID fetches a task by ID regardless of owner. Returns nil when not
	// found. Ownership checks are the caller's responsibility so that a foreign
	// task can be distinguished from a missing one.
	TaskByID(ctx context.Context, id domain.TaskID) (*domain.Task, error)
	// UserTasks returns a page of the given user's tasks. Completed-filtered
	// listings with Completed=true are ordered by updated_at descending; all
	// other listings by created_at descending.
	UserTasks(ctx context.Context, userID domain.UserID, filter TaskFilter) ([]domain.Task, error)
	// UpdateTask persists the mutable fields of the given task and returns the
	// updated row, or nil when the task no longer exists.
	UpdateTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	// DeleteTask removes a task. It reports whether a row was actually deleted.
	DeleteTask(ctx context.Context, id domain.TaskID) (bool, error)
	// CountUserTasks returns the total number of tasks owned by the given user,
	// ignoring any completion filter.
	CountUserTasks(ctx context.Context, userID domain.UserID) (int64, error)
}

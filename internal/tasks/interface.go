package tasks

import (
	"context"

	"taskhub/pkg/domain"
)

// TaskPage is one page of a user's task listing.
type TaskPage struct {
	// Tasks is the page of tasks, newest first.
	Tasks []domain.Task
	// TotalCount is the user's total number of tasks, regardless of the
	// completion filter.
	TotalCount uint
	// Page is the 1-based page number that was requested.
	Page uint
	// PageSize is the page size that was requested.
	PageSize uint
	// HasNext reports whether another page exists after this one.
	HasNext bool
}

// Updates describes a partial task update. Nil fields are left unchanged; an
// empty Description clears it.
type Updates struct {
	Title       *string
	Description *string
	Completed   *bool
}

//go:generate mockgen -package mocktasks -source=interface.go -destination=mock/mocktasks.go *
type Tasks interface {
	Create(ctx context.Context, userID domain.UserID, title, description string) (*domain.Task, error)
	Task(ctx context.Context, userID domain.UserID, taskID domain.TaskID) (*domain.Task, error)
	UserTasks(ctx context.Context, userID domain.UserID, page, pageSize uint, completed *bool) (*TaskPage, error)
	Update(ctx context.Context, userID domain.UserID, taskID domain.TaskID, updates Updates) (*domain.Task, error)
	Delete(ctx context.Context, userID domain.UserID, taskID domain.TaskID) error
}

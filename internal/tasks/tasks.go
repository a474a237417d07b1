package tasks

import (
	"context"
	"fmt"

	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
	"taskhub/pkg/storage"
)

const (
	// DefaultPageSize is the page size used when the caller does not specify
	// one.
	DefaultPageSize = 20
	// MaxPageSize is the largest accepted page size.
	MaxPageSize = 100
)

// tasks is the concrete implementation of the Tasks interface. It coordinates
// persistence with the storage layer and enforces task ownership.
type tasks struct {
	// storage is the persistence layer used to store and look up tasks.
	storage storage.Storage
}

// Create stores a new pending task for the given user.
func (t *tasks) Create(ctx context.Context,
	userID domain.UserID,
	title, description string) (*domain.Task, error) {
	task, err := domain.NewTask(userID, title, description)
	if err != nil {
		return nil, err
	}

	stored, err := t.storage.StoreTask(ctx, *task)
	if err != nil {
		return nil, fmt.Errorf("could not store task: %w", err)
	}

	return stored, nil
}

// Task fetches a single task by ID on behalf of the given user. A missing
// task yields a not-found error; a task owned by someone else yields a
// permission error. Existence is checked before ownership, so the two cases
// stay distinguishable.
func (t *tasks) Task(ctx context.Context, userID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	return t.ownedTask(ctx, userID, taskID)
}

// UserTasks returns one page of the user's tasks, optionally filtered by
// completion status. Completed listings are ordered by most recent update;
// everything else by creation time, newest first.
func (t *tasks) UserTasks(ctx context.Context,
	userID domain.UserID,
	page, pageSize uint,
	completed *bool) (*TaskPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	offset := (page - 1) * pageSize

	list, err := t.storage.UserTasks(ctx, userID, storage.TaskFilter{
		Completed: completed,
		Limit:     pageSize,
		Offset:    offset,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get user tasks: %w", err)
	}

	count, err := t.storage.CountUserTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not count user tasks: %w", err)
	}
	total := uint(count) //nolint: gosec

	return &TaskPage{
		Tasks:      list,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		HasNext:    offset+pageSize < total,
	}, nil
}

// Update applies a partial update to a task owned by the given user. Nil
// fields are left untouched; setting Description to the empty string clears
// it.
func (t *tasks) Update(ctx context.Context,
	userID domain.UserID,
	taskID domain.TaskID,
	updates Updates) (*domain.Task, error) {
	task, err := t.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if err := task.UpdateTitle(*updates.Title); err != nil {
			return nil, err
		}
	}
	if updates.Description != nil {
		if err := task.UpdateDescription(*updates.Description); err != nil {
			return nil, err
		}
	}
	if updates.Completed != nil {
		if *updates.Completed {
			task.MarkCompleted()
		} else {
			task.MarkIncomplete()
		}
	}

	updated, err := t.storage.UpdateTask(ctx, *task)
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Task not found")
	}

	return updated, nil
}

// Delete removes a task owned by the given user.
func (t *tasks) Delete(ctx context.Context, userID domain.UserID, taskID domain.TaskID) error {
	task, err := t.ownedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	deleted, err := t.storage.DeleteTask(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "Task not found")
	}

	return nil
}

// ownedTask fetches a task and verifies it belongs to the given user.
func (t *tasks) ownedTask(ctx context.Context, userID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	task, err := t.storage.TaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}
	if task == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Task not found")
	}
	if !task.BelongsTo(userID) {
		return nil, serrors.With(serrors.ErrPermissionDenied, "Access denied")
	}

	return task, nil
}

// New creates a new Tasks instance backed by the provided storage.
func New(storage storage.Storage) Tasks {
	return &tasks{storage: storage}
}

package postgres

import (
	"context"
	"fmt"

	"taskhub/pkg/domain"
	"taskhub/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const tasksTable = "tasks"

func (p *PgSQL) StoreTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	var pgTask PgTask
	pgTask.FromDomain(task)

	var row PgTask
	found, err := p.Builder.Insert(tasksTable).
		Rows(pgTask).
		Returning(&PgTask{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store task into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store task into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// TaskByID fetches a task by ID regardless of owner. Returns nil when not
// found.
func (p *PgSQL) TaskByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	var row PgTask
	found, err := p.Builder.From(tasksTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch task by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserTasks returns a page of the given user's tasks. Listings filtered to
// completed tasks are ordered by updated_at descending so the most recently
// finished tasks come first; everything else by created_at descending.
func (p *PgSQL) UserTasks(ctx context.Context,
	userID domain.UserID,
	filter storage.TaskFilter) ([]domain.Task, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	order := goqu.I("created_at").Desc()
	if filter.Completed != nil {
		w = append(w, goqu.I("completed").Eq(*filter.Completed))
		if *filter.Completed {
			order = goqu.I("updated_at").Desc()
		}
	}

	ds := p.Builder.From(tasksTable).
		Where(w...).
		Order(order, goqu.I("id").Desc()).
		Offset(filter.Offset)
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgTask
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user tasks from pg: %w", err)
	}

	return pgTasksToDomain(rows), nil
}

// UpdateTask persists the mutable fields of the given task and returns the
// updated row, or nil when the task no longer exists.
func (p *PgSQL) UpdateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	var pgTask PgTask
	pgTask.FromDomain(task)

	var row PgTask
	found, err := p.Builder.Update(tasksTable).
		Set(goqu.Record{
			"title":       pgTask.Title,
			"description": pgTask.Description,
			"completed":   pgTask.Completed,
			"updated_at":  pgTask.UpdatedAt,
		}).
		Where(goqu.I("id").Eq(pgTask.ID)).
		Returning(&PgTask{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteTask removes a task row. It reports whether a row was deleted.
func (p *PgSQL) DeleteTask(ctx context.Context, id domain.TaskID) (bool, error) {
	res, err := p.Builder.From(tasksTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Delete().
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete task in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

// CountUserTasks returns the total number of tasks owned by the given user.
func (p *PgSQL) CountUserTasks(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(tasksTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count user tasks: %w", err)
	}

	return count, nil
}

package postgres

import (
	"database/sql"
	"time"

	"taskhub/pkg/domain"

	"github.com/google/uuid"
)

// PgUser is the database representation of a user row. IDs and creation
// timestamps are generated in the domain layer, so every column is written on
// insert.
type PgUser struct {
	ID             uuid.UUID    `db:"id"`
	Email          string       `db:"email"`
	Username       string       `db:"username"`
	HashedPassword string       `db:"hashed_password"`
	IsActive       bool         `db:"is_active"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      sql.NullTime `db:"updated_at"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:             domain.UserID(p.ID),
		Email:          domain.Email(p.Email),
		Username:       p.Username,
		HashedPassword: p.HashedPassword,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(user.ID),
		Email:          user.Email.String(),
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  user.UpdatedAt,
			Valid: !user.UpdatedAt.IsZero(),
		},
	}
}

// PgTask is the database representation of a task row. The description is
// NULL when the task has none.
type PgTask struct {
	ID          uuid.UUID      `db:"id"`
	UserID      uuid.UUID      `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}

func (p *PgTask) ToDomain() *domain.Task {
	return &domain.Task{
		ID:          domain.TaskID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Title:       p.Title,
		Description: p.Description.String,
		Completed:   p.Completed,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgTask) FromDomain(task domain.Task) {
	*p = PgTask{
		ID:     uuid.UUID(task.ID),
		UserID: uuid.UUID(task.UserID),
		Title:  task.Title,
		Description: sql.NullString{
			String: task.Description,
			Valid:  task.Description != "",
		},
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  task.UpdatedAt,
			Valid: !task.UpdatedAt.IsZero(),
		},
	}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].ToDomain())
	}

	return out
}

func pgTasksToDomain(tasks []PgTask) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for i := range tasks {
		out = append(out, *tasks[i].ToDomain())
	}

	return out
}

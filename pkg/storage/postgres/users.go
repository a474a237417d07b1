package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskhub/pkg/domain"
	"taskhub/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const usersTable = "users"

// translateUserConstraint maps a unique-violation on the users table to the
// storage-level sentinel for the violated column. Other errors pass through.
func translateUserConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return storage.ErrEmailExists
		case strings.Contains(pgErr.ConstraintName, "username"):
			return storage.ErrUsernameExists
		}
	}

	return err
}

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var pgUser PgUser
	pgUser.FromDomain(user)

	var row PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(pgUser).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if translated := translateUserConstraint(err); translated != err {
			return nil, translated
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store user into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// UserByID fetches a user by ID. Returns nil when not found.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByEmail fetches a user by email address. Returns nil when not found.
func (p *PgSQL) UserByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email.String())).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByUsername fetches a user by username. Returns nil when not found.
func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by username: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// EmailTaken reports whether a user with the given email exists.
func (p *PgSQL) EmailTaken(ctx context.Context, email domain.Email) (bool, error) {
	count, err := p.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email.String())).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count users by email: %w", err)
	}

	return count > 0, nil
}

// UsernameTaken reports whether a user with the given username exists.
func (p *PgSQL) UsernameTaken(ctx context.Context, username string) (bool, error) {
	count, err := p.Builder.From(usersTable).
		Where(goqu.I("username").Eq(username)).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count users by username: %w", err)
	}

	return count > 0, nil
}

// UpdateUser persists the mutable fields of the given user and returns the
// updated row, or nil when the user no longer exists.
func (p *PgSQL) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var pgUser PgUser
	pgUser.FromDomain(user)

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"email":           pgUser.Email,
			"username":        pgUser.Username,
			"hashed_password": pgUser.HashedPassword,
			"is_active":       pgUser.IsActive,
			"updated_at":      pgUser.UpdatedAt,
		}).
		Where(goqu.I("id").Eq(pgUser.ID)).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if translated := translateUserConstraint(err); translated != err {
			return nil, translated
		}

		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteUser removes a user row. Owned tasks are removed by the cascading
// foreign key.
func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	res, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Delete().
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete user in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

// Users returns a page of users ordered by creation time descending.
func (p *PgSQL) Users(ctx context.Context, limit, offset uint) ([]domain.User, error) {
	ds := p.Builder.From(usersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(offset)
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgUser
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}

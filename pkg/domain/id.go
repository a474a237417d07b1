package domain

import (
	"github.com/google/uuid"

	"taskhub/pkg/serrors"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// NewUserID generates a new random user identifier.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID parses a textual UUID into a UserID. Malformed input yields a
// validation error.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid user id: %q", s)
	}

	return UserID(id), nil
}

// String returns the canonical UUID text representation.
func (id UserID) String() string { return uuid.UUID(id).String() }

// TaskID uniquely identifies a task.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type TaskID uuid.UUID

// NewTaskID generates a new random task identifier.
func NewTaskID() TaskID { return TaskID(uuid.New()) }

// ParseTaskID parses a textual UUID into a TaskID. Malformed input yields a
// validation error.
func ParseTaskID(s string) (TaskID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid task id: %q", s)
	}

	return TaskID(id), nil
}

// String returns the canonical UUID text representation.
func (id TaskID) String() string { return uuid.UUID(id).String() }

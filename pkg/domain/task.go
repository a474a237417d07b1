package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"taskhub/pkg/serrors"
)

const (
	// MaxTaskTitleLength is the maximum title length in runes after trimming.
	MaxTaskTitleLength = 200
	// MaxTaskDescriptionLength is the maximum description length in runes after trimming.
	MaxTaskDescriptionLength = 1000
)

// Task is a single to-do item owned by exactly one user. The owner reference
// never changes; everything else is mutated through the methods below, which
// validate before writing so a failed call leaves the task untouched.
type Task struct {
	// ID is the unique identifier of the task.
	ID TaskID
	// UserID references the owning user. Ownership checks go through BelongsTo.
	UserID UserID

	// Title is the trimmed task title, 1 to 200 runes.
	Title string
	// Description is the trimmed optional description, up to 1000 runes.
	// Empty means no description (stored as NULL).
	Description string
	// Completed reports whether the task is done.
	Completed bool

	// CreatedAt is the time the task was created.
	CreatedAt time.Time
	// UpdatedAt is the time of the last mutation; zero value means never updated.
	UpdatedAt time.Time
}

// NewTask creates a task for the given owner with a fresh identifier and
// creation timestamp. Title and description are validated as in UpdateTitle
// and UpdateDescription.
func NewTask(userID UserID, title, description string) (*Task, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	description, err = normalizeDescription(description)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:          NewTaskID(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// UpdateTitle replaces the title after trimming. Empty or longer than 200
// runes is a validation error and leaves the task unchanged.
func (t *Task) UpdateTitle(title string) error {
	title, err := normalizeTitle(title)
	if err != nil {
		return err
	}

	t.Title = title
	t.touch()

	return nil
}

// UpdateDescription replaces the description after trimming. An empty result
// clears the description; longer than 1000 runes is a validation error and
// leaves the task unchanged.
func (t *Task) UpdateDescription(description string) error {
	description, err := normalizeDescription(description)
	if err != nil {
		return err
	}

	t.Description = description
	t.touch()

	return nil
}

// MarkCompleted marks the task as done. Calling it on an already completed
// task is a no-op and does not bump UpdatedAt.
func (t *Task) MarkCompleted() {
	if t.Completed {
		return
	}

	t.Completed = true
	t.touch()
}

// MarkIncomplete marks the task as not done. Calling it on an already
// incomplete task is a no-op and does not bump UpdatedAt.
func (t *Task) MarkIncomplete() {
	if !t.Completed {
		return
	}

	t.Completed = false
	t.touch()
}

// BelongsTo reports whether the task is owned by the given user. It is a pure
// predicate; the presentation layer consults it before allowing access.
func (t *Task) BelongsTo(userID UserID) bool {
	return t.UserID == userID
}

func (t *Task) touch() {
	t.UpdatedAt = time.Now().UTC()
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", serrors.With(serrors.ErrInvalidArgument, "task title cannot be empty")
	}
	if utf8.RuneCountInString(title) > MaxTaskTitleLength {
		return "", serrors.With(serrors.ErrInvalidArgument,
			"task title cannot exceed %d characters", MaxTaskTitleLength)
	}

	return title, nil
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxTaskDescriptionLength {
		return "", serrors.With(serrors.ErrInvalidArgument,
			"task description cannot exceed %d characters", MaxTaskDescriptionLength)
	}

	return description, nil
}

package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"taskhub/internal/tasks"
	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
)

type createTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// OptionalString distinguishes an absent JSON field from an explicit null.
// Set is true when the field appeared in the payload at all; Value is nil for
// an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked for fields present in the payload, which is
// what makes the absent/null distinction observable.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true

	return json.Unmarshal(data, &o.Value)
}

type updateTaskRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=1,max=200"`
	Description OptionalString `json:"description"`
	Completed   *bool          `json:"completed"`
}

type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type taskListResponse struct {
	Tasks      []taskResponse `json:"tasks"`
	TotalCount uint           `json:"total_count"`
	Page       uint           `json:"page"`
	PageSize   uint           `json:"page_size"`
	HasNext    bool           `json:"has_next"`
}

func newTaskResponse(task *domain.Task) taskResponse {
	resp := taskResponse{
		ID:        task.ID.String(),
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
	if task.Description != "" {
		resp.Description = &task.Description
	}
	if !task.UpdatedAt.IsZero() {
		resp.UpdatedAt = &task.UpdatedAt
	}

	return resp
}

// ListTasks returns one page of the authenticated user's tasks, optionally
// filtered by completion status.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	query := r.URL.Query()

	page, ok := queryUint(w, r, query.Get("page"), "page", 1)
	if !ok {
		return
	}
	pageSize, ok := queryUint(w, r, query.Get("page_size"), "page_size", tasks.DefaultPageSize)
	if !ok {
		return
	}
	if page < 1 || pageSize < 1 || pageSize > tasks.MaxPageSize {
		writeError(w, r, serrors.With(serrors.ErrInvalidArgument, "Invalid pagination parameters"))

		return
	}

	var completed *bool
	if raw := query.Get("completed"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, serrors.With(serrors.ErrInvalidArgument, "Invalid completed parameter"))

			return
		}
		completed = &value
	}

	result, err := h.deps.Tasks.UserTasks(r.Context(), user.ID, page, pageSize, completed)
	if err != nil {
		writeError(w, r, err)

		return
	}

	list := make([]taskResponse, 0, len(result.Tasks))
	for i := range result.Tasks {
		list = append(list, newTaskResponse(&result.Tasks[i]))
	}

	writeJSON(w, http.StatusOK, taskListResponse{
		Tasks:      list,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		HasNext:    result.HasNext,
	})
}

// CreateTask stores a new pending task for the authenticated user.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req createTaskRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	task, err := h.deps.Tasks.Create(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, newTaskResponse(task))
}

// GetTask returns a single task owned by the authenticated user.
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.deps.Tasks.Task(r.Context(), user.ID, taskID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newTaskResponse(task))
}

// UpdateTask applies a partial update to a task owned by the authenticated
// user. Omitted fields keep their values; a null description clears it.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	updates := tasks.Updates{
		Title:     req.Title,
		Completed: req.Completed,
	}
	if req.Description.Set {
		description := ""
		if req.Description.Value != nil {
			description = *req.Description.Value
		}
		updates.Description = &description
	}

	task, err := h.deps.Tasks.Update(r.Context(), user.ID, taskID, updates)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newTaskResponse(task))
}

// DeleteTask removes a task owned by the authenticated user.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	if err := h.deps.Tasks.Delete(r.Context(), user.ID, taskID); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathTaskID parses the {id} path segment, writing a 400 response for
// malformed IDs.
func pathTaskID(w http.ResponseWriter, r *http.Request) (domain.TaskID, bool) {
	taskID, err := domain.ParseTaskID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrInvalidArgument, "Invalid task ID"))

		return domain.TaskID{}, false
	}

	return taskID, true
}

// queryUint parses an optional positive integer query parameter.
func queryUint(w http.ResponseWriter, r *http.Request, raw, name string, fallback uint) (uint, bool) {
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrInvalidArgument, "Invalid %s parameter", name))

		return 0, false
	}

	return uint(value), true
}

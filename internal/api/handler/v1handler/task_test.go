package v1handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"taskhub/internal/tasks"
	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
)

// expectAuth wires the security handler to accept "token" and resolve it to
// the given user.
func (e *testEnv) expectAuth(user *domain.User) {
	e.auth.EXPECT().Authenticate(gomock.Any(), "token").Return(user, nil)
}

func newTaskFor(t *testing.T, user *domain.User) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(user.ID, "buy milk", "2 liters")
	require.NoError(t, err)

	return task
}

func TestListTasks(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)
	task := newTaskFor(t, user)
	env.expectAuth(user)

	env.tasks.EXPECT().UserTasks(gomock.Any(), user.ID, uint(2), uint(10), nil).
		Return(&tasks.TaskPage{
			Tasks:      []domain.Task{*task},
			TotalCount: 25,
			Page:       2,
			PageSize:   10,
			HasNext:    true,
		}, nil)

	rec := env.do(http.MethodGet, "/v1/tasks?page=2&page_size=10", "", authHeader("token"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.EqualValues(t, 25, body["total_count"])
	require.EqualValues(t, 2, body["page"])
	require.EqualValues(t, 10, body["page_size"])
	require.Equal(t, true, body["has_next"])

	list, ok := body["tasks"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	item, ok := list[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "buy milk", item["title"])
	require.Equal(t, "2 liters", item["description"])
}

func TestListTasks_CompletedFilter(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)
	env.expectAuth(user)

	completed := true
	env.tasks.EXPECT().UserTasks(gomock.Any(), user.ID, uint(1), uint(tasks.DefaultPageSize), &completed).
		Return(&tasks.TaskPage{Page: 1, PageSize: tasks.DefaultPageSize}, nil)

	rec := env.do(http.MethodGet, "/v1/tasks?completed=true", "", authHeader("token"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	list, ok := body["tasks"].([]any)
	require.True(t, ok)
	// empty pages serialize as an empty array, not null
	require.Empty(t, list)
}

func TestListTasks_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "page zero", target: "/v1/tasks?page=0"},
		{name: "page not a number", target: "/v1/tasks?page=abc"},
		{name: "page size zero", target: "/v1/tasks?page_size=0"},
		{name: "page size too large", target: "/v1/tasks?page_size=101"},
		{name: "bad completed", target: "/v1/tasks?completed=banana"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			user := newActiveUser(t)
			env.expectAuth(user)

			rec := env.do(http.MethodGet, tc.target, "", authHeader("token"))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateTask(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)
	task := newTaskFor(t, user)
	env.expectAuth(user)

	env.tasks.EXPECT().Create(gomock.Any(), user.ID, "buy milk", "2 liters").Return(task, nil)

	rec := env.do(http.MethodPost, "/v1/tasks",
		`{"title":"buy milk","description":"2 liters"}`, authHeader("token"))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, task.ID.String(), body["id"])
	require.Equal(t, "buy milk", body["title"])
	require.Equal(t, false, body["completed"])
}

func TestCreateTask_Validation(t *testing.T) {
	longTitle := strings.Repeat("a", 201)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"description":"x"}`},
		{name: "empty title", body: `{"title":""}`},
		{name: "title too long", body: fmt.Sprintf(`{"title":%q}`, longTitle)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			user := newActiveUser(t)
			env.expectAuth(user)

			rec := env.do(http.MethodPost, "/v1/tasks", tc.body, authHeader("token"))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetTask(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)
	task := newTaskFor(t, user)
	env.expectAuth(user)

	env.tasks.EXPECT().Task(gomock.Any(), user.ID, task.ID).Return(task, nil)

	rec := env.do(http.MethodGet, "/v1/tasks/"+task.ID.String(), "", authHeader("token"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, task.ID.String(), body["id"])
}

func TestGetTask_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(t)
		user := newActiveUser(t)
		env.expectAuth(user)

		rec := env.do(http.MethodGet, "/v1/tasks/not-a-uuid", "", authHeader("token"))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, "Invalid task ID", body["error"])
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)
		user := newActiveUser(t)
		env.expectAuth(user)
		taskID := domain.NewTaskID()

		env.tasks.EXPECT().Task(gomock.Any(), user.ID, taskID).
			Return(nil, serrors.With(serrors.ErrNotFound, "Task not found"))

		rec := env.do(http.MethodGet, "/v1/tasks/"+taskID.String(), "", authHeader("token"))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("foreign task", func(t *testing.T) {
		env := newTestEnv(t)
		user := newActiveUser(t)
		env.expectAuth(user)
		taskID := domain.NewTaskID()

		env.tasks.EXPECT().Task(gomock.Any(), user.ID, taskID).
			Return(nil, serrors.With(serrors.ErrPermissionDenied, "Access denied"))

		rec := env.do(http.MethodGet, "/v1/tasks/"+taskID.String(), "", authHeader("token"))
		require.Equal(t, http.StatusForbidden, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, "Access denied", body["error"])
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("partial update leaves description untouched", func(t *testing.T) {
		env := newTestEnv(t)
		user := newActiveUser(t)
		task := newTaskFor(t, user)
		env.expectAuth(user)

		title := "new title"
		done := true
		env.tasks.EXPECT().Update(gomock.Any(), user.ID, task.ID, tasks.Updates{
			Title:     &title,
			Completed: &done,
		}).Return(task, nil)

		rec := env.do(http.MethodPut, "/v1/tasks/"+task.ID.String(),
			`{"title":"new title","completed":true}`, authHeader("token"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("null description clears it", func(t *testing.T) {
		env := newTestEnv(t)
		user := newActiveUser(t)
		task := newTaskFor(t, user)
		env.expectAuth(user)

		empty := ""
		env.tasks.EXPECT().Update(gomock.Any(), user.ID, task.ID, tasks.Updates{
			Description: &empty,
		}).Return(task, nil)

		rec := env.do(http.MethodPut, "/v1/tasks/"+task.ID.String(),
			`{"description":null}`, authHeader("token"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		env := newTestEnv(t)
		user := newActiveUser(t)
		task := newTaskFor(t, user)
		env.expectAuth(user)

		rec := env.do(http.MethodPut, "/v1/tasks/"+task.ID.String(),
			`{"title":""}`, authHeader("token"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)
	task := newTaskFor(t, user)
	env.expectAuth(user)

	env.tasks.EXPECT().Delete(gomock.Any(), user.ID, task.ID).Return(nil)

	rec := env.do(http.MethodDelete, "/v1/tasks/"+task.ID.String(), "", authHeader("token"))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestDeleteTask_NotFound(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)
	env.expectAuth(user)
	taskID := domain.NewTaskID()

	env.tasks.EXPECT().Delete(gomock.Any(), user.ID, taskID).
		Return(serrors.With(serrors.ErrNotFound, "Task not found"))

	rec := env.do(http.MethodDelete, "/v1/tasks/"+taskID.String(), "", authHeader("token"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

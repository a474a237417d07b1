// Package v1handler implements the version 1 REST API handlers for
// authentication and task management.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"taskhub/internal/auth"
	"taskhub/internal/tasks"
	"taskhub/pkg/logger"
	"taskhub/pkg/serrors"
)

// Deps holds the services the v1 handlers delegate to.
type Deps struct {
	// Auth implements registration, login and token workflows.
	Auth auth.Auth
	// Tasks implements the task management workflows.
	Tasks tasks.Tasks
}

// Handler serves the v1 API endpoints.
type Handler struct {
	deps     Deps
	validate *validator.Validate
}

// New creates a v1 Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		deps:     deps,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register mounts all v1 routes on the given mux. Protected routes are wrapped
// with the security handler.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("POST /v1/auth/signup", h.SignUp)
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/auth/refresh", h.RefreshToken)
	mux.HandleFunc("POST /v1/auth/logout", h.Logout)
	mux.Handle("GET /v1/auth/me", sec.Wrap(http.HandlerFunc(h.Me)))

	mux.Handle("GET /v1/tasks", sec.Wrap(http.HandlerFunc(h.ListTasks)))
	mux.Handle("POST /v1/tasks", sec.Wrap(http.HandlerFunc(h.CreateTask)))
	mux.Handle("GET /v1/tasks/{id}", sec.Wrap(http.HandlerFunc(h.GetTask)))
	mux.Handle("PUT /v1/tasks/{id}", sec.Wrap(http.HandlerFunc(h.UpdateTask)))
	mux.Handle("DELETE /v1/tasks/{id}", sec.Wrap(http.HandlerFunc(h.DeleteTask)))
}

// errorResponse is the JSON body returned for all error statuses.
type errorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`
	// Code is the machine-readable error kind.
	Code string `json:"code"`
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v and validates it. It writes an
// error response and returns false when the body is malformed or invalid.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Invalid request body",
			Code:  serrors.ErrInvalidArgument.Error(),
		})

		return false
	}

	if err := h.validate.Struct(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: err.Error(),
			Code:  serrors.ErrInvalidArgument.Error(),
		})

		return false
	}

	return true
}

// writeError maps a service error to an HTTP status and writes the error
// response. Unknown errors are logged and reported as internal.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *serrors.Error
	if !errors.As(err, &serr) {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "Internal server error",
			Code:  serrors.ErrInternal.Error(),
		})

		return
	}

	status := statusForKind(serr.Kind())
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		writeJSON(w, status, errorResponse{
			Error: "Internal server error",
			Code:  serrors.ErrInternal.Error(),
		})

		return
	}

	msg := serr.Message()
	if msg == "" {
		msg = serr.Kind().Error()
	}
	writeJSON(w, status, errorResponse{Error: msg, Code: serr.Kind().Error()})
}

func statusForKind(k serrors.Kind) int {
	switch k {
	case serrors.ErrInvalidArgument:
		return http.StatusBadRequest
	case serrors.ErrUnauthenticated:
		return http.StatusUnauthorized
	case serrors.ErrPermissionDenied:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package task

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/goals-api/internal/apperror"
	"github.com/saulo-duarte/goals-api/internal/config"
)

type Handler struct {
	service TaskService
}

func NewHandler(service TaskService) *Handler {
	return &Handler{service: service}
}

func titleOf(t *Task) string {
	if t.Title == nil {
		return ""
	}
	return *t.Title
}

// CreateTask godoc
// @Summary  Create a task
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    task body CreateTaskDTO true "Task"
// @Success  201 {object} map[string]TaskResponse
// @Failure  400 {object} map[string]string
// @Router   /tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, r, apperror.InvalidData())
		return
	}

	t, err := h.service.CreateTask(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]TaskResponse{"task": ToResponse(t)})
}

// ListTasks godoc
// @Summary  List tasks
// @Tags     tasks
// @Produce  json
// @Success  200 {array} TaskResponse
// @Router   /tasks [get]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListTasks(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, ToResponses(tasks))
}

// GetTask godoc
// @Summary  Get a task
// @Tags     tasks
// @Produce  json
// @Param    id path int true "Task ID"
// @Success  200 {object} map[string]TaskResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /tasks/{id} [get]
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]TaskResponse{"task": ToResponse(t)})
}

// UpdateTask godoc
// @Summary  Replace a task's details
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    id   path int           true "Task ID"
// @Param    task body UpdateTaskDTO true "Task"
// @Success  200 {object} map[string]TaskResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /tasks/{id} [put]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	// a body that does not decode is treated as one without a title so the
	// id is still checked first
	var dto UpdateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		dto = UpdateTaskDTO{}
	}

	t, err := h.service.UpdateTask(r.Context(), rawID, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]TaskResponse{"task": ToResponse(t)})
}

// DeleteTask godoc
// @Summary  Delete a task
// @Tags     tasks
// @Produce  json
// @Param    id path int true "Task ID"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /tasks/{id} [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.DeleteTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"details": fmt.Sprintf("Task %d \"%s\" successfully deleted", t.ID, titleOf(t)),
	})
}

package goal

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/goals-api/internal/apperror"
	"github.com/saulo-duarte/goals-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary  Create a goal
// @Tags     goals
// @Accept   json
// @Produce  json
// @Param    goal body CreateGoalDTO true "Goal"
// @Success  201 {object} map[string]GoalResponse
// @Failure  400 {object} map[string]string
// @Router   /goals [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, r, apperror.InvalidData())
		return
	}

	goal, err := h.service.CreateGoal(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]GoalResponse{"goal": ToResponse(goal)})
}

// List godoc
// @Summary  List goals
// @Tags     goals
// @Produce  json
// @Success  200 {array} GoalResponse
// @Router   /goals [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.ListGoals(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}

	responses := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, ToResponse(g))
	}
	config.JSON(w, http.StatusOK, responses)
}

// Get godoc
// @Summary  Get a goal
// @Tags     goals
// @Produce  json
// @Param    id path int true "Goal ID"
// @Success  200 {object} map[string]GoalResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /goals/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	goal, err := h.service.GetGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]GoalResponse{"goal": ToResponse(goal)})
}

// Update godoc
// @Summary  Replace a goal's details
// @Tags     goals
// @Accept   json
// @Produce  json
// @Param    id   path int           true "Goal ID"
// @Param    goal body UpdateGoalDTO true "Goal"
// @Success  200 {object} map[string]GoalResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /goals/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		dto = UpdateGoalDTO{}
	}

	goal, err := h.service.UpdateGoal(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]GoalResponse{"goal": ToResponse(goal)})
}

// Delete godoc
// @Summary  Delete a goal
// @Tags     goals
// @Produce  json
// @Param    id path int true "Goal ID"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /goals/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	goal, err := h.service.DeleteGoal(r.Context(), rawID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	// The id is echoed as the client wrote it.
	config.JSON(w, http.StatusOK, map[string]string{
		"details": fmt.Sprintf("Goal %s \"%s\" successfully deleted", rawID, goal.Title),
	})
}

// ReplaceTasks godoc
// @Summary  Set a goal's tasks
// @Tags     goals
// @Accept   json
// @Produce  json
// @Param    id    path int            true "Goal ID"
// @Param    tasks body AssignTasksDTO true "Task IDs"
// @Success  200 {object} GoalTaskIDsResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /goals/{id}/tasks [post]
func (h *Handler) ReplaceTasks(w http.ResponseWriter, r *http.Request) {
	h.assignTasks(w, r, ModeReplace)
}

// AddTasks godoc
// @Summary  Add tasks to a goal, keeping the ones it has
// @Tags     goals
// @Accept   json
// @Produce  json
// @Param    id    path int            true "Goal ID"
// @Param    tasks body AssignTasksDTO true "Task IDs"
// @Success  200 {object} GoalTaskIDsResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /goals/{id}/tasks [patch]
func (h *Handler) AddTasks(w http.ResponseWriter, r *http.Request) {
	h.assignTasks(w, r, ModeUnion)
}

func (h *Handler) assignTasks(w http.ResponseWriter, r *http.Request, mode AssociationMode) {
	var dto AssignTasksDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		dto = AssignTasksDTO{}
	}

	result, err := h.service.AssignTasks(r.Context(), chi.URLParam(r, "id"), dto, mode)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

// ListTasks godoc
// @Summary  Get a goal with its tasks
// @Tags     goals
// @Produce  json
// @Param    id path int true "Goal ID"
// @Success  200 {object} GoalTasksResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /goals/{id}/tasks [get]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	goal, err := h.service.GetGoalWithTasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, ToTasksResponse(goal))
}

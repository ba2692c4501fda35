package goal

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/saulo-duarte/goals-api/internal/task"
)

type CreateGoalDTO struct {
	Title *string `json:"title"`
}

type UpdateGoalDTO struct {
	Title *string `json:"title"`
}

// AssignTasksDTO carries task ids exactly as the client sent them: numbers
// or numeric strings are both accepted.
type AssignTasksDTO struct {
	TaskIDs []json.RawMessage `json:"task_ids"`
}

// RawTaskIDs returns each id as text, unquoting JSON strings. Integral JSON
// numbers written in float form (1.0, 1e0) are normalised to plain integers.
func (d AssignTasksDTO) RawTaskIDs() []string {
	ids := make([]string, 0, len(d.TaskIDs))
	for _, raw := range d.TaskIDs {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			ids = append(ids, s)
			continue
		}
		ids = append(ids, numberText(bytes.TrimSpace(raw)))
	}
	return ids
}

func numberText(raw []byte) string {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return string(raw)
	}
	if _, err := n.Int64(); err == nil {
		return n.String()
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return n.String()
	}
	return strconv.FormatInt(int64(f), 10)
}

type GoalResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type GoalTasksResponse struct {
	ID    int                 `json:"id"`
	Title string              `json:"title"`
	Tasks []task.TaskResponse `json:"tasks"`
}

type GoalTaskIDsResponse struct {
	ID      int   `json:"id"`
	TaskIDs []int `json:"task_ids"`
}

func ToResponse(g *Goal) GoalResponse {
	return GoalResponse{
		ID:    g.ID,
		Title: g.Title,
	}
}

func ToTasksResponse(g *Goal) GoalTasksResponse {
	tasks := make([]task.TaskResponse, 0, len(g.Tasks))
	for i := range g.Tasks {
		tasks = append(tasks, task.ToResponse(&g.Tasks[i]))
	}
	return GoalTasksResponse{
		ID:    g.ID,
		Title: g.Title,
		Tasks: tasks,
	}
}

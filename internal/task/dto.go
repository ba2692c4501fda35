package task

type CreateTaskDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskDTO replaces the task's details. Title is required, a missing
// description clears it.
type UpdateTaskDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type TaskResponse struct {
	ID          int     `json:"id"`
	GoalID      *int    `json:"goal_id,omitempty"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func ToResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		GoalID:      t.GoalID,
		Title:       t.Title,
		Description: t.Description,
	}
}

func ToResponses(tasks []*Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToResponse(t))
	}
	return responses
}

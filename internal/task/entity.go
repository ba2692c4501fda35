package task

type Task struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	GoalID      *int    `gorm:"index" json:"goal_id,omitempty"`
}

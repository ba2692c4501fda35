package goal

import "github.com/saulo-duarte/goals-api/internal/task"

type Goal struct {
	ID    int         `gorm:"primaryKey" json:"id"`
	Title string      `gorm:"not null" json:"title"`
	Tasks []task.Task `gorm:"foreignKey:GoalID" json:"-"`
}

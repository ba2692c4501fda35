package task

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/database"
)

type TaskContainer struct {
	Handler *Handler
	Service TaskService
	Repo    TaskRepository
}

func NewTaskContainer(db *gorm.DB, uow database.UnitOfWork) *TaskContainer {
	repo := NewRepository(db)
	service := NewService(repo, uow)
	handler := NewHandler(service)

	return &TaskContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}

package goal

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/database"
	"github.com/saulo-duarte/goals-api/internal/task"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, uow database.UnitOfWork, tasks *task.TaskContainer) *Container {
	repo := NewRepository(db)
	service := NewService(repo, tasks.Repo, tasks.Service, uow)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}

package container

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/config"
	"github.com/saulo-duarte/goals-api/internal/database"
	"github.com/saulo-duarte/goals-api/internal/goal"
	"github.com/saulo-duarte/goals-api/internal/router"
	"github.com/saulo-duarte/goals-api/internal/task"
)

type Container struct {
	Config        *config.Config
	DB            *gorm.DB
	TaskContainer *task.TaskContainer
	GoalContainer *goal.Container
	Router        *chi.Mux
}

// New connects to the database and wires every module. Callers own the
// returned container and must Close it.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	config.InitLogger(cfg.Log.Level, cfg.Log.Format)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	if cfg.Database.AutoMigrate {
		applied, err := database.Migrate(ctx, db)
		if err != nil {
			_ = database.Close(db)
			return nil, errors.Wrap(err, "auto-migrate")
		}
		config.WithContext(ctx).WithField("applied", applied).Info("Migrations applied")
	}

	return Build(cfg, db), nil
}

// Build wires modules over an already open database.
func Build(cfg *config.Config, db *gorm.DB) *Container {
	uow := database.NewUnitOfWork(db)

	taskContainer := task.NewTaskContainer(db, uow)
	goalContainer := goal.NewContainer(db, uow, taskContainer)

	r := router.New(router.RouterConfig{
		GoalHandler:    goalContainer.Handler,
		TaskHandler:    taskContainer.Handler,
		DB:             db,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	return &Container{
		Config:        cfg,
		DB:            db,
		TaskContainer: taskContainer,
		GoalContainer: goalContainer,
		Router:        r,
	}
}

func (c *Container) Close() error {
	return database.Close(c.DB)
}

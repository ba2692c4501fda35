package task

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/apperror"
	"github.com/saulo-duarte/goals-api/internal/config"
	"github.com/saulo-duarte/goals-api/internal/database"
)

type TaskService interface {
	CreateTask(ctx context.Context, dto CreateTaskDTO) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	GetTask(ctx context.Context, rawID string) (*Task, error)
	UpdateTask(ctx context.Context, rawID string, dto UpdateTaskDTO) (*Task, error)
	DeleteTask(ctx context.Context, rawID string) (*Task, error)

	// ValidateID resolves a task id as received from a client. It fails with
	// a validation error for non-integer input and a not-found error when no
	// task has that id.
	ValidateID(ctx context.Context, rawID string) (*Task, error)
}

type taskService struct {
	repo TaskRepository
	uow  database.UnitOfWork
}

func NewService(repo TaskRepository, uow database.UnitOfWork) TaskService {
	return &taskService{
		repo: repo,
		uow:  uow,
	}
}

// NotFound is the client-facing error for a task id with no row behind it.
func NotFound(id int) error {
	return apperror.NotFound("No task with ID %d. SORRY.", id)
}

func parseID(log logrus.FieldLogger, rawID string) (int, error) {
	id, err := apperror.ParseID(rawID)
	if err != nil {
		log.WithField("task_id", rawID).Warn("Invalid task ID")
		return 0, err
	}
	return id, nil
}

func (s *taskService) CreateTask(ctx context.Context, dto CreateTaskDTO) (*Task, error) {
	log := config.WithContext(ctx)

	if dto.Title == nil {
		log.Warn("Attempt to create task without title")
		return nil, apperror.InvalidData()
	}

	t := &Task{
		Title:       dto.Title,
		Description: dto.Description,
	}

	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, t)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	log.WithField("task_id", t.ID).Info("Task created successfully")
	return t, nil
}

func (s *taskService) ListTasks(ctx context.Context) ([]*Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list tasks")
		return nil, err
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, rawID string) (*Task, error) {
	return s.ValidateID(ctx, rawID)
}

func (s *taskService) ValidateID(ctx context.Context, rawID string) (*Task, error) {
	log := config.WithContext(ctx)

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("task_id", id).Warn("Task not found")
			return nil, NotFound(id)
		}
		log.WithError(err).Error("Error finding task by ID")
		return nil, err
	}
	return t, nil
}

func (s *taskService) UpdateTask(ctx context.Context, rawID string, dto UpdateTaskDTO) (*Task, error) {
	log := config.WithContext(ctx)

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}

	var updated *Task
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return NotFound(id)
			}
			return err
		}

		if dto.Title == nil {
			return apperror.InvalidData()
		}
		existing.Title = dto.Title
		existing.Description = dto.Description

		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		if apperror.Status(err) >= 500 {
			log.WithError(err).WithField("task_id", id).Error("Failed to update task")
		}
		return nil, err
	}

	log.WithField("task_id", id).Info("Task updated successfully")
	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, rawID string) (*Task, error) {
	log := config.WithContext(ctx)

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}

	var deleted *Task
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return NotFound(id)
			}
			return err
		}

		if err := repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return NotFound(id)
			}
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		if apperror.Status(err) >= 500 {
			log.WithError(err).WithField("task_id", id).Error("Failed to delete task")
		}
		return nil, err
	}

	log.WithField("task_id", id).Info("Task deleted successfully")
	return deleted, nil
}

package goal

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/apperror"
	"github.com/saulo-duarte/goals-api/internal/config"
	"github.com/saulo-duarte/goals-api/internal/database"
	"github.com/saulo-duarte/goals-api/internal/metrics"
	"github.com/saulo-duarte/goals-api/internal/task"
)

// TaskValidator resolves client-supplied task ids.
type TaskValidator interface {
	ValidateID(ctx context.Context, rawID string) (*task.Task, error)
}

type Service interface {
	CreateGoal(ctx context.Context, dto CreateGoalDTO) (*Goal, error)
	ListGoals(ctx context.Context) ([]*Goal, error)
	GetGoal(ctx context.Context, rawID string) (*Goal, error)
	UpdateGoal(ctx context.Context, rawID string, dto UpdateGoalDTO) (*Goal, error)
	DeleteGoal(ctx context.Context, rawID string) (*Goal, error)
	AssignTasks(ctx context.Context, rawID string, dto AssignTasksDTO, mode AssociationMode) (*GoalTaskIDsResponse, error)
	GetGoalWithTasks(ctx context.Context, rawID string) (*Goal, error)
}

type service struct {
	repo      Repository
	taskRepo  task.TaskRepository
	validator TaskValidator
	uow       database.UnitOfWork
}

func NewService(repo Repository, taskRepo task.TaskRepository, validator TaskValidator, uow database.UnitOfWork) Service {
	return &service{
		repo:      repo,
		taskRepo:  taskRepo,
		validator: validator,
		uow:       uow,
	}
}

func notFound(id int) error {
	return apperror.NotFound("No goal with ID %d. SORRY.", id)
}

func parseID(log logrus.FieldLogger, rawID string) (int, error) {
	id, err := apperror.ParseID(rawID)
	if err != nil {
		log.WithField("goal_id", rawID).Warn("Invalid goal ID")
		return 0, err
	}
	return id, nil
}

func findGoal(ctx context.Context, log logrus.FieldLogger, repo Repository, id int) (*Goal, error) {
	goal, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("goal_id", id).Warn("Goal not found")
			return nil, notFound(id)
		}
		return nil, err
	}
	return goal, nil
}

func logFailure(log logrus.FieldLogger, err error, id int, msg string) {
	if apperror.Status(err) >= 500 {
		log.WithError(err).WithField("goal_id", id).Error(msg)
	}
}

func (s *service) CreateGoal(ctx context.Context, dto CreateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	if dto.Title == nil {
		log.Warn("Attempt to create goal without title")
		return nil, apperror.InvalidData()
	}

	goal := &Goal{Title: *dto.Title}

	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, goal)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", goal.ID).Info("Goal created successfully")
	return goal, nil
}

func (s *service) ListGoals(ctx context.Context) ([]*Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, err
	}
	return goals, nil
}

func (s *service) GetGoal(ctx context.Context, rawID string) (*Goal, error) {
	log := config.WithContext(ctx)

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}

	goal, err := findGoal(ctx, log, s.repo, id)
	if err != nil {
		logFailure(log, err, id, "Error finding goal by ID")
		return nil, err
	}
	return goal, nil
}

func (s *service) UpdateGoal(ctx context.Context, rawID string, dto UpdateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}

	var updated *Goal
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		goal, err := findGoal(ctx, log, repo, id)
		if err != nil {
			return err
		}

		if dto.Title == nil {
			log.WithField("goal_id", id).Warn("Attempt to update goal without title")
			return apperror.InvalidData()
		}
		goal.Title = *dto.Title

		if err := repo.Update(ctx, goal); err != nil {
			return err
		}
		updated = goal
		return nil
	})
	if err != nil {
		logFailure(log, err, id, "Failed to update goal")
		return nil, err
	}

	log.WithField("goal_id", id).Info("Goal updated successfully")
	return updated, nil
}

// DeleteGoal removes the goal and detaches its tasks in one transaction. The
// tasks themselves are kept.
func (s *service) DeleteGoal(ctx context.Context, rawID string) (*Goal, error) {
	log := config.WithContext(ctx)

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}

	var deleted *Goal
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		goal, err := findGoal(ctx, log, repo, id)
		if err != nil {
			return err
		}

		if err := s.taskRepo.WithTx(tx).DetachFromGoal(ctx, id); err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return notFound(id)
			}
			return err
		}
		deleted = goal
		return nil
	})
	if err != nil {
		logFailure(log, err, id, "Failed to delete goal")
		return nil, err
	}

	log.WithField("goal_id", id).Info("Goal deleted successfully")
	return deleted, nil
}

// AssignTasks validates every task id in order, stopping at the first one the
// validator rejects, then links the validated tasks to the goal according to
// mode.
func (s *service) AssignTasks(ctx context.Context, rawID string, dto AssignTasksDTO, mode AssociationMode) (*GoalTaskIDsResponse, error) {
	log := config.WithContext(ctx).WithField("mode", mode.String())

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}
	if _, err := findGoal(ctx, log, s.repo, id); err != nil {
		logFailure(log, err, id, "Error finding goal by ID")
		return nil, err
	}

	if dto.TaskIDs == nil {
		log.WithField("goal_id", id).Warn("Attempt to assign tasks without task_ids")
		return nil, apperror.InvalidData()
	}

	var validated []int
	seen := make(map[int]struct{})
	for _, raw := range dto.RawTaskIDs() {
		t, err := s.validator.ValidateID(ctx, raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		validated = append(validated, t.ID)
	}

	taskIDs := validated
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		if _, err := findGoal(ctx, log, s.repo.WithTx(tx), id); err != nil {
			return err
		}

		taskRepo := s.taskRepo.WithTx(tx)
		switch mode {
		case ModeUnion:
			existing, err := taskRepo.ListByGoalID(ctx, id)
			if err != nil {
				return err
			}
			taskIDs = mergeIDs(existing, validated)
		default:
			if err := taskRepo.DetachFromGoal(ctx, id); err != nil {
				return err
			}
		}

		if err := taskRepo.AssignToGoal(ctx, id, validated); err != nil {
			var missing *task.MissingTaskError
			if errors.As(err, &missing) {
				log.WithField("task_id", missing.ID).Warn("Task disappeared before assignment")
				return task.NotFound(missing.ID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		logFailure(log, err, id, "Failed to assign tasks to goal")
		return nil, err
	}

	metrics.IncrementTaskAssignment(mode.String())
	log.WithFields(logrus.Fields{
		"goal_id":    id,
		"task_count": len(taskIDs),
	}).Info("Tasks assigned to goal")

	if taskIDs == nil {
		taskIDs = []int{}
	}
	return &GoalTaskIDsResponse{ID: id, TaskIDs: taskIDs}, nil
}

// mergeIDs keeps the existing order and appends ids not already present.
func mergeIDs(existing []*task.Task, added []int) []int {
	ids := make([]int, 0, len(existing)+len(added))
	seen := make(map[int]struct{}, len(existing))
	for _, t := range existing {
		ids = append(ids, t.ID)
		seen[t.ID] = struct{}{}
	}
	for _, id := range added {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *service) GetGoalWithTasks(ctx context.Context, rawID string) (*Goal, error) {
	log := config.WithContext(ctx)

	id, err := parseID(log, rawID)
	if err != nil {
		return nil, err
	}

	goal, err := s.repo.FindByIDWithTasks(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("goal_id", id).Warn("Goal not found")
			return nil, notFound(id)
		}
		log.WithError(err).WithField("goal_id", id).Error("Error loading goal tasks")
		return nil, err
	}
	return goal, nil
}

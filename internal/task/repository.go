package task

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("task not found")

// MissingTaskError reports the first task id an update expected to touch but
// could not find. It matches ErrNotFound with errors.Is.
type MissingTaskError struct {
	ID int
}

func (e *MissingTaskError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

func (e *MissingTaskError) Is(target error) bool {
	return target == ErrNotFound
}

type TaskRepository interface {
	WithTx(tx *gorm.DB) TaskRepository

	Create(ctx context.Context, t *Task) error
	List(ctx context.Context) ([]*Task, error)
	FindByID(ctx context.Context, id int) (*Task, error)
	ListByGoalID(ctx context.Context, goalID int) ([]*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id int) error

	// AssignToGoal points every task in ids at goalID. It fails with a
	// *MissingTaskError when any of the ids no longer exists.
	AssignToGoal(ctx context.Context, goalID int, ids []int) error
	// DetachFromGoal clears goal_id on every task of goalID.
	DetachFromGoal(ctx context.Context, goalID int) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) WithTx(tx *gorm.DB) TaskRepository {
	return &taskRepository{db: tx}
}

func (r *taskRepository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepository) List(ctx context.Context) ([]*Task, error) {
	var tasks []*Task
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, id int) (*Task, error) {
	var t Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) ListByGoalID(ctx context.Context, goalID int) ([]*Task, error) {
	var tasks []*Task
	if err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *taskRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taskRepository) AssignToGoal(ctx context.Context, goalID int, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	unique := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	result := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id IN ?", ids).
		Update("goal_id", goalID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == int64(len(unique)) {
		return nil
	}

	var found []int
	if err := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return err
	}
	present := make(map[int]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			return &MissingTaskError{ID: id}
		}
	}
	return ErrNotFound
}

func (r *taskRepository) DetachFromGoal(ctx context.Context, goalID int) error {
	return r.db.WithContext(ctx).
		Model(&Task{}).
		Where("goal_id = ?", goalID).
		Update("goal_id", nil).Error
}

package goal

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("goal not found")

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, goal *Goal) error
	FindAll(ctx context.Context) ([]*Goal, error)
	FindByID(ctx context.Context, id int) (*Goal, error)
	FindByIDWithTasks(ctx context.Context, id int) (*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, goal *Goal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(goal).Error
}

func (r *repository) FindAll(ctx context.Context) ([]*Goal, error) {
	var goals []*Goal
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Goal, error) {
	var goal Goal
	if err := r.db.WithContext(ctx).First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) FindByIDWithTasks(ctx context.Context, id int) (*Goal, error) {
	var goal Goal
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&goal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) Update(ctx context.Context, goal *Goal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(goal).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&Goal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package database

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork scopes a batch of mutations to one transaction. The transaction
// commits when fn returns nil and rolls back when it returns an error or panics.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type unitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

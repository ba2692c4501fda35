package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/config"
)

type schemaMigration struct {
	Version   string    `gorm:"primaryKey;size:128"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type MigrationStatus struct {
	Version   string
	Applied   bool
	AppliedAt *time.Time
}

// Migrate applies every pending migration in order and returns the versions it ran.
// Each migration and its bookkeeping row share one transaction.
func Migrate(ctx context.Context, db *gorm.DB) ([]string, error) {
	log := config.WithContext(ctx)
	db = db.WithContext(ctx)

	applied, err := appliedVersions(db)
	if err != nil {
		return nil, err
	}

	var ran []string
	for _, m := range Migrations {
		if _, ok := applied[m.Version]; ok {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Version: m.Version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			log.WithError(err).WithField("version", m.Version).Error("Migration failed")
			return ran, errors.Wrapf(err, "apply migration %s", m.Version)
		}

		log.WithField("version", m.Version).Info("Migration applied")
		ran = append(ran, m.Version)
	}

	return ran, nil
}

// Rollback reverts the most recently applied migrations, newest first.
func Rollback(ctx context.Context, db *gorm.DB, steps int) ([]string, error) {
	log := config.WithContext(ctx)
	db = db.WithContext(ctx)

	applied, err := appliedVersions(db)
	if err != nil {
		return nil, err
	}

	var reverted []string
	for i := len(Migrations) - 1; i >= 0 && len(reverted) < steps; i-- {
		m := Migrations[i]
		if _, ok := applied[m.Version]; !ok {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			return tx.Delete(&schemaMigration{}, "version = ?", m.Version).Error
		})
		if err != nil {
			log.WithError(err).WithField("version", m.Version).Error("Rollback failed")
			return reverted, errors.Wrapf(err, "revert migration %s", m.Version)
		}

		log.WithField("version", m.Version).Info("Migration reverted")
		reverted = append(reverted, m.Version)
	}

	return reverted, nil
}

func Status(ctx context.Context, db *gorm.DB) ([]MigrationStatus, error) {
	applied, err := appliedVersions(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, 0, len(Migrations))
	for _, m := range Migrations {
		st := MigrationStatus{Version: m.Version}
		if at, ok := applied[m.Version]; ok {
			at := at
			st.Applied = true
			st.AppliedAt = &at
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func appliedVersions(db *gorm.DB) (map[string]time.Time, error) {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return nil, errors.Wrap(err, "prepare schema_migrations")
	}

	var rows []schemaMigration
	if err := db.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load applied migrations")
	}

	applied := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		applied[r.Version] = r.AppliedAt
	}
	return applied, nil
}

package database

import "gorm.io/gorm"

// Table snapshots used by the migrations. They describe the schema at the
// version that introduced them and must not follow later model changes.

type legacyTaskRow struct {
	ID          int `gorm:"primaryKey"`
	Title       *string
	Description *string
}

func (legacyTaskRow) TableName() string { return "task" }

type taskRow struct {
	ID          int `gorm:"primaryKey"`
	Title       *string
	Description *string
}

func (taskRow) TableName() string { return "tasks" }

type goalRow struct {
	ID    int    `gorm:"primaryKey"`
	Title string `gorm:"not null"`
}

func (goalRow) TableName() string { return "goals" }

type taskWithGoalRow struct {
	ID          int `gorm:"primaryKey"`
	Title       *string
	Description *string
	GoalID      *int `gorm:"index"`
}

func (taskWithGoalRow) TableName() string { return "tasks" }

type Migration struct {
	Version string
	Up      func(tx *gorm.DB) error
	Down    func(tx *gorm.DB) error
}

// Migrations lists every schema change in the order it must be applied.
var Migrations = []Migration{
	{
		Version: "0001_create_task",
		Up: func(tx *gorm.DB) error {
			return tx.Migrator().CreateTable(&legacyTaskRow{})
		},
		Down: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&legacyTaskRow{})
		},
	},
	{
		Version: "0002_rename_task_to_tasks",
		Up: func(tx *gorm.DB) error {
			return moveTaskRows(tx, &legacyTaskRow{}, &taskRow{})
		},
		Down: func(tx *gorm.DB) error {
			return moveTaskRows(tx, &taskRow{}, &legacyTaskRow{})
		},
	},
	{
		Version: "0003_create_goals",
		Up: func(tx *gorm.DB) error {
			return tx.Migrator().CreateTable(&goalRow{})
		},
		Down: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&goalRow{})
		},
	},
	{
		Version: "0004_add_goal_id_to_tasks",
		Up: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if err := m.AddColumn(&taskWithGoalRow{}, "GoalID"); err != nil {
				return err
			}
			return m.CreateIndex(&taskWithGoalRow{}, "GoalID")
		},
		Down: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasIndex(&taskWithGoalRow{}, "GoalID") {
				if err := m.DropIndex(&taskWithGoalRow{}, "GoalID"); err != nil {
					return err
				}
			}
			return m.DropColumn(&taskWithGoalRow{}, "GoalID")
		},
	},
}

type tabler interface {
	TableName() string
}

// moveTaskRows creates to, copies every (id, title, description) row from
// from when it exists, then drops from. Ids are preserved.
func moveTaskRows(tx *gorm.DB, from, to tabler) error {
	m := tx.Migrator()
	if err := m.CreateTable(to); err != nil {
		return err
	}
	if !m.HasTable(from) {
		return nil
	}

	copySQL := "INSERT INTO " + to.TableName() + " (id, title, description) " +
		"SELECT id, title, description FROM " + from.TableName()
	if err := tx.Exec(copySQL).Error; err != nil {
		return err
	}
	if err := m.DropTable(from); err != nil {
		return err
	}
	return resetIDSequence(tx, to.TableName())
}

// resetIDSequence moves a postgres serial past the highest copied id so new
// inserts do not collide. Other dialects track this themselves.
func resetIDSequence(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec(
		"SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE((SELECT MAX(id) FROM "+table+"), 0) + 1, false)",
		table,
	).Error
}

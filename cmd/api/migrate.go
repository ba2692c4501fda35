package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/config"
	"github.com/saulo-duarte/goals-api/internal/database"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: withDB(func(c *cli.Context, db *gorm.DB) error {
					applied, err := database.Migrate(c.Context, db)
					if err != nil {
						return err
					}
					printVersions(c, "applied", applied)
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "revert the newest migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to revert"},
				},
				Action: withDB(func(c *cli.Context, db *gorm.DB) error {
					reverted, err := database.Rollback(c.Context, db, c.Int("steps"))
					if err != nil {
						return err
					}
					printVersions(c, "reverted", reverted)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "list migrations and whether they are applied",
				Action: withDB(func(c *cli.Context, db *gorm.DB) error {
					statuses, err := database.Status(c.Context, db)
					if err != nil {
						return err
					}
					for _, s := range statuses {
						state := "pending"
						if s.Applied && s.AppliedAt != nil {
							state = "applied " + s.AppliedAt.Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(c.App.Writer, "%-32s %s\n", s.Version, state)
					}
					return nil
				}),
			},
		},
	}
}

func withDB(fn func(c *cli.Context, db *gorm.DB) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		db, err := database.Connect(c.Context, cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				config.WithContext(c.Context).WithError(err).Warn("Failed to close database")
			}
		}()

		return fn(c, db)
	}
}

func printVersions(c *cli.Context, verb string, versions []string) {
	if len(versions) == 0 {
		fmt.Fprintln(c.App.Writer, "nothing to do")
		return
	}
	for _, v := range versions {
		fmt.Fprintf(c.App.Writer, "%s %s\n", verb, v)
	}
}

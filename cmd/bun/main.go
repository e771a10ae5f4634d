package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	courseservice "github.com/duffers-cup/clubhouse/app/modules/course/application"
	coursedb "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/repositories"
	coursemigrations "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/repositories/migrations"
	photomigrations "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/repositories/migrations"
	playermigrations "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories/migrations"
	scoremigrations "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories/migrations"
	tripmigrations "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/repositories/migrations"
	"github.com/duffers-cup/clubhouse/config"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	defer db.Close()

	migrators := map[string]*migrate.Migrator{
		"player": migrate.NewMigrator(db, playermigrations.Migrations),
		"course": migrate.NewMigrator(db, coursemigrations.Migrations),
		"score":  migrate.NewMigrator(db, scoremigrations.Migrations),
		"trip":   migrate.NewMigrator(db, tripmigrations.Migrations),
		"photo":  migrate.NewMigrator(db, photomigrations.Migrations),
	}

	cliApp := &cli.App{
		Name: "bun",
		Commands: []*cli.Command{
			newMultiModuleDBCommand(migrators),
			newSeedCommand(db, cfg),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// moduleNames returns the migrator keys sorted so every run walks the
// modules in the same order.
func moduleNames(migrators map[string]*migrate.Migrator) []string {
	names := make([]string, 0, len(migrators))
	for name := range migrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newMultiModuleDBCommand(migrators map[string]*migrate.Migrator) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration bookkeeping tables",
				Action: func(c *cli.Context) error {
					for _, name := range moduleNames(migrators) {
						if err := migrators[name].Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", name, err)
						}
						fmt.Printf("%s: migration tables ready\n", name)
					}
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "apply pending migrations for every module",
				Action: func(c *cli.Context) error {
					for _, name := range moduleNames(migrators) {
						group, err := migrators[name].Migrate(c.Context)
						if err != nil {
							return fmt.Errorf("migrate %s: %w", name, err)
						}
						if group.IsZero() {
							fmt.Printf("%s: up to date\n", name)
						} else {
							fmt.Printf("%s: migrated to %s\n", name, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "roll back the last migration group of every module",
				Action: func(c *cli.Context) error {
					for _, name := range moduleNames(migrators) {
						group, err := migrators[name].Rollback(c.Context)
						if err != nil {
							return fmt.Errorf("rollback %s: %w", name, err)
						}
						if group.IsZero() {
							fmt.Printf("%s: nothing to roll back\n", name)
						} else {
							fmt.Printf("%s: rolled back %s\n", name, group)
						}
					}
					return nil
				},
			},
			{
				Name:      "create_go",
				Usage:     "create a Go migration file for one module",
				ArgsUsage: "<module> <name...>",
				Action: func(c *cli.Context) error {
					moduleName := c.Args().First()
					migrator, ok := migrators[moduleName]
					if !ok {
						return fmt.Errorf("unknown module %q (have: %s)", moduleName,
							strings.Join(moduleNames(migrators), ", "))
					}

					name := strings.Join(c.Args().Tail(), "_")
					mf, err := migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("%s: created %s (%s)\n", moduleName, mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migration status per module",
				Action: func(c *cli.Context) error {
					for _, name := range moduleNames(migrators) {
						ms, err := migrators[name].MigrationsWithStatus(c.Context)
						if err != nil {
							return fmt.Errorf("status %s: %w", name, err)
						}
						fmt.Printf("%s:\n  applied: %s\n  pending: %s\n", name, ms.Applied(), ms.Unapplied())
					}
					return nil
				},
			},
		},
	}
}

// newSeedCommand loads the course catalog JSON into the courses table.
// Courses are matched by name, so re-running the seed is safe.
func newSeedCommand(db *bun.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "import the course catalog from the configured JSON file",
		Action: func(c *cli.Context) error {
			f, err := os.Open(cfg.Trip.CoursesFile)
			if err != nil {
				return fmt.Errorf("failed to open courses file: %w", err)
			}
			defer f.Close()

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			svc := courseservice.NewCourseService(&coursedb.CourseDBImpl{DB: db}, logger)
			n, err := svc.ImportCourses(c.Context, f)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d courses from %s\n", n, cfg.Trip.CoursesFile)
			return nil
		},
	}
}

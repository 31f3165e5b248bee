package main

import (
	"context"
	"database/sql"
	root "handi"
	"handi/internal/config"
	"handi/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateRiver brings the river job tables to the latest version.
func migrateRiver(ctx context.Context, db *sql.DB) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
	}
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		logger.Fatal(ctx, "could not get existing river queue migrations", zap.Error(err))
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		return
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	if err != nil {
		logger.Fatal(ctx, "could not migrate river queue database", zap.Error(err))
	}
	logger.Info(ctx, "river queue migrated", zap.Int("version", latestVersion))
}

// migrateCommand constructs the 'migrate' subcommand that applies the profile
// and take migrations with goose, then the river queue migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			statusOnly, _ := cmd.Flags().GetBool("status")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB) //nolint: forcetypeassert

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}

			if statusOnly {
				if err := goose.StatusContext(ctx, db, "migrations"); err != nil {
					logger.Fatal(ctx, "could not get migration status", zap.Error(err))
				}

				return
			}

			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			migrateRiver(ctx, db)
		},
	}

	cmd.Flags().Bool("status", false, "Print the goose migration status instead of migrating")

	return cmd
}

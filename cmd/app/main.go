package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"storefront/cmd"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var envFile string

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Order status workflow service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var migrate bool

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the notification dispatcher",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, migrate)
		},
	}
	serve.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")
	return serve
}

func runServe(ctx context.Context, migrate bool) error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(logging.Options{Level: configs.LogLevel, Format: configs.LogFormat})

	if migrate {
		if err := migrateDatabase(ctx, configs.DSN(), "up"); err != nil {
			return err
		}
	}

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	router, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	logger.InfoContext(ctx, "Storefront started",
		"port", configs.HTTPPort,
		"enforce_transition_graph", configs.EnforceTransitionGraph,
	)
	return httpadapter.Start(ctx, router, configs.HTTPPort, logger)
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Database migration management",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(c *cobra.Command, args []string) error {
			configs, err := cmd.LoadConfig(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			action := "up"
			if len(args) > 0 {
				action = args[0]
			}
			return migrateDatabase(c.Context(), configs.DSN(), action)
		},
	}
}

func migrateDatabase(ctx context.Context, dsn, action string) error {
	db, err := migrations.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	switch action {
	case "up":
		return migrations.Up(ctx, db)
	case "down":
		return migrations.Down(ctx, db)
	case "status":
		return migrations.Status(ctx, db)
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}
}

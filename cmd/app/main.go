package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capacity/cmd"
	"capacity/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:           "capacity",
		Usage:          "capacity service: capacities, their technologies and bootcamp links",
		DefaultCommand: "serve",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "dotenv file loaded before reading the environment (optional)",
				EnvVars: []string{"ENV_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API and the background jobs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "migrate",
						Value: true,
						Usage: "migrate the schema before serving",
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("capacity: %v", err)
	}
}

func getConfigs(c *cli.Context) (cmd.Config, error) {
	if err := godotenv.Load(c.String("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("load %s: %w", c.String("env-file"), err)
	}
	return cmd.LoadConfig(os.Getenv)
}

func newLogger(configs cmd.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
}

func openDatabase(ctx context.Context, configs cmd.Config) (*gorm.DB, error) {
	return postgres.Open(ctx, configs.DatabaseSettings().DSN())
}

func migrate(c *cli.Context) error {
	configs, err := getConfigs(c)
	if err != nil {
		return err
	}
	logger := newLogger(configs)

	db, err := openDatabase(c.Context, configs)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	if err := postgres.Migrate(c.Context, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Schema migrated")
	return nil
}

func serve(c *cli.Context) error {
	configs, err := getConfigs(c)
	if err != nil {
		return err
	}
	logger := newLogger(configs)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, configs)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	if c.Bool("migrate") {
		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close adapters", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}

func closeDatabase(db *gorm.DB, logger *slog.Logger) {
	if err := postgres.Close(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
}

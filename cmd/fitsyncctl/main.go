package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pageza/fitsync-pro/backend/config"
	"github.com/pageza/fitsync-pro/backend/internal/cli"
	"github.com/pageza/fitsync-pro/backend/internal/database"
	"github.com/pageza/fitsync-pro/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}

	// Commands that need the backend report SetupErr; "targets" works without it.
	cfg, err := config.LoadConfig()
	if err != nil {
		app.SetupErr = err
		return cli.NewRootCmd(app).ExecuteContext(context.Background())
	}

	var opts []service.GeminiOption
	if cfg.GeminiBaseURL != "" {
		opts = append(opts, service.WithBaseURL(cfg.GeminiBaseURL))
	}
	app.APIKey = cfg.GeminiAPIKey
	app.Models = service.NewLLMService(service.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, opts...), nil)

	db, err := database.New(cfg)
	if err != nil {
		app.SetupErr = fmt.Errorf("opening database: %w", err)
	} else {
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := database.RunMigrations(db); err != nil {
			return err
		}
		app.Auth = service.NewAuthService(db, cfg.JWTSecret)
		app.Profiles = service.NewProfileService(db)
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}

package main

import (
	"context"
	"flag"
	"os"

	"theatre/ticketing/internal/api/tasks"
	"theatre/ticketing/internal/config"
	"theatre/ticketing/internal/lib/logger"
	"theatre/ticketing/internal/services"
	"theatre/ticketing/internal/storage/postgres"
	"theatre/ticketing/internal/storage/postgres/models"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file, empty to read the environment only")

	flag.Parse()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		log.Error("failed to connect to database", "errMsg", err.Error())
		os.Exit(1)
	}
	defer storage.Conn.Close()
	log.Info("database connection established")
	if err := storage.EnsureSchema(ctx); err != nil {
		log.Error("failed to create schema", "errMsg", err.Error())
		os.Exit(1)
	}

	bgTasks := tasks.New(log, cfg.Workers.Count, cfg.Workers.QueueSize)
	bgTasks.Run()
	svcs := services.New(
		log,
		cfg,
		services.StoragesFromModels(models.New(storage)),
		services.NewMailer(cfg),
		bgTasks,
	)
	if admin := cfg.BootstrapAdmin; admin.Username != "" {
		if err := svcs.Users.EnsureAdmin(ctx, admin.Username, admin.Password); err != nil {
			log.Error("failed to seed admin account", "errMsg", err.Error())
			os.Exit(1)
		}
		log.Info("admin account ready", "username", admin.Username)
	}

	app := NewApplication(cfg, log, svcs, bgTasks)
	if err := app.serve(); err != nil {
		app.log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}

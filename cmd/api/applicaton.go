package main

import (
	"context"
	"log/slog"

	"theatre/ticketing/internal/config"
	"theatre/ticketing/internal/lib/decoder"
	"theatre/ticketing/internal/lib/validator"
	"theatre/ticketing/internal/services"

	govalidator "github.com/go-playground/validator/v10"
)

// TaskShutdowner is the background worker pool the server drains on exit.
type TaskShutdowner interface {
	Shutdown(ctx context.Context) error
}

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	services  *services.Services
	validator *govalidator.Validate
	decoder   *decoder.URLDecoder
	bgTasks   TaskShutdowner
}

func NewApplication(cfg *config.Config, log *slog.Logger, svcs *services.Services, bgTasks TaskShutdowner) *Application {
	return &Application{
		cfg:       cfg,
		log:       log,
		validator: validator.New(),
		decoder:   decoder.New(),
		services:  svcs,
		bgTasks:   bgTasks,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}

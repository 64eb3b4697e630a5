// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stegano/internal/config"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/internal/workers"
)

var errNoFrontEnd = errors.New("no front end provided")

// FrontEnd is the user-facing part of the process. Run blocks until the
// user quits or ctx is done.
type FrontEnd interface {
	Run(ctx context.Context) error
}

// App runs one front end on top of the client services.
type App struct {
	services *service.ClientServices
	frontEnd FrontEnd
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, frontEnd FrontEnd, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if frontEnd == nil {
		return nil, errNoFrontEnd
	}

	return &App{
		services: services,
		frontEnd: frontEnd,
		workers:  workers.NewClientWorkers(services, workersCfg),
		logger:   log,
	}, nil
}

// Run starts the session and the workers, runs the front end until it
// returns or a stop signal arrives, then releases everything.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer func() {
		if err := a.services.Close(); err != nil {
			a.logger.Err(err).Msg("error closing client services")
		}
	}()

	a.services.SessionService.Start()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")
	if err := a.frontEnd.Run(ctx); err != nil {
		return fmt.Errorf("front end: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-stegano/internal/config"
	"github.com/MKhiriev/go-stegano/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewClientWorkers creates the background workers of a client process.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return NewWorkers(NewTokenRefreshWorker(services.TokenRefreshJob, cfg))
}

// Run starts the workers in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// tokenRefreshWorker runs the token refresh job with the configured
// interval and window.
type tokenRefreshWorker struct {
	job      service.ClientTokenRefreshJob
	cfg config.ClientWorkers
}

func NewTokenRefreshWorker(job service.ClientTokenRefreshJob, cfg config.ClientWorkers) Worker {
	return &tokenRefreshWorker{job: job, cfg: cfg}
}

func (w *tokenRefreshWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.cfg.TokenRefreshInterval, w.cfg.TokenRefreshWindow)
}

func (w *tokenRefreshWorker) Stop() {
	w.job.Stop()
}

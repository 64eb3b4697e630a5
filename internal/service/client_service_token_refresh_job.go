// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/logger"
)

const defaultTokenRefreshInterval = time.Minute

type clientTokenRefreshJob struct {
	provider adapter.IdentityProvider
	logger   *logger.Logger
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientTokenRefreshJob creates a job that refreshes the identity token of
// provider on a ticker. The job is idle until Start is called.
func NewClientTokenRefreshJob(provider adapter.IdentityProvider, log *logger.Logger) ClientTokenRefreshJob {
	return &clientTokenRefreshJob{provider: provider, logger: log, now: time.Now}
}

// Start implements [ClientTokenRefreshJob]. interval defaults to one minute
// when zero or negative.
func (j *clientTokenRefreshJob) Start(ctx context.Context, interval, window time.Duration) {
	if interval <= 0 {
		interval = defaultTokenRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refreshIfExpiring(jobCtx, window)
			}
		}
	}()
}

// refreshIfExpiring refreshes the token when it expires within window. A
// rejected refresh signs the user out inside the provider; network failures
// are retried on the next tick.
func (j *clientTokenRefreshJob) refreshIfExpiring(ctx context.Context, window time.Duration) {
	identity := j.provider.Current()
	if identity == nil || !identity.ExpiresWithin(j.now(), window) {
		return
	}

	if _, err := j.provider.Refresh(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, adapter.ErrIdentityChanged) {
			return
		}
		j.logger.Warn().Err(err).Msg("token refresh failed")
	}
}

// Stop implements [ClientTokenRefreshJob]. Safe to call when the job is not
// running.
func (j *clientTokenRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

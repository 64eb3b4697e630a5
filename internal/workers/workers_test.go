// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-stegano/internal/config"
	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its events to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (w *recordingWorker) Run(context.Context) { *w.log = append(*w.log, "run "+w.id) }
func (w *recordingWorker) Stop()               { *w.log = append(*w.log, "stop "+w.id) }

func TestWorkers_RunInOrderStopInReverse(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "1", log: &log},
		&recordingWorker{id: "2", log: &log},
		&recordingWorker{id: "3", log: &log},
	)

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"run 1", "run 2", "run 3", "stop 3", "stop 2", "stop 1"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

// spyRefreshJob records the arguments of Start.
type spyRefreshJob struct {
	interval, window time.Duration
	started, stopped int
}

func (j *spyRefreshJob) Start(_ context.Context, interval, window time.Duration) {
	j.started++
	j.interval, j.window = interval, window
}

func (j *spyRefreshJob) Stop() { j.stopped++ }

func TestTokenRefreshWorker_PassesConfig(t *testing.T) {
	job := &spyRefreshJob{}
	w := NewTokenRefreshWorker(job, config.ClientWorkers{
		TokenRefreshInterval: 30 * time.Second,
		TokenRefreshWindow:   5 * time.Minute,
	})

	w.Run(context.Background())
	w.Stop()

	assert.Equal(t, 1, job.started)
	assert.Equal(t, 1, job.stopped)
	assert.Equal(t, 30*time.Second, job.interval)
	assert.Equal(t, 5*time.Minute, job.window)
}

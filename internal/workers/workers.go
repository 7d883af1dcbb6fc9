// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-riot-switcher/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type statusWorker struct {
	job      service.ClientStatusJob
	interval time.Duration
}

// NewStatusWorker wraps the client-running probe so it can be managed
// alongside other workers.
func NewStatusWorker(job service.ClientStatusJob, interval time.Duration) Worker {
	return &statusWorker{job: job, interval: interval}
}

func (s *statusWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *statusWorker) Stop() {
	s.job.Stop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-riot-switcher/internal/adapter"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
)

const defaultStatusInterval = 5 * time.Second

type clientStatusJob struct {
	lockfile adapter.LockFileReader
	logger   *logger.Logger

	running atomic.Bool
	probed  atomic.Bool
	updates chan bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientStatusJob creates a clientStatusJob probing lockfile. The job is
// idle until Start is called.
func NewClientStatusJob(lockfile adapter.LockFileReader, log *logger.Logger) ClientStatusJob {
	return &clientStatusJob{
		lockfile: lockfile,
		logger:   log,
		updates:  make(chan bool, 1),
	}
}

func (j *clientStatusJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultStatusInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.probe()

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.probe()
			}
		}
	}()
}

func (j *clientStatusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientStatusJob) Running() bool {
	return j.running.Load()
}

func (j *clientStatusJob) Updates() <-chan bool {
	return j.updates
}

func (j *clientStatusJob) probe() {
	now := j.lockfile.Exists()
	prev := j.running.Swap(now)
	first := !j.probed.Swap(true)
	if !first && prev == now {
		return
	}

	j.logger.Debug().Str("func", "clientStatusJob.probe").Bool("running", now).Msg("client status changed")

	// keep only the latest value
	select {
	case <-j.updates:
	default:
	}
	select {
	case j.updates <- now:
	default:
	}
}
